package model

// Observation is one timestamped pair of ticker prices.
// JSON keys match the persisted history format, so saved files
// re-parse into the same records.
type Observation struct {
	Timestamp string  `json:"timestamp"`
	USD       float64 `json:"USD"`
	KRW       float64 `json:"KRW"`
}
