package collector

// Fetcher defines the interface for fetching current ticker prices.
type Fetcher interface {
	// FetchLast returns the latest traded price for each requested
	// currency code. Missing codes are an error, not a partial result.
	FetchLast(currencies []string) (map[string]float64, error)
	Name() string
}
