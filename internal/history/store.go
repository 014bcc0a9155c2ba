package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"BtcTracker/internal/model"
)

// History is the bounded, insertion-ordered log of observations, oldest first.
type History []model.Observation

// Timestamps returns the timestamp of each observation in order.
func (h History) Timestamps() []string {
	out := make([]string, len(h))
	for i, obs := range h {
		out[i] = obs.Timestamp
	}
	return out
}

// USDValues returns the USD price series in order.
func (h History) USDValues() []float64 {
	out := make([]float64, len(h))
	for i, obs := range h {
		out[i] = obs.USD
	}
	return out
}

// KRWValues returns the KRW price series in order.
func (h History) KRWValues() []float64 {
	out := make([]float64, len(h))
	for i, obs := range h {
		out[i] = obs.KRW
	}
	return out
}

// Store persists a History as an indented JSON array on disk.
type Store struct {
	Path string
	Max  int
}

// NewStore creates a Store backed by the given file, keeping at most max records.
func NewStore(path string, max int) *Store {
	return &Store{Path: path, Max: max}
}

// Load reads the persisted history. A missing or unparsable file yields an
// empty History: a parse failure is logged and treated as "start fresh",
// never returned to the caller.
func (s *Store) Load() History {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read history %s: %v, starting fresh", s.Path, err)
		}
		return History{}
	}
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		log.Printf("[WARN] parse history %s: %v, starting fresh", s.Path, err)
		return History{}
	}
	return h
}

// Append returns a new History with obs added at the end, trimmed to the
// store's capacity by dropping the oldest entries. The input is not mutated.
func (s *Store) Append(h History, obs model.Observation) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	out = append(out, obs)
	if len(out) > s.Max {
		out = out[len(out)-s.Max:]
	}
	return out
}

// Save writes the full history to the backing file.
func (s *Store) Save(h History) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
