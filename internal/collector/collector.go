package collector

import (
	"fmt"
	"time"

	"BtcTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Last map[string]float64
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchLast(currencies []string) (map[string]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	last := make(map[string]float64, len(currencies))
	for _, code := range currencies {
		v, ok := m.Last[code]
		if !ok {
			return nil, fmt.Errorf("mock: currency %s missing", code)
		}
		last[code] = v
	}
	return last, nil
}

// Clock supplies the current time. Injected so observation timestamps are
// deterministic in tests.
type Clock func() time.Time

// TimestampLayout is the format of observation timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Collector turns a ticker fetch into a timestamped Observation.
type Collector struct {
	Fetcher Fetcher
	Zone    *time.Location
	Now     Clock
}

// NewCollector creates a new Collector. A nil clock means wall-clock time.
func NewCollector(fetcher Fetcher, zone *time.Location, now Clock) *Collector {
	if now == nil {
		now = time.Now
	}
	return &Collector{Fetcher: fetcher, Zone: zone, Now: now}
}

// Observe fetches the current USD and KRW prices and stamps them in the
// collector's zone. Any fetch failure means this run has no observation:
// the caller skips the update, leaving history and report untouched.
func (c *Collector) Observe() (*model.Observation, error) {
	last, err := c.Fetcher.FetchLast([]string{"USD", "KRW"})
	if err != nil {
		return nil, err
	}
	return &model.Observation{
		Timestamp: c.Now().In(c.Zone).Format(TimestampLayout),
		USD:       last["USD"],
		KRW:       last["KRW"],
	}, nil
}
