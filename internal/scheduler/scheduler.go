package scheduler

import (
	"fmt"
	"log"

	"BtcTracker/internal/collector"
	"BtcTracker/internal/history"
	"BtcTracker/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the update pipeline and its cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Store     *history.Store
	Composer  *report.Composer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(col *collector.Collector, store *history.Store, comp *report.Composer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Store:     store,
		Composer:  comp,
	}
}

// Register schedules the update task.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() {
		if err := s.RunNow(); err != nil {
			log.Printf("[ERROR] scheduled update failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register update task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one full update pass: fetch, append, save, compose.
// A fetch failure skips the pass entirely; history and report keep their
// previous contents.
func (s *Scheduler) RunNow() error {
	obs, err := s.Collector.Observe()
	if err != nil {
		log.Printf("[WARN] no new data, skipping update: %v", err)
		return fmt.Errorf("fetch quote: %w", err)
	}
	log.Printf("[INFO] fetched %s: USD %.2f | KRW %.0f", obs.Timestamp, obs.USD, obs.KRW)

	h := s.Store.Append(s.Store.Load(), *obs)
	if err := s.Store.Save(h); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	content, err := s.Composer.Compose(h)
	if err != nil {
		return fmt.Errorf("compose report: %w", err)
	}
	if err := s.Composer.Write(content); err != nil {
		return err
	}

	log.Printf("[INFO] update complete: %d observations retained", len(h))
	return nil
}
