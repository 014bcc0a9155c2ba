package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"BtcTracker/internal/chart"
	"BtcTracker/internal/collector"
	"BtcTracker/internal/config"
	"BtcTracker/internal/history"
	"BtcTracker/internal/report"
	"BtcTracker/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BtcTracker starting...")

	// Optional .env file for local runs
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewBlockchainFetcher(cfg.DataSource.TickerURL, cfg.Timeout(), cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.Location(), nil)

	// Init history store
	store := history.NewStore(cfg.History.Path, cfg.History.MaxEntries)

	// Init renderer and composer
	renderer, err := chart.New(cfg.Chart.Style, cfg.Chart.Height)
	if err != nil {
		log.Fatalf("[FATAL] init renderer: %v", err)
	}
	log.Printf("[INFO] chart style: %s", renderer.Name())
	comp := report.NewComposer(renderer, cfg.Report.Path, cfg.Location(), nil)

	sched := scheduler.NewScheduler(col, store, comp)

	// One-shot mode for CI runs: single pass, exit code reflects the outcome
	if os.Getenv("RUN_ONCE") == "true" {
		if err := sched.RunNow(); err != nil {
			log.Fatalf("[FATAL] update failed: %v", err)
		}
		log.Println("[INFO] BtcTracker done")
		return
	}

	// Daemon mode: in-process cron schedule
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing update now")
		go func() {
			if err := sched.RunNow(); err != nil {
				log.Printf("[ERROR] initial update failed: %v", err)
			}
		}()
	}

	log.Println("[INFO] BtcTracker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] BtcTracker stopped")
}
