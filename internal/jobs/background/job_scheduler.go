package background

import (
	"context"
	"log"
	"time"

	"binsight/internal/analytics"
	"binsight/internal/jobs"
	"binsight/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages the recurring background jobs.
type JobScheduler struct {
	scheduler    gocron.Scheduler
	statsSvc     analytics.Service
	expiryAlerts *jobs.ExpiryAlertService
	reports      services.ReportService
}

// Config holds the job cadences, normally read from the TOML jobs config.
type Config struct {
	StatsRefreshInterval time.Duration
	ExpiryCheckInterval  time.Duration
	NightlyExportHour    int
}

func NewJobScheduler(statsSvc analytics.Service, expiryAlerts *jobs.ExpiryAlertService, reports services.ReportService, cfg Config) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		statsSvc:     statsSvc,
		expiryAlerts: expiryAlerts,
		reports:      reports,
	}
	js.registerJobs(cfg)
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(cfg Config) {
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(cfg.StatsRefreshInterval),
		gocron.NewTask(js.refreshSnapshots),
		gocron.WithName("stats-snapshot-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create stats refresh job: %v", err)
	}

	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(cfg.ExpiryCheckInterval),
		gocron.NewTask(js.expiryAlerts.ScheduledExpiryCheck, context.Background()),
		gocron.WithName("expiry-alert-scan"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create expiry alert job: %v", err)
	}

	if _, err := js.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(cfg.NightlyExportHour), 0, 0))),
		gocron.NewTask(js.nightlyExport),
		gocron.WithName("nightly-inventory-export"),
	); err != nil {
		log.Printf("Failed to create nightly export job: %v", err)
	}
}

func (js *JobScheduler) refreshSnapshots() {
	if err := js.statsSvc.RefreshSnapshots(context.Background()); err != nil {
		log.Printf("Stats snapshot refresh failed: %v", err)
	}
}

func (js *JobScheduler) nightlyExport() {
	result, err := js.reports.ExportInventoryCSV(context.Background())
	if err != nil {
		log.Printf("Nightly inventory export failed: %v", err)
		return
	}
	log.Printf("Nightly inventory export stored as %s (%d records)", result.ObjectName, result.Records)
}
