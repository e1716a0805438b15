package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// JobsConfig controls the background scheduler and report exports.
type JobsConfig struct {
	Scheduler SchedulerConfig `toml:"scheduler"`
	Reports   ReportsConfig   `toml:"reports"`
}

// SchedulerConfig contains the recurring job cadences.
type SchedulerConfig struct {
	StatsRefreshMinutes int `toml:"stats_refresh_minutes"`
	ExpiryCheckMinutes  int `toml:"expiry_check_minutes"`
	NightlyExportHour   int `toml:"nightly_export_hour"`
}

// ReportsConfig contains the report export destination settings.
type ReportsConfig struct {
	Bucket         string `toml:"bucket"`
	URLExpiryHours int    `toml:"url_expiry_hours"`
}

// DefaultJobsConfig is used when no config file is provided.
func DefaultJobsConfig() *JobsConfig {
	return &JobsConfig{
		Scheduler: SchedulerConfig{
			StatsRefreshMinutes: 5,
			ExpiryCheckMinutes:  60,
			NightlyExportHour:   2,
		},
		Reports: ReportsConfig{
			Bucket:         "warehouse-reports",
			URLExpiryHours: 24,
		},
	}
}

// LoadJobsConfig reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadJobsConfig(path string) (*JobsConfig, error) {
	cfg := DefaultJobsConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load jobs config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *SchedulerConfig) StatsRefreshInterval() time.Duration {
	return time.Duration(c.StatsRefreshMinutes) * time.Minute
}

func (c *SchedulerConfig) ExpiryCheckInterval() time.Duration {
	return time.Duration(c.ExpiryCheckMinutes) * time.Minute
}

func (c *ReportsConfig) URLExpiry() time.Duration {
	return time.Duration(c.URLExpiryHours) * time.Hour
}
