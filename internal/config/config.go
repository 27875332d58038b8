package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tranngoc769/QTKit/internal/timestamp"
)

type Config struct {
	DecimalPlaces     int    `json:"decimal_places"`
	ZoneLabel         string `json:"zone_label"`
	ZoneOffsetMinutes int    `json:"zone_offset_minutes"`

	MonitorInterval   int  `json:"monitor_interval_ms"`
	PopupDuration     int  `json:"popup_duration_ms"`
	ShowNotifications bool `json:"show_notifications"`

	MaxHistoryItems int `json:"max_history_items"`
	MaxHistoryDays  int `json:"max_history_days"`

	// Update settings
	CheckUpdatesOnStartup bool `json:"check_updates_on_startup"`
	AutoDownloadUpdates   bool `json:"auto_download_updates"`
}

func Default() *Config {
	return &Config{
		DecimalPlaces:     0,
		ZoneLabel:         "VN",
		ZoneOffsetMinutes: 7 * 60,

		MonitorInterval:   500,
		PopupDuration:     4000,
		ShowNotifications: true,

		MaxHistoryItems: 1000,
		MaxHistoryDays:  30,

		CheckUpdatesOnStartup: true,
		AutoDownloadUpdates:   false,
	}
}

func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Return default config if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.validate()

	return config, nil
}

func (c *Config) Save(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) validate() {
	if c.DecimalPlaces < 0 || c.DecimalPlaces > 6 {
		c.DecimalPlaces = 0
	}
	if c.ZoneLabel == "" {
		c.ZoneLabel = "VN"
	}
	// UTC-14 .. UTC+14 covers every real offset
	if c.ZoneOffsetMinutes < -14*60 || c.ZoneOffsetMinutes > 14*60 {
		c.ZoneOffsetMinutes = 7 * 60
	}
	if c.MonitorInterval <= 0 {
		c.MonitorInterval = 500
	}
	if c.PopupDuration <= 0 {
		c.PopupDuration = 4000
	}
	if c.MaxHistoryItems <= 0 {
		c.MaxHistoryItems = 1000
	}
	if c.MaxHistoryDays <= 0 {
		c.MaxHistoryDays = 30
	}
}

// DetectorSettings builds the value handed to the timestamp detector.
func (c *Config) DetectorSettings() timestamp.Settings {
	return timestamp.Settings{
		DecimalPlaces: c.DecimalPlaces,
		Zone:          time.FixedZone(c.ZoneLabel, c.ZoneOffsetMinutes*60),
		ZoneLabel:     c.ZoneLabel,
	}
}
