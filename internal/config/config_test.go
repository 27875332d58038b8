package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{
		"decimal_places": 42,
		"zone_label": "",
		"zone_offset_minutes": 5000,
		"monitor_interval_ms": -1,
		"popup_duration_ms": 0,
		"max_history_items": -5,
		"max_history_days": 0
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.DecimalPlaces)
	assert.Equal(t, "VN", cfg.ZoneLabel)
	assert.Equal(t, 7*60, cfg.ZoneOffsetMinutes)
	assert.Equal(t, 500, cfg.MonitorInterval)
	assert.Equal(t, 4000, cfg.PopupDuration)
	assert.Equal(t, 1000, cfg.MaxHistoryItems)
	assert.Equal(t, 30, cfg.MaxHistoryDays)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.DecimalPlaces = 3
	cfg.ZoneLabel = "ICT"
	cfg.ZoneOffsetMinutes = 7 * 60
	cfg.ShowNotifications = false
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDetectorSettings(t *testing.T) {
	cfg := Default()
	cfg.DecimalPlaces = 2

	s := cfg.DetectorSettings()
	assert.Equal(t, 2, s.DecimalPlaces)
	assert.Equal(t, "VN", s.ZoneLabel)

	name, offset := time.Now().In(s.Zone).Zone()
	assert.Equal(t, "VN", name)
	assert.Equal(t, 7*60*60, offset)
}
