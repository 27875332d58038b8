package clipboard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranngoc769/QTKit/internal/config"
	"github.com/tranngoc769/QTKit/internal/database"
)

func newTestMonitor(t *testing.T) *Monitor {
	t.Helper()

	repo, err := database.NewRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewMonitor(repo, config.Default())
}

func drainEvent(t *testing.T, m *Monitor) MonitorEvent {
	t.Helper()

	select {
	case event := <-m.EventChannel():
		return event
	default:
		t.Fatal("expected a monitor event")
		return MonitorEvent{}
	}
}

func assertNoEvent(t *testing.T, m *Monitor) {
	t.Helper()

	select {
	case event := <-m.EventChannel():
		t.Fatalf("unexpected monitor event: %+v", event)
	default:
	}
}

func TestHandleTextEmitsDetection(t *testing.T) {
	m := newTestMonitor(t)

	m.HandleText(context.Background(), "1640995200")

	event := drainEvent(t, m)
	assert.Equal(t, EventDetection, event.Type)
	assert.Equal(t, "2022-01-01 00:00:00", event.Result.GMT)
	assert.Equal(t, "2022-01-01 07:00:00", event.Result.Local)
	require.NotNil(t, event.Record)
	assert.Equal(t, "1640995200", event.Record.Input)
}

func TestHandleTextSkipsUnchangedText(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()

	m.HandleText(ctx, "1640995200")
	drainEvent(t, m)

	// Same text on the next poll cycle must not re-trigger.
	m.HandleText(ctx, "1640995200")
	assertNoEvent(t, m)

	// Whitespace differences do not count as a change.
	m.HandleText(ctx, "  1640995200\n")
	assertNoEvent(t, m)
}

func TestHandleTextIgnoresNonTimestamps(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()

	for _, text := range []string{"hello", "", "12.34.56", "   "} {
		m.HandleText(ctx, text)
		assertNoEvent(t, m)
	}
}

func TestHandleTextAppliesConfiguredSettings(t *testing.T) {
	m := newTestMonitor(t)

	cfg := config.Default()
	cfg.DecimalPlaces = 3
	cfg.ZoneLabel = "ICT"
	m.SetConfig(cfg)

	m.HandleText(context.Background(), "1640995200.123456")

	event := drainEvent(t, m)
	assert.Equal(t, "2022-01-01 00:00:00.123", event.Result.GMT)
	assert.Equal(t, "ICT", event.Result.ZoneLabel)
}

func TestHandleTextDetectsChangedTimestamp(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()

	m.HandleText(ctx, "1640995200")
	drainEvent(t, m)

	m.HandleText(ctx, "1700000000")
	event := drainEvent(t, m)
	assert.Equal(t, "1700000000", event.Result.Input)
}
