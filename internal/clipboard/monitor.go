package clipboard

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.design/x/clipboard"

	"github.com/tranngoc769/QTKit/internal/config"
	"github.com/tranngoc769/QTKit/internal/database"
	"github.com/tranngoc769/QTKit/internal/timestamp"
)

type Monitor struct {
	repository *database.Repository
	config     *config.Config
	lastText   string
	eventChan  chan MonitorEvent
	isRunning  bool
	paused     bool
}

func NewMonitor(repository *database.Repository, config *config.Config) *Monitor {
	return &Monitor{
		repository: repository,
		config:     config,
		eventChan:  make(chan MonitorEvent, 100),
	}
}

func (m *Monitor) Start(ctx context.Context) error {
	if m.isRunning {
		return fmt.Errorf("monitor is already running")
	}

	// Initialize clipboard
	err := clipboard.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	m.isRunning = true
	log.Println("Clipboard monitor started")

	// Start monitoring in a separate goroutine
	go m.monitorLoop(ctx)

	return nil
}

func (m *Monitor) Stop() {
	if !m.isRunning {
		return
	}

	m.isRunning = false
	log.Println("Clipboard monitor stopped")
}

// SetConfig applies new settings. The next poll cycle picks them up.
func (m *Monitor) SetConfig(config *config.Config) {
	m.config = config
}

// SetPaused suspends detection while leaving the poll loop running, so
// the tray toggle is instant in both directions.
func (m *Monitor) SetPaused(paused bool) {
	m.paused = paused
	if paused {
		log.Println("Clipboard monitoring paused")
	} else {
		log.Println("Clipboard monitoring resumed")
	}
}

func (m *Monitor) IsPaused() bool {
	return m.paused
}

func (m *Monitor) monitorLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(m.config.MonitorInterval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.paused || !m.isRunning {
				continue
			}
			m.checkClipboard(ctx)
		}
	}
}

func (m *Monitor) checkClipboard(ctx context.Context) {
	textData := clipboard.Read(clipboard.FmtText)
	if len(textData) == 0 {
		return
	}
	m.HandleText(ctx, string(textData))
}

// HandleText runs one detection cycle over the given clipboard text.
// Unchanged text is skipped so a timestamp only triggers once per copy.
func (m *Monitor) HandleText(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" || text == m.lastText {
		return
	}
	m.lastText = text

	result, ok := timestamp.Detect(text, m.config.DetectorSettings())
	if !ok {
		return
	}

	record, err := m.repository.SaveConversion(ctx, result)
	if err != nil {
		log.Printf("Failed to save conversion record: %v", err)
		m.eventChan <- MonitorEvent{
			Type:  EventError,
			Error: err,
		}
		// The detection itself is still worth showing.
	}

	m.eventChan <- MonitorEvent{
		Type:   EventDetection,
		Result: result,
		Record: record,
	}

	log.Printf("Detected %s timestamp: %s", result.Unit, result.Input)
}

// CopyToClipboard writes a history entry's input back to the clipboard.
// The dedupe text is primed so the write does not re-trigger detection.
func (m *Monitor) CopyToClipboard(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
	m.lastText = strings.TrimSpace(text)

	log.Printf("Copied history entry to clipboard")
}

func (m *Monitor) EventChannel() <-chan MonitorEvent {
	return m.eventChan
}
