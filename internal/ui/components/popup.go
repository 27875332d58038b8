package components

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/tranngoc769/QTKit/internal/timestamp"
)

// ResultPopup is the transient window that appears when a timestamp is
// detected on the clipboard. A new detection replaces the current popup,
// and the popup hides itself after the configured duration.
type ResultPopup struct {
	window    fyne.Window
	hideTimer *time.Timer
}

func NewResultPopup() *ResultPopup {
	return &ResultPopup{}
}

// Show must be called on the Fyne event loop (wrap in fyne.Do).
func (rp *ResultPopup) Show(result timestamp.Result, duration time.Duration) {
	rp.Hide()

	drv, ok := fyne.CurrentApp().Driver().(desktop.Driver)
	if !ok {
		// Mobile builds have no splash windows; the notification path
		// still announces the detection.
		return
	}

	gmtLine := widget.NewLabelWithStyle(
		fmt.Sprintf("GMT: %s", result.GMT),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true, Monospace: true},
	)
	localLine := widget.NewLabelWithStyle(
		fmt.Sprintf("%s:  %s", result.ZoneLabel, result.Local),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true, Monospace: true},
	)
	inputLine := widget.NewLabelWithStyle(
		fmt.Sprintf("%s (%s)", result.Input, result.Unit),
		fyne.TextAlignCenter,
		fyne.TextStyle{Italic: true},
	)

	window := drv.CreateSplashWindow()
	window.SetContent(container.NewPadded(container.NewVBox(
		gmtLine,
		localLine,
		widget.NewSeparator(),
		inputLine,
	)))
	window.Show()

	rp.window = window
	rp.hideTimer = time.AfterFunc(duration, func() {
		fyne.Do(rp.Hide)
	})
}

// Hide closes the current popup, if any.
func (rp *ResultPopup) Hide() {
	if rp.hideTimer != nil {
		rp.hideTimer.Stop()
		rp.hideTimer = nil
	}
	if rp.window != nil {
		rp.window.Close()
		rp.window = nil
	}
}
