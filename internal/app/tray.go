package app

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

// setupTray installs the menu-bar entry. Fyne appends a Quit item to the
// tray menu automatically.
func (a *QTKitApp) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		log.Printf("System tray not supported on this platform")
		return
	}

	showItem := fyne.NewMenuItem("Show History", func() {
		a.window.Show()
		a.window.RequestFocus()
	})

	a.pauseItem = fyne.NewMenuItem("Pause Monitoring", a.toggleMonitoring)

	settingsItem := fyne.NewMenuItem("Settings...", a.showSettings)
	aboutItem := fyne.NewMenuItem("About", func() {
		a.window.Show()
		a.showAbout()
	})

	a.trayMenu = fyne.NewMenu(AppName,
		showItem,
		a.pauseItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
		aboutItem,
	)

	desk.SetSystemTrayMenu(a.trayMenu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

func (a *QTKitApp) toggleMonitoring() {
	paused := !a.monitor.IsPaused()
	a.monitor.SetPaused(paused)

	if paused {
		a.pauseItem.Label = "Resume Monitoring"
		a.statusBar.SetText("Monitoring paused")
	} else {
		a.pauseItem.Label = "Pause Monitoring"
		a.statusBar.SetText("✓ Monitoring clipboard")
	}
	a.trayMenu.Refresh()
}
