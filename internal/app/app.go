package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tranngoc769/QTKit/internal/clipboard"
	"github.com/tranngoc769/QTKit/internal/config"
	"github.com/tranngoc769/QTKit/internal/database"
	"github.com/tranngoc769/QTKit/internal/ui/components"
)

// Build-time variables (set by GoReleaser)
var (
	Version   = "0.0.0-dev" // Will be replaced by -ldflags
	BuildDate = "unknown"   // Will be replaced by -ldflags
	GitCommit = "unknown"   // Will be replaced by -ldflags
)

const (
	AppName = "QTKit Timestamp Viewer"
	AppID   = "com.tranngoc769.qtkit"
)

type QTKitApp struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *config.Config
	repository *database.Repository
	monitor    *clipboard.Monitor

	// UI Components
	historyList *components.HistoryList
	searchBar   *components.SearchBar
	toolbar     *components.Toolbar
	statusBar   *widget.Label
	resultPopup *components.ResultPopup

	// Tray menu state
	trayMenu  *fyne.Menu
	pauseItem *fyne.MenuItem

	// Update functionality
	updateChecker *UpdateChecker

	ctx        context.Context
	cancelFunc context.CancelFunc
}

func NewQTKitApp() (*QTKitApp, error) {
	fyneApp := app.NewWithID(AppID)

	// Set app metadata using build-time version
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: Version,
		Build:   1,
	})

	ctx, cancel := context.WithCancel(context.Background())

	qtkitApp := &QTKitApp{
		fyneApp:    fyneApp,
		ctx:        ctx,
		cancelFunc: cancel,
	}

	if err := qtkitApp.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return qtkitApp, nil
}

func (a *QTKitApp) initialize() error {
	if err := a.initConfig(); err != nil {
		return err
	}
	if err := a.initDatabase(); err != nil {
		return err
	}
	a.initServices()
	a.initUIComponents()

	// Initialize update checker
	a.updateChecker = NewUpdateChecker(a)

	// Create main window
	a.createMainWindow()

	// Menu-bar presence
	a.setupTray()

	return nil
}

func (a *QTKitApp) initConfig() error {
	configDir, err := a.getConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")
	a.config, err = config.Load(configPath)
	if err != nil {
		log.Printf("Creating default configuration: %v", err)
		a.config = config.Default()
		if err := a.config.Save(configPath); err != nil {
			log.Printf("Failed to save default config: %v", err)
		}
	}
	return nil
}

func (a *QTKitApp) initDatabase() error {
	configDir, err := a.getConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	a.repository, err = database.NewRepository(filepath.Join(configDir, "history.db"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

func (a *QTKitApp) initServices() {
	a.monitor = clipboard.NewMonitor(a.repository, a.config)
}

func (a *QTKitApp) initUIComponents() {
	a.historyList = components.NewHistoryList(a.repository, a)
	a.searchBar = components.NewSearchBar(a.historyList)
	a.toolbar = components.NewToolbar(a.historyList, a.showSettings, a.clearAll, a.showAbout, a.checkForUpdates)
	a.statusBar = widget.NewLabel("Starting QTKit...")
	a.resultPopup = components.NewResultPopup()
}

func (a *QTKitApp) createMainWindow() {
	a.window = a.fyneApp.NewWindow(AppName)
	a.window.SetMaster()
	a.window.Resize(fyne.NewSize(640, 520))
	a.window.CenterOnScreen()

	// Create main content
	content := a.createMainContent()
	a.window.SetContent(content)

	// Closing the window hides to the tray; Quit lives in the tray menu.
	a.window.SetCloseIntercept(func() {
		a.window.Hide()
	})
}

func (a *QTKitApp) createMainContent() fyne.CanvasObject {
	instructions := widget.NewLabel("Copy a Unix timestamp and the GMT and local times pop up automatically.")
	instructions.Alignment = fyne.TextAlignCenter

	contentArea := container.NewMax(
		a.historyList.Create(),
	)

	mainContainer := container.NewBorder(
		container.NewVBox(
			a.toolbar.Create(),
			widget.NewSeparator(),
			instructions,
			a.searchBar.Create(),
			widget.NewSeparator(),
		),
		container.NewBorder(
			widget.NewSeparator(),
			nil, nil, nil,
			container.NewPadded(a.statusBar),
		),
		nil, nil,
		contentArea,
	)

	return mainContainer
}

func (a *QTKitApp) ShowAndRun() {
	defer a.repository.Close()

	// Start background services
	go func() {
		if err := a.monitor.Start(a.ctx); err != nil {
			log.Printf("Failed to start clipboard monitor: %v", err)
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("failed to start clipboard monitoring.\n\nQTKit needs access to your clipboard to work properly.\n\nError: %v", err), a.window)
			})
		} else {
			fyne.Do(func() {
				a.statusBar.SetText("✓ Monitoring clipboard")
			})
		}
	}()

	go a.consumeMonitorEvents()

	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-a.ctx.Done():
				return
			case <-ticker.C:
				if a.historyList != nil {
					fyne.Do(func() {
						// Only refresh if showing recent records (not search results)
						if !a.historyList.IsSearching() {
							a.historyList.LoadRecentRecords()
						}
					})
				}
			}
		}
	}()

	go a.startCleanupRoutine()

	// Check for updates on startup (after a delay)
	if a.config.CheckUpdatesOnStartup {
		go func() {
			time.Sleep(5 * time.Second) // Wait for app to fully load
			if a.updateChecker != nil {
				a.updateChecker.CheckForUpdates(a.ctx, false) // Don't show "no updates" dialog
			}
		}()
	}

	// Load initial data
	a.historyList.LoadRecentRecords()

	log.Printf("%s %s started", AppName, Version)

	// Show window and run app
	a.window.Show()
	a.fyneApp.Run()

	// Cleanup
	a.cleanup()
}

// consumeMonitorEvents turns detections into the popup, an optional
// notification, and a history refresh.
func (a *QTKitApp) consumeMonitorEvents() {
	for {
		select {
		case <-a.ctx.Done():
			return
		case event := <-a.monitor.EventChannel():
			switch event.Type {
			case clipboard.EventDetection:
				a.handleDetection(event)
			case clipboard.EventError:
				log.Printf("Monitor error: %v", event.Error)
				fyne.Do(func() {
					a.statusBar.SetText("History save failed, see log")
				})
			}
		}
	}
}

func (a *QTKitApp) handleDetection(event clipboard.MonitorEvent) {
	result := event.Result
	duration := time.Duration(a.config.PopupDuration) * time.Millisecond

	fyne.Do(func() {
		a.resultPopup.Show(result, duration)
		a.statusBar.SetText(fmt.Sprintf("Converted %s", result.Input))
		if !a.historyList.IsSearching() {
			a.historyList.LoadRecentRecords()
		}
	})

	if a.config.ShowNotifications {
		a.fyneApp.SendNotification(fyne.NewNotification(
			"Timestamp Detected",
			fmt.Sprintf("GMT: %s\n%s: %s", result.GMT, result.ZoneLabel, result.Local),
		))
	}
}

func (a *QTKitApp) cleanup() {
	log.Println("Shutting down QTKit...")

	a.cancelFunc()
	a.monitor.Stop()
	a.resultPopup.Hide()
	if a.repository != nil {
		a.repository.Close()
	}
	log.Println("QTKit shutdown complete")
}

func (a *QTKitApp) startCleanupRoutine() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			if err := a.repository.CleanupOldRecords(a.ctx, a.config.MaxHistoryDays, a.config.MaxHistoryItems); err != nil {
				log.Printf("Cleanup failed: %v", err)
			}
		}
	}
}

func (a *QTKitApp) checkForUpdates() {
	if a.updateChecker != nil {
		a.updateChecker.CheckForUpdates(a.ctx, true) // Show "no updates" dialog
	}
}

func (a *QTKitApp) showSettings() {
	if a.window == nil {
		log.Printf("Warning: Window is nil, cannot show settings")
		return
	}

	fyne.Do(func() {
		settingsDialog := components.NewSettingsDialog(a.config, a.window)
		settingsDialog.Show(func(newConfig *config.Config) {
			a.config = newConfig
			a.monitor.SetConfig(newConfig)
			configDir, _ := a.getConfigDir()
			if err := a.config.Save(filepath.Join(configDir, "config.json")); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
			a.historyList.Refresh()
			fyne.Do(func() {
				a.statusBar.SetText("Settings saved")
			})
		})
	})
}

func (a *QTKitApp) clearAll() {
	if a.window == nil {
		log.Printf("Warning: Window is nil, cannot clear all")
		return
	}

	fyne.Do(func() {
		dialog.ShowConfirm("Clear All", "Are you sure you want to clear the entire conversion history? This action cannot be undone.",
			func(confirmed bool) {
				if !confirmed {
					return
				}
				go func() {
					ctx := context.Background()
					if err := a.repository.ClearAllRecords(ctx); err != nil {
						fyne.Do(func() {
							dialog.ShowError(fmt.Errorf("failed to clear history: %w", err), a.window)
						})
						return
					}
					fyne.Do(func() {
						a.historyList.Refresh()
						a.statusBar.SetText("Conversion history cleared")
					})
				}()
			}, a.window)
	})
}

func (a *QTKitApp) showAbout() {
	if a.window == nil {
		log.Printf("Warning: Window is nil, cannot show about")
		return
	}

	fyne.Do(func() {
		content := container.NewVBox(
			widget.NewLabelWithStyle(AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle(fmt.Sprintf("Version %s", Version), fyne.TextAlignCenter, fyne.TextStyle{}),
			widget.NewLabelWithStyle(fmt.Sprintf("Built: %s", BuildDate), fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
			widget.NewLabelWithStyle(fmt.Sprintf("Commit: %s", GitCommit), fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
			widget.NewLabel(""),
			widget.NewLabel("Converts copied Unix timestamps to GMT and local time"),
		)

		dialog.ShowCustom("About QTKit", "Close", content, a.window)
	})
}

func (a *QTKitApp) getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".qtkit")
	return configDir, os.MkdirAll(configDir, 0755)
}

func (a *QTKitApp) GetRepository() *database.Repository {
	return a.repository
}

func (a *QTKitApp) GetConfig() *config.Config {
	return a.config
}

func (a *QTKitApp) GetWindow() fyne.Window {
	return a.window
}

func (a *QTKitApp) CopyInputToClipboard(text string) {
	a.monitor.CopyToClipboard(text)
}
