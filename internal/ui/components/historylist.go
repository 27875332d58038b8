package components

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tranngoc769/QTKit/internal/config"
	"github.com/tranngoc769/QTKit/internal/database"
)

type HistoryList struct {
	repository  *database.Repository
	app         AppInterface
	container   *fyne.Container
	list        *widget.List
	records     []*database.ConversionRecord
	searchTerm  string
	statusLabel *widget.Label
}

type AppInterface interface {
	GetRepository() *database.Repository
	CopyInputToClipboard(text string)
	GetConfig() *config.Config
	GetWindow() fyne.Window
}

func NewHistoryList(repository *database.Repository, app AppInterface) *HistoryList {
	historyList := &HistoryList{
		repository:  repository,
		app:         app,
		records:     make([]*database.ConversionRecord, 0),
		statusLabel: widget.NewLabel("Ready"),
	}

	historyList.createList()
	return historyList
}

// Helper function to safely get the window
func (hl *HistoryList) getWindow() fyne.Window {
	if hl.app != nil {
		return hl.app.GetWindow()
	}
	return nil
}

func (hl *HistoryList) Create() fyne.CanvasObject {
	if hl.container == nil {
		// Create header with count and status
		header := container.NewBorder(
			nil, nil,
			widget.NewLabelWithStyle("Conversion History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			hl.statusLabel,
		)

		// Create list container with header
		hl.container = container.NewBorder(
			header,
			nil, nil, nil,
			hl.list,
		)
	}
	return hl.container
}

func (hl *HistoryList) createList() {
	hl.list = widget.NewList(
		func() int {
			return len(hl.records)
		},
		func() fyne.CanvasObject {
			return hl.createRecordTemplate()
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			hl.updateRecord(id, item)
		},
	)

	hl.list.OnSelected = func(id widget.ListItemID) {
		if id < len(hl.records) {
			hl.copyRecord(hl.records[id])
		}
		hl.list.UnselectAll()
	}
}

func (hl *HistoryList) createRecordTemplate() fyne.CanvasObject {
	icon := widget.NewIcon(theme.HistoryIcon())
	icon.Resize(fyne.NewSize(32, 32))

	input := widget.NewLabel("")
	input.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	input.Truncation = fyne.TextTruncateEllipsis

	gmtLine := widget.NewLabel("")
	gmtLine.TextStyle = fyne.TextStyle{Monospace: true}

	localLine := widget.NewLabel("")
	localLine.TextStyle = fyne.TextStyle{Monospace: true}

	detectedAt := widget.NewLabel("")
	detectedAt.TextStyle = fyne.TextStyle{Italic: true}

	unit := widget.NewLabel("")

	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	deleteButton.Importance = widget.LowImportance

	actionContainer := container.NewHBox(
		deleteButton,
	)

	infoContainer := container.NewHBox(
		detectedAt,
		widget.NewSeparator(),
		unit,
		layout.NewSpacer(),
	)

	textContainer := container.NewVBox(
		input,
		gmtLine,
		localLine,
		infoContainer,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		icon,
		actionContainer,
		textContainer,
	)

	return container.NewPadded(
		container.NewVBox(
			mainContainer,
			widget.NewSeparator(),
		),
	)
}

func (hl *HistoryList) updateRecord(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(hl.records) {
		return
	}

	record := hl.records[id]
	paddedContainer := obj.(*fyne.Container)
	container := paddedContainer.Objects[0].(*fyne.Container)
	mainContainer := container.Objects[0].(*fyne.Container)

	// Get components
	textContainer := mainContainer.Objects[0].(*fyne.Container)
	actionContainer := mainContainer.Objects[2].(*fyne.Container)

	input := textContainer.Objects[0].(*widget.Label)
	gmtLine := textContainer.Objects[1].(*widget.Label)
	localLine := textContainer.Objects[2].(*widget.Label)
	infoContainer := textContainer.Objects[3].(*fyne.Container)

	detectedAt := infoContainer.Objects[0].(*widget.Label)
	unit := infoContainer.Objects[2].(*widget.Label)

	deleteButton := actionContainer.Objects[0].(*widget.Button)

	// Update content
	input.SetText(record.Input)
	gmtLine.SetText(fmt.Sprintf("GMT: %s", record.GMT))
	localLine.SetText(fmt.Sprintf("%s:  %s", record.ZoneLabel, record.Local))
	detectedAt.SetText(hl.formatTimeAgo(record.DetectedAt))
	unit.SetText(record.Unit)

	deleteButton.OnTapped = func() {
		hl.deleteRecord(record.ID)
	}
}

func (hl *HistoryList) LoadRecentRecords() {
	fyne.Do(func() {
		hl.statusLabel.SetText("Loading...")
	})

	go func() {
		ctx := context.Background()
		records, err := hl.repository.GetRecentConversions(ctx, 100)

		fyne.Do(func() {
			if err != nil {
				hl.statusLabel.SetText("Error loading history")
				window := hl.getWindow()
				if window != nil {
					dialog.ShowError(fmt.Errorf("failed to load conversion history: %w", err), window)
				}
				return
			}

			hl.records = records
			hl.list.Refresh()

			// Update status
			count := len(records)
			if count == 0 {
				hl.statusLabel.SetText("No conversions yet")
			} else if count == 1 {
				hl.statusLabel.SetText("1 conversion")
			} else {
				hl.statusLabel.SetText(fmt.Sprintf("%d conversions", count))
			}
		})
	}()
}

func (hl *HistoryList) Search(query string) {
	hl.searchTerm = query

	if query == "" {
		hl.LoadRecentRecords()
		return
	}

	fyne.Do(func() {
		hl.statusLabel.SetText("Searching...")
	})

	go func() {
		ctx := context.Background()
		records, err := hl.repository.SearchConversions(ctx, query, 100)

		fyne.Do(func() {
			if err != nil {
				hl.statusLabel.SetText("Search failed")
				window := hl.getWindow()
				if window != nil {
					dialog.ShowError(fmt.Errorf("search failed: %w", err), window)
				}
				return
			}

			hl.records = records
			hl.list.Refresh()

			// Update status
			count := len(records)
			if count == 0 {
				hl.statusLabel.SetText(fmt.Sprintf("No results for '%s'", query))
			} else if count == 1 {
				hl.statusLabel.SetText("1 result")
			} else {
				hl.statusLabel.SetText(fmt.Sprintf("%d results", count))
			}
		})
	}()
}

func (hl *HistoryList) IsSearching() bool {
	return hl.searchTerm != ""
}

func (hl *HistoryList) Refresh() {
	if hl.searchTerm == "" {
		hl.LoadRecentRecords()
	} else {
		hl.Search(hl.searchTerm)
	}
}

func (hl *HistoryList) copyRecord(record *database.ConversionRecord) {
	hl.app.CopyInputToClipboard(record.Input)

	// Show brief success message
	fyne.Do(func() {
		hl.statusLabel.SetText("✓ Copied to clipboard")
	})

	// Reset status after 2 seconds
	go func() {
		time.Sleep(2 * time.Second)
		fyne.Do(func() {
			hl.Refresh() // This will update the status
		})
	}()
}

func (hl *HistoryList) deleteRecord(id int64) {
	window := hl.getWindow()
	if window == nil {
		return
	}

	fyne.Do(func() {
		dialog.ShowConfirm("Delete Conversion",
			"Are you sure you want to permanently delete this conversion from the history?",
			func(confirmed bool) {
				if !confirmed {
					return
				}

				go func() {
					ctx := context.Background()
					if err := hl.repository.DeleteConversion(ctx, id); err != nil {
						fyne.Do(func() {
							dialog.ShowError(fmt.Errorf("failed to delete conversion: %w", err), window)
						})
						return
					}

					fyne.Do(func() {
						hl.statusLabel.SetText("Conversion deleted")
						hl.Refresh()
					})
				}()
			}, window)
	})
}

func (hl *HistoryList) formatTimeAgo(detectedAt time.Time) string {
	now := time.Now()
	diff := now.Sub(detectedAt)

	if diff < time.Minute {
		return "Just now"
	} else if diff < time.Hour {
		minutes := int(diff.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "Yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	}

	return detectedAt.Format("Jan 2, 2006")
}
