package components

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/tranngoc769/QTKit/internal/config"
)

type SettingsDialog struct {
	config *config.Config
	parent fyne.Window
}

func NewSettingsDialog(cfg *config.Config, parent fyne.Window) *SettingsDialog {
	return &SettingsDialog{
		config: cfg,
		parent: parent,
	}
}

func (sd *SettingsDialog) Show(onSave func(*config.Config)) {
	content := sd.createContent(onSave)

	dialog.ShowCustom("Settings", "Close", content, sd.parent)
}

func (sd *SettingsDialog) createContent(onSave func(*config.Config)) fyne.CanvasObject {
	decimalPlacesSelect := widget.NewSelect(
		[]string{"0", "1", "2", "3", "4", "5", "6"}, nil)
	decimalPlacesSelect.SetSelected(strconv.Itoa(sd.config.DecimalPlaces))

	zoneLabelEntry := widget.NewEntry()
	zoneLabelEntry.SetText(sd.config.ZoneLabel)

	zoneOffsetEntry := sd.createNumericEntry(strconv.Itoa(sd.config.ZoneOffsetMinutes))
	intervalEntry := sd.createNumericEntry(strconv.Itoa(sd.config.MonitorInterval))
	popupDurationEntry := sd.createNumericEntry(strconv.Itoa(sd.config.PopupDuration))
	maxItemsEntry := sd.createNumericEntry(strconv.Itoa(sd.config.MaxHistoryItems))
	maxDaysEntry := sd.createNumericEntry(strconv.Itoa(sd.config.MaxHistoryDays))

	notificationsCheck := sd.createCheckbox("Show a desktop notification on detection", sd.config.ShowNotifications)

	// Update settings
	checkUpdatesOnStartupCheck := sd.createCheckbox("Check for updates on startup", sd.config.CheckUpdatesOnStartup)
	autoDownloadUpdatesCheck := sd.createCheckbox("Automatically download updates", sd.config.AutoDownloadUpdates)

	tabs := container.NewAppTabs(
		sd.createConversionTab(decimalPlacesSelect, zoneLabelEntry, zoneOffsetEntry),
		sd.createMonitoringTab(intervalEntry, popupDurationEntry, notificationsCheck),
		sd.createStorageTab(maxItemsEntry, maxDaysEntry),
		sd.createUpdatesTab(checkUpdatesOnStartupCheck, autoDownloadUpdatesCheck),
	)

	saveButton := sd.createSaveButton(settingsInputs{
		decimalPlaces:  decimalPlacesSelect,
		zoneLabel:      zoneLabelEntry,
		zoneOffset:     zoneOffsetEntry,
		interval:       intervalEntry,
		popupDuration:  popupDurationEntry,
		maxItems:       maxItemsEntry,
		maxDays:        maxDaysEntry,
		notifications:  notificationsCheck,
		checkOnStartup: checkUpdatesOnStartupCheck,
		autoDownload:   autoDownloadUpdatesCheck,
	}, onSave)
	resetButton := sd.createResetButton(onSave)

	buttonContainer := container.NewHBox(
		resetButton,
		layout.NewSpacer(), // Spacer
		saveButton,
	)

	mainContent := container.NewVBox(
		tabs,
		widget.NewSeparator(),
		buttonContainer,
	)

	// Set a reasonable size
	mainContent.Resize(fyne.NewSize(500, 400))

	return mainContent
}

type settingsInputs struct {
	decimalPlaces  *widget.Select
	zoneLabel      *widget.Entry
	zoneOffset     *widget.Entry
	interval       *widget.Entry
	popupDuration  *widget.Entry
	maxItems       *widget.Entry
	maxDays        *widget.Entry
	notifications  *widget.Check
	checkOnStartup *widget.Check
	autoDownload   *widget.Check
}

func (sd *SettingsDialog) createNumericEntry(initialValue string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(initialValue)
	entry.Validator = func(text string) error {
		if _, err := strconv.Atoi(text); err != nil {
			return fmt.Errorf("must be a number")
		}
		return nil
	}
	return entry
}

func (sd *SettingsDialog) createCheckbox(text string, checked bool) *widget.Check {
	check := widget.NewCheck(text, nil)
	check.SetChecked(checked)
	return check
}

func (sd *SettingsDialog) createConversionTab(decimalPlacesSelect *widget.Select, zoneLabelEntry, zoneOffsetEntry *widget.Entry) *container.TabItem {
	conversionForm := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Sub-second decimal places", decimalPlacesSelect),
			widget.NewFormItem("Local zone label", zoneLabelEntry),
			widget.NewFormItem("Local zone offset (minutes from UTC)", zoneOffsetEntry),
		},
	}
	return container.NewTabItem("Conversion", container.NewVBox(
		widget.NewLabelWithStyle("Timestamp Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		conversionForm,
		widget.NewLabel("The popup always shows GMT alongside the configured local zone."),
	))
}

func (sd *SettingsDialog) createMonitoringTab(intervalEntry, popupDurationEntry *widget.Entry, notificationsCheck *widget.Check) *container.TabItem {
	monitoringForm := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Clipboard poll interval (ms)", intervalEntry),
			widget.NewFormItem("Popup duration (ms)", popupDurationEntry),
			widget.NewFormItem("", notificationsCheck),
		},
	}
	return container.NewTabItem("Monitoring", container.NewVBox(
		widget.NewLabelWithStyle("Clipboard Monitoring", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		monitoringForm,
	))
}

func (sd *SettingsDialog) createStorageTab(maxItemsEntry, maxDaysEntry *widget.Entry) *container.TabItem {
	storageForm := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Maximum conversions to keep", maxItemsEntry),
			widget.NewFormItem("Delete conversions older than (days)", maxDaysEntry),
		},
	}
	return container.NewTabItem("Storage", container.NewVBox(
		widget.NewLabelWithStyle("Conversion History Storage", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		storageForm,
	))
}

func (sd *SettingsDialog) createUpdatesTab(checkUpdatesOnStartupCheck, autoDownloadUpdatesCheck *widget.Check) *container.TabItem {
	updatesForm := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("", checkUpdatesOnStartupCheck),
			widget.NewFormItem("", autoDownloadUpdatesCheck),
		},
	}

	infoText := widget.NewLabel("QTKit can automatically check for and install updates to keep you secure and up-to-date with the latest features.")
	infoText.Wrapping = fyne.TextWrapWord

	return container.NewTabItem("Updates", container.NewVBox(
		widget.NewLabelWithStyle("Automatic Updates", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		infoText,
		widget.NewLabel(""),
		updatesForm,
	))
}

func (sd *SettingsDialog) createSaveButton(inputs settingsInputs, onSave func(*config.Config)) *widget.Button {
	saveButton := widget.NewButton("Save Settings", func() {
		// Validate inputs
		decimalPlaces, err := strconv.Atoi(inputs.decimalPlaces.Selected)
		if err != nil {
			dialog.ShowError(err, sd.parent)
			return
		}

		zoneOffset, err := strconv.Atoi(inputs.zoneOffset.Text)
		if err != nil {
			dialog.ShowError(err, sd.parent)
			return
		}

		interval, err := strconv.Atoi(inputs.interval.Text)
		if err != nil {
			dialog.ShowError(err, sd.parent)
			return
		}

		popupDuration, err := strconv.Atoi(inputs.popupDuration.Text)
		if err != nil {
			dialog.ShowError(err, sd.parent)
			return
		}

		maxItems, err := strconv.Atoi(inputs.maxItems.Text)
		if err != nil {
			dialog.ShowError(err, sd.parent)
			return
		}

		maxDays, err := strconv.Atoi(inputs.maxDays.Text)
		if err != nil {
			dialog.ShowError(err, sd.parent)
			return
		}

		// Create new config
		newConfig := &config.Config{}
		*newConfig = *sd.config

		newConfig.DecimalPlaces = decimalPlaces
		newConfig.ZoneLabel = inputs.zoneLabel.Text
		newConfig.ZoneOffsetMinutes = zoneOffset
		newConfig.MonitorInterval = interval
		newConfig.PopupDuration = popupDuration
		newConfig.MaxHistoryItems = maxItems
		newConfig.MaxHistoryDays = maxDays
		newConfig.ShowNotifications = inputs.notifications.Checked
		newConfig.CheckUpdatesOnStartup = inputs.checkOnStartup.Checked
		newConfig.AutoDownloadUpdates = inputs.autoDownload.Checked

		onSave(newConfig)
	})
	saveButton.Importance = widget.HighImportance
	return saveButton
}

func (sd *SettingsDialog) createResetButton(onSave func(*config.Config)) *widget.Button {
	resetButton := widget.NewButton("Reset to Defaults", func() {
		dialog.ShowConfirm("Reset Settings",
			"Are you sure you want to reset all settings to their default values?",
			func(confirmed bool) {
				if confirmed {
					defaultConfig := config.Default()
					onSave(defaultConfig)
				}
			}, sd.parent)
	})
	resetButton.Importance = widget.LowImportance
	return resetButton
}
