package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	weekStartSelect    *widget.Select
	refreshEntry       *widget.Entry
	showConnectedCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written, so the shell can re-render the calendar.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.weekStartSelect = widget.NewSelect([]string{time.Monday.String(), time.Sunday.String()}, nil)

	sd.refreshEntry = widget.NewEntry()
	sd.refreshEntry.SetPlaceHolder(strconv.Itoa(config.MinRefreshInterval) + "-" + strconv.Itoa(config.MaxRefreshInterval))

	sd.showConnectedCheck = widget.NewCheck("Show connection indicator", nil)

	form := container.NewVBox(
		widget.NewLabel("Calendar"),
		widget.NewSeparator(),

		widget.NewLabel("Week starts on:"),
		sd.weekStartSelect,

		widget.NewSeparator(),
		widget.NewLabel("Data"),
		widget.NewSeparator(),

		widget.NewLabel("Auto-refresh interval (seconds):"),
		sd.refreshEntry,

		sd.showConnectedCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.weekStartSelect.SetSelected(sd.settings.GetWeekStartDay().String())
	sd.refreshEntry.SetText(strconv.Itoa(int(sd.settings.GetRefreshInterval() / time.Second)))
	sd.showConnectedCheck.SetChecked(sd.settings.GetShowConnected())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.weekStartSelect.Selected == time.Sunday.String() {
		sd.settings.SetWeekStartDay(time.Sunday)
	} else {
		sd.settings.SetWeekStartDay(time.Monday)
	}

	if sd.refreshEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.refreshEntry.Text); err == nil {
			sd.settings.SetRefreshInterval(seconds)
		}
	}

	sd.settings.SetShowConnected(sd.showConnectedCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
