package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	notify       Notifier
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiURLEntry    *widget.Entry
	socketURLEntry *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, notify Notifier, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		notify:       notify,
		window:       window,
		onSaved:      onSaved,
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
	l := sd.localization

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIURL)

	sd.socketURLEntry = widget.NewEntry()
	sd.socketURLEntry.SetPlaceHolder(config.DefaultSocketURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultRequestTimeout))

	// Language selection shows names, stores codes
	sd.languageCodes = make(map[string]string)
	var languageOptions []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyAPIURL)+":"),
		sd.apiURLEntry,
		widget.NewLabel(l.GetText(KeySocketURL)+":"),
		sd.socketURLEntry,
		widget.NewLabel(l.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIURL())
	sd.socketURLEntry.SetText(sd.settings.GetSocketURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings. Invalid values are reported and
// nothing is stored.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	l := sd.localization

	timeout := sd.settings.GetRequestTimeoutSeconds()
	if raw := strings.TrimSpace(sd.timeoutEntry.Text); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < config.MinRequestTimeout || value > config.MaxRequestTimeout {
			sd.notify.Warning(l.GetText(KeySettings), l.GetText(KeyInvalidTimeout))
			return
		}
		timeout = value
	}

	apiURL := strings.TrimSpace(sd.apiURLEntry.Text)
	socketURL := strings.TrimSpace(sd.socketURLEntry.Text)
	if (apiURL != "" && !config.ValidAPIURL(apiURL)) || (socketURL != "" && !config.ValidSocketURL(socketURL)) {
		sd.notify.Warning(l.GetText(KeySettings), l.GetText(KeyInvalidServerURL))
		return
	}

	if apiURL != "" {
		sd.settings.SetAPIURL(apiURL)
	}
	if socketURL != "" {
		sd.settings.SetSocketURL(socketURL)
	}
	sd.settings.SetRequestTimeoutSeconds(timeout)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.notify.Info(l.GetText(KeySettings), l.GetText(KeySettingsSaved))
	if sd.onSaved != nil {
		sd.onSaved()
	}
}
