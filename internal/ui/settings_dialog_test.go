package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/porthealth/porthealth-desktop/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *fakeNotifier, *int) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	notifier := &fakeNotifier{}
	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), notifier, window, func() { saved++ })
	sd.loadCurrentSettings()
	return sd, settings, notifier, &saved
}

func TestSettingsDialogLoadsCurrentValues(t *testing.T) {
	sd, settings, _, _ := newTestSettingsDialog(t)

	if sd.apiURLEntry.Text != settings.GetAPIURL() {
		t.Errorf("api url entry = %q", sd.apiURLEntry.Text)
	}
	if sd.timeoutEntry.Text != "30" {
		t.Errorf("timeout entry = %q", sd.timeoutEntry.Text)
	}
	if sd.languageCodes[sd.languageSelect.Selected] != settings.GetLanguage() {
		t.Errorf("language select = %q", sd.languageSelect.Selected)
	}
}

func TestSettingsDialogRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		apiURL    string
		socketURL string
		timeout   string
		wantKey   string
	}{
		{"bad api url", "clinic.example.com", "ws://clinic.example.com", "30", KeyInvalidServerURL},
		{"bad socket url", "https://clinic.example.com", "https://clinic.example.com", "30", KeyInvalidServerURL},
		{"bad timeout", "https://clinic.example.com", "ws://clinic.example.com", "soon", KeyInvalidTimeout},
		{"timeout too long", "https://clinic.example.com", "ws://clinic.example.com", "500", KeyInvalidTimeout},
		{"zero timeout", "https://clinic.example.com", "ws://clinic.example.com", "0", KeyInvalidTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd, settings, notifier, saved := newTestSettingsDialog(t)
			before := settings.GetAPIURL()

			sd.apiURLEntry.SetText(tt.apiURL)
			sd.socketURLEntry.SetText(tt.socketURL)
			sd.timeoutEntry.SetText(tt.timeout)
			sd.onSave(true)

			if got := notifier.last(); got.kind != "warning" || got.message != sd.localization.GetText(tt.wantKey) {
				t.Errorf("expected %q warning, got %+v", tt.wantKey, got)
			}
			if settings.GetAPIURL() != before {
				t.Error("nothing should be stored when a value is invalid")
			}
			if *saved != 0 {
				t.Error("onSaved must not be called")
			}
		})
	}
}

func TestSettingsDialogSave(t *testing.T) {
	sd, settings, notifier, saved := newTestSettingsDialog(t)

	sd.apiURLEntry.SetText("https://clinic.example.com/")
	sd.socketURLEntry.SetText("wss://clinic.example.com/socket")
	sd.timeoutEntry.SetText("45")
	sd.languageSelect.SetSelected("Português")
	sd.onSave(true)

	if got := settings.GetAPIURL(); got != "https://clinic.example.com" {
		t.Errorf("api url = %q", got)
	}
	if got := settings.GetSocketURL(); got != "wss://clinic.example.com/socket" {
		t.Errorf("socket url = %q", got)
	}
	if got := settings.GetRequestTimeoutSeconds(); got != 45 {
		t.Errorf("timeout = %d, want 45", got)
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("language = %q", got)
	}
	if *saved != 1 {
		t.Errorf("onSaved called %d times", *saved)
	}
	if got := notifier.last(); got.kind != "info" {
		t.Errorf("expected saved info, got %+v", got)
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	sd, _, notifier, saved := newTestSettingsDialog(t)

	sd.apiURLEntry.SetText("not a url")
	sd.onSave(false)

	if len(notifier.notes) != 0 || *saved != 0 {
		t.Error("cancel should do nothing")
	}
}
