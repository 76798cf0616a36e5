package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/porthealth/porthealth-desktop/internal/api"
)

// Notifier shows message boxes. It is the only way views surface errors.
type Notifier interface {
	Info(title, message string)
	Warning(title, message string)
	Error(title, message string)
}

// dialogNotifier shows Fyne dialogs on a window
type dialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier creates a Notifier backed by window dialogs
func NewDialogNotifier(window fyne.Window) Notifier {
	return &dialogNotifier{window: window}
}

func (n *dialogNotifier) Info(title, message string) {
	dialog.ShowInformation(title, message, n.window)
}

func (n *dialogNotifier) Warning(title, message string) {
	dialog.ShowInformation(IconWarning+" "+title, message, n.window)
}

func (n *dialogNotifier) Error(title, message string) {
	d := dialog.NewError(errors.New(message), n.window)
	d.Show()
}

// reportError maps a request error onto the right message box:
// transport failures are errors, server rejections warnings.
func reportError(n Notifier, l *Localization, title string, err error) {
	if err == nil {
		return
	}
	if api.IsNetworkError(err) {
		n.Error(l.GetText(KeyError), l.Format(KeyNetworkError, api.ErrorMessage(err)))
		return
	}
	n.Warning(title, api.ErrorMessage(err))
}
