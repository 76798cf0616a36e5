package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

// viewContext carries what every tab needs: the backend, the window's
// notifier and the logged-in user.
type viewContext struct {
	window  fyne.Window
	svc     api.Service
	notify  Notifier
	loc     *Localization
	logger  *logging.Logger
	user    *model.User
	timeout time.Duration

	// onUnauthorized runs when the server rejects the session token
	onUnauthorized func()

	// async runs blocking work off the UI goroutine; main hands results back.
	// Tests replace both with direct calls.
	async func(func())
	main  func(func())
}

func newViewContext(window fyne.Window, svc api.Service, notify Notifier, loc *Localization, logger *logging.Logger) *viewContext {
	return &viewContext{
		window:  window,
		svc:     svc,
		notify:  notify,
		loc:     loc,
		logger:  logger,
		timeout: api.DefaultTimeout,
		async:   func(f func()) { go f() },
		main:    fyne.Do,
	}
}

// request runs work with a timeout context off the UI goroutine. The closure
// work returns, if any, is applied on the UI goroutine. Must be called on the
// UI goroutine; the timeout is read before the work is handed off.
func (vc *viewContext) request(work func(ctx context.Context) func()) {
	timeout := vc.timeout
	vc.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if apply := work(ctx); apply != nil {
			vc.main(apply)
		}
	})
}

func (vc *viewContext) text(key string) string {
	return vc.loc.GetText(key)
}

func (vc *viewContext) warn(key string) {
	vc.notify.Warning(vc.text(KeyWarning), vc.text(key))
}

func (vc *viewContext) info(key string) {
	vc.notify.Info(vc.text(KeyInfo), vc.text(key))
}

func (vc *viewContext) fail(err error) {
	vc.logger.Warn("request failed", "error", err)
	if api.IsUnauthorized(err) && vc.onUnauthorized != nil {
		vc.onUnauthorized()
		return
	}
	reportError(vc.notify, vc.loc, vc.text(KeyWarning), err)
}

func (vc *viewContext) role() model.Role {
	if vc.user == nil {
		return ""
	}
	return vc.user.Role
}

// roleTitle returns the localized role name
func (vc *viewContext) roleTitle(role model.Role) string {
	switch role {
	case model.RoleDoctor:
		return vc.text(KeyRoleDoctor)
	case model.RolePatient:
		return vc.text(KeyRolePatient)
	default:
		return role.Title()
	}
}

// counterpartHeader is the column title for "the other person"
func (vc *viewContext) counterpartHeader() string {
	if vc.role().IsDoctor() {
		return vc.text(KeyPatient)
	}
	return vc.text(KeyDoctor)
}

func orDash(s string) string {
	if s == "" {
		return DashPlaceholder
	}
	return s
}
