package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// LoginView is the first screen: email, password, and a link to sign up
type LoginView struct {
	vc *viewContext

	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginBtn      *widget.Button
	signupBtn     *widget.Button
	content       fyne.CanvasObject

	onLogin  func(*model.Session)
	onSignup func()
}

// NewLoginView creates the login screen. lastEmail pre-fills the email entry.
func NewLoginView(vc *viewContext, lastEmail string, onLogin func(*model.Session), onSignup func()) *LoginView {
	lv := &LoginView{vc: vc, onLogin: onLogin, onSignup: onSignup}

	lv.emailEntry = widget.NewEntry()
	lv.emailEntry.SetPlaceHolder(vc.text(KeyEmail))
	lv.emailEntry.SetText(lastEmail)

	lv.passwordEntry = widget.NewPasswordEntry()
	lv.passwordEntry.SetPlaceHolder(vc.text(KeyPassword))
	lv.passwordEntry.OnSubmitted = func(string) { lv.submit() }

	lv.loginBtn = widget.NewButton(vc.text(KeyLogin), lv.submit)
	lv.loginBtn.Importance = widget.HighImportance

	lv.signupBtn = widget.NewButton(vc.text(KeySignup), func() {
		if lv.onSignup != nil {
			lv.onSignup()
		}
	})
	lv.signupBtn.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(vc.text(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	form := container.NewVBox(
		title,
		widget.NewSeparator(),
		widget.NewLabel(vc.text(KeyEmail)),
		lv.emailEntry,
		widget.NewLabel(vc.text(KeyPassword)),
		lv.passwordEntry,
		lv.loginBtn,
		container.NewHBox(layout.NewSpacer(), widget.NewLabel(vc.text(KeyNoAccount)), lv.signupBtn),
	)

	sized := container.NewGridWrap(fyne.NewSize(LoginFormWidth, form.MinSize().Height), form)
	lv.content = container.NewCenter(sized)
	return lv
}

// Content returns the view's root object
func (lv *LoginView) Content() fyne.CanvasObject {
	return lv.content
}

// SetEmail replaces the email entry text, e.g. after a successful sign-up
func (lv *LoginView) SetEmail(email string) {
	lv.emailEntry.SetText(email)
	lv.passwordEntry.SetText("")
}

// submit validates the form and logs in
func (lv *LoginView) submit() {
	email := strings.TrimSpace(lv.emailEntry.Text)
	password := lv.passwordEntry.Text
	if email == "" || password == "" {
		lv.vc.notify.Warning(lv.vc.text(KeyLoginTitle), lv.vc.text(KeyFillAllFields))
		return
	}

	lv.loginBtn.Disable()
	lv.vc.request(func(ctx context.Context) func() {
		session, err := lv.vc.svc.Login(ctx, email, password)
		return func() {
			lv.loginBtn.Enable()
			if err != nil {
				reportError(lv.vc.notify, lv.vc.loc, lv.vc.text(KeyLoginTitle), err)
				return
			}
			lv.passwordEntry.SetText("")
			if lv.onLogin != nil {
				lv.onLogin(session)
			}
		}
	})
}
