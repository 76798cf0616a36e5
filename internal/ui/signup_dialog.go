package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

// SignupDialog registers a new account
type SignupDialog struct {
	vc     *viewContext
	dialog *dialog.CustomDialog

	nameEntry     *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	confirmEntry  *widget.Entry
	roleRadio     *widget.RadioGroup
	registerBtn   *widget.Button

	roles     map[string]model.Role
	onSuccess func(email string)
}

// NewSignupDialog creates the sign-up dialog; onSuccess receives the new email
func NewSignupDialog(vc *viewContext, onSuccess func(email string)) *SignupDialog {
	sd := &SignupDialog{vc: vc, onSuccess: onSuccess, roles: map[string]model.Role{}}
	sd.createUI()
	return sd
}

func (sd *SignupDialog) createUI() {
	sd.nameEntry = widget.NewEntry()
	sd.emailEntry = widget.NewEntry()
	sd.passwordEntry = widget.NewPasswordEntry()
	sd.confirmEntry = widget.NewPasswordEntry()

	var options []string
	for _, role := range model.Roles() {
		label := sd.vc.roleTitle(role)
		sd.roles[label] = role
		options = append(options, label)
	}
	sd.roleRadio = widget.NewRadioGroup(options, nil)
	sd.roleRadio.Horizontal = true
	sd.roleRadio.SetSelected(sd.vc.roleTitle(model.RolePatient))

	form := widget.NewForm(
		widget.NewFormItem(sd.vc.text(KeyName), sd.nameEntry),
		widget.NewFormItem(sd.vc.text(KeyEmail), sd.emailEntry),
		widget.NewFormItem(sd.vc.text(KeyPassword), sd.passwordEntry),
		widget.NewFormItem(sd.vc.text(KeyConfirmPassword), sd.confirmEntry),
		widget.NewFormItem(sd.vc.text(KeyRole), sd.roleRadio),
	)

	sd.registerBtn = widget.NewButton(sd.vc.text(KeyRegister), sd.submit)
	sd.registerBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(sd.vc.text(KeyCancel), func() { sd.dialog.Hide() })

	content := container.NewVBox(form, container.NewHBox(layout.NewSpacer(), cancelBtn, sd.registerBtn))
	sd.dialog = dialog.NewCustomWithoutButtons(sd.vc.text(KeySignupTitle), content, sd.vc.window)
	sd.dialog.Resize(fyne.NewSize(DialogWidth, 0))
}

// Show displays the dialog
func (sd *SignupDialog) Show() {
	sd.dialog.Show()
}

// submit validates the form and registers the account. The dialog stays
// open on validation errors.
func (sd *SignupDialog) submit() {
	req := api.SignupRequest{
		Name:     strings.TrimSpace(sd.nameEntry.Text),
		Email:    strings.TrimSpace(sd.emailEntry.Text),
		Password: sd.passwordEntry.Text,
		Role:     sd.roles[sd.roleRadio.Selected],
	}
	title := sd.vc.text(KeySignupTitle)

	if req.Name == "" || req.Email == "" || req.Password == "" || sd.confirmEntry.Text == "" || !req.Role.Valid() {
		sd.vc.notify.Warning(title, sd.vc.text(KeyFillAllFields))
		return
	}
	if req.Password != sd.confirmEntry.Text {
		sd.vc.notify.Warning(title, sd.vc.text(KeyPasswordsDiffer))
		return
	}

	sd.registerBtn.Disable()
	sd.vc.request(func(ctx context.Context) func() {
		err := sd.vc.svc.Signup(ctx, req)
		return func() {
			sd.registerBtn.Enable()
			if err != nil {
				reportError(sd.vc.notify, sd.vc.loc, title, err)
				return
			}
			sd.dialog.Hide()
			sd.vc.notify.Info(title, sd.vc.text(KeySignupSuccess))
			if sd.onSuccess != nil {
				sd.onSuccess(req.Email)
			}
		}
	})
}
