package ui

import (
	"testing"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

func fillSignup(sd *SignupDialog, password, confirm string) {
	sd.nameEntry.SetText("Ann")
	sd.emailEntry.SetText("ann@clinic.io")
	sd.passwordEntry.SetText(password)
	sd.confirmEntry.SetText(confirm)
}

func TestSignupDialogPasswordMismatch(t *testing.T) {
	vc, svc, notifier := newTestContext(t, nil)
	sd := NewSignupDialog(vc, nil)

	fillSignup(sd, "secret", "secret2")
	sd.submit()

	if svc.called("Signup") {
		t.Error("Signup must not be called when passwords differ")
	}
	if got := notifier.last(); got.message != vc.text(KeyPasswordsDiffer) {
		t.Errorf("expected passwords-differ warning, got %+v", got)
	}
}

func TestSignupDialogRequiresFields(t *testing.T) {
	vc, svc, notifier := newTestContext(t, nil)
	sd := NewSignupDialog(vc, nil)

	fillSignup(sd, "secret", "secret")
	sd.nameEntry.SetText("  ")
	sd.submit()

	if svc.called("Signup") {
		t.Error("Signup must not be called without a name")
	}
	if got := notifier.last(); got.message != vc.text(KeyFillAllFields) {
		t.Errorf("expected fill-all-fields warning, got %+v", got)
	}
}

func TestSignupDialogDefaultsToPatient(t *testing.T) {
	vc, _, _ := newTestContext(t, nil)
	sd := NewSignupDialog(vc, nil)

	if sd.roles[sd.roleRadio.Selected] != model.RolePatient {
		t.Errorf("expected patient role preselected, got %q", sd.roleRadio.Selected)
	}
}

func TestSignupDialogSuccess(t *testing.T) {
	vc, svc, notifier := newTestContext(t, nil)
	var email string
	sd := NewSignupDialog(vc, func(e string) { email = e })

	fillSignup(sd, "secret", "secret")
	sd.roleRadio.SetSelected(vc.roleTitle(model.RoleDoctor))
	sd.submit()

	want := api.SignupRequest{Name: "Ann", Email: "ann@clinic.io", Password: "secret", Role: model.RoleDoctor}
	if svc.signup == nil || *svc.signup != want {
		t.Fatalf("expected signup %+v, got %+v", want, svc.signup)
	}
	if email != "ann@clinic.io" {
		t.Errorf("onSuccess got %q", email)
	}
	if got := notifier.last(); got.kind != "info" || got.message != vc.text(KeySignupSuccess) {
		t.Errorf("expected success info, got %+v", got)
	}
}
