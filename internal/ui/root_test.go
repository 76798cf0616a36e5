package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/golang-jwt/jwt/v5"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/chat"
	"github.com/porthealth/porthealth-desktop/internal/config"
	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

type rootFixture struct {
	ui         *RootUI
	svc        *fakeService
	notifier   *fakeNotifier
	settings   *config.Settings
	transports []*fakeTransport
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	f := &rootFixture{svc: &fakeService{}, notifier: &fakeNotifier{}, settings: config.NewSettings(app)}
	factory := func(socketURL string, session *model.Session) chat.Transport {
		ft := &fakeTransport{}
		f.transports = append(f.transports, ft)
		return ft
	}
	f.ui = NewRootUI(app, window, f.settings, f.svc, factory, logging.Discard())
	f.ui.notifier = f.notifier
	f.ui.vc.notify = f.notifier
	makeSync(f.ui.vc)
	return f
}

func (f *rootFixture) login(t *testing.T, session *model.Session) {
	t.Helper()
	f.svc.session = session
	f.ui.loginView.emailEntry.SetText(session.User.Email)
	f.ui.loginView.passwordEntry.SetText("secret")
	f.ui.loginView.submit()
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 2, "exp": exp.Unix()}).SignedString([]byte("test"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestRootUIStartsOnLogin(t *testing.T) {
	f := newRootFixture(t)

	if f.ui.Session() != nil {
		t.Error("no session expected before login")
	}
	if f.ui.window.Content() != f.ui.loginView.Content() {
		t.Error("login view should be shown first")
	}
}

func TestRootUIDoctorLogin(t *testing.T) {
	f := newRootFixture(t)
	doctor := copyUser(testDoctor)
	doctor.Theme = model.ThemeDark
	f.login(t, &model.Session{Token: "tok", User: doctor})

	if f.ui.Session() == nil {
		t.Fatal("session should be set after login")
	}
	if f.svc.token != "tok" {
		t.Errorf("token not passed to the service, got %q", f.svc.token)
	}
	if got := f.settings.GetLastEmail(); got != doctor.Email {
		t.Errorf("last email = %q", got)
	}
	if got := len(f.ui.tabs.Items); got != 5 {
		t.Errorf("doctor should get 5 tabs, got %d", got)
	}
	if f.ui.patientsTab == nil {
		t.Error("doctor should get the patients tab")
	}
	if th, ok := f.ui.app.Settings().Theme().(*CompactTheme); !ok || !th.IsDark() {
		t.Error("dark profile preference should switch the theme")
	}
	for _, call := range []string{"ListAppointments", "ListPrescriptions", "ChatContacts", "ListPatients"} {
		if !f.svc.called(call) {
			t.Errorf("expected %s after login", call)
		}
	}
	if len(f.transports) != 1 || !f.transports[0].started {
		t.Fatal("chat transport should be started")
	}
}

func TestRootUIPatientLogin(t *testing.T) {
	f := newRootFixture(t)
	f.login(t, &model.Session{Token: "tok", User: copyUser(testPatient)})

	if got := len(f.ui.tabs.Items); got != 4 {
		t.Errorf("patient should get 4 tabs, got %d", got)
	}
	if f.ui.patientsTab != nil {
		t.Error("patients should not get the patients tab")
	}
	if !f.svc.called("ListDoctors") {
		t.Error("patients should load the doctor list")
	}
}

func TestRootUIExpiredSession(t *testing.T) {
	f := newRootFixture(t)
	f.login(t, &model.Session{Token: signedToken(t, time.Now().Add(-time.Hour)), User: copyUser(testDoctor)})

	if f.ui.Session() != nil {
		t.Error("expired token must not start a session")
	}
	if got := f.notifier.last(); got.message != f.ui.localization.GetText(KeySessionExpired) {
		t.Errorf("expected session-expired warning, got %+v", got)
	}
	if len(f.transports) != 0 {
		t.Error("no transport should be created")
	}
}

func TestRootUIScheduleExpiry(t *testing.T) {
	f := newRootFixture(t)
	f.login(t, &model.Session{Token: signedToken(t, time.Now().Add(time.Hour)), User: copyUser(testDoctor)})

	if f.ui.expiryTimer == nil {
		t.Fatal("expiry timer should be scheduled for tokens with exp")
	}
	f.ui.Logout()
	if f.ui.expiryTimer != nil {
		t.Error("logout should cancel the expiry timer")
	}
}

func TestRootUIIncomingMessages(t *testing.T) {
	f := newRootFixture(t)
	f.login(t, &model.Session{Token: "tok", User: copyUser(testPatient)})
	transport := f.transports[0]

	transport.onStatus(model.ConnectionConnected)
	if want := f.ui.localization.Format(KeyChatStatus, model.ConnectionConnected); f.ui.chatTab.statusLabel.Text != want {
		t.Errorf("status label = %q, want %q", f.ui.chatTab.statusLabel.Text, want)
	}

	transport.onMessage(model.ChatMessage{From: 2, To: 4, SenderName: "Dr. House", Content: "Hi"})
	if lines := f.ui.chatTab.Lines(); len(lines) != 1 || lines[0] != "Dr. House: Hi" {
		t.Errorf("unexpected chat lines %v", lines)
	}
	if !f.ui.notificationContainer.Visible() || f.ui.notificationLabel.Text != "Dr. House: Hi" {
		t.Errorf("message outside the chat tab should show a notification, got %q", f.ui.notificationLabel.Text)
	}

	f.ui.tabs.Select(f.ui.chatItem)
	if f.ui.notificationContainer.Visible() {
		t.Error("opening the chat tab should hide the notification")
	}

	transport.onReminder(model.Reminder{Message: "Appointment tomorrow"})
	if !f.ui.notificationContainer.Visible() {
		t.Error("reminders are always shown in the notification bar")
	}
	if lines := f.ui.chatTab.Lines(); len(lines) != 2 {
		t.Errorf("reminder should be appended to the chat log, got %v", lines)
	}
}

func TestRootUILogout(t *testing.T) {
	f := newRootFixture(t)
	f.login(t, &model.Session{Token: "tok", User: copyUser(testDoctor)})
	f.ui.Logout()

	if f.ui.Session() != nil {
		t.Error("session should be cleared")
	}
	if f.svc.token != "" {
		t.Error("token should be cleared")
	}
	if !f.transports[0].stopped {
		t.Error("transport should be stopped")
	}
	if f.ui.window.Content() != f.ui.loginView.Content() {
		t.Error("login view should be shown after logout")
	}
	if f.ui.loginView.emailEntry.Text != testDoctor.Email {
		t.Errorf("last email should be prefilled, got %q", f.ui.loginView.emailEntry.Text)
	}

	f.ui.Logout()
}

func TestRootUILanguageChange(t *testing.T) {
	f := newRootFixture(t)
	f.ui.onLanguageChange("ru")

	if f.settings.GetLanguage() != "ru" {
		t.Errorf("language not stored, got %q", f.settings.GetLanguage())
	}
	if got := f.ui.loginView.loginBtn.Text; got != f.ui.localization.texts["ru"][KeyLogin] {
		t.Errorf("login view should be rebuilt in Russian, got %q", got)
	}
}

func TestRootUIUnauthorizedResponseLogsOut(t *testing.T) {
	f := newRootFixture(t)
	f.login(t, &model.Session{Token: "tok", User: copyUser(testPatient)})

	f.ui.vc.fail(&api.Error{Status: 401, Message: "Invalid token"})

	if f.ui.Session() != nil {
		t.Error("a 401 should end the session")
	}
	if got := f.notifier.last(); got.message != f.ui.localization.GetText(KeySessionExpired) {
		t.Errorf("expected session-expired warning, got %+v", got)
	}

	f.ui.vc.fail(&api.Error{Status: 401, Message: "Invalid token"})
	if n := len(f.notifier.notes); n != 1 {
		t.Errorf("a second 401 after logout should be ignored, got %d notes", n)
	}
}
