package ui

import (
	"context"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/chat"
	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

// fakeService records calls and returns canned results
type fakeService struct {
	mu    sync.Mutex
	calls []string
	token string

	session  *model.Session
	loginErr error

	signup    *api.SignupRequest
	signupErr error

	profile     *api.ProfileUpdate
	profileUser *model.User
	profileErr  error

	doctors      []model.Contact
	appointments []model.Appointment
	taken        []string
	takenBy      map[int64][]string
	created      *model.NewAppointment
	createErr    error
	rescheduleID int64
	rescheduleAt string

	prescriptions []model.Prescription
	prescription  *model.NewPrescription

	patients  []model.Patient
	patient   *model.Patient
	info      *model.PatientInfo
	savedInfo *model.PatientInfo

	contacts  []model.Contact
	history   []model.ChatMessage
	historyBy map[int64][]model.ChatMessage
}

func (f *fakeService) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeService) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeService) SetToken(token string) {
	f.token = token
}

func (f *fakeService) Token() string {
	return f.token
}

func (f *fakeService) Login(_ context.Context, email, password string) (*model.Session, error) {
	f.record("Login")
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeService) Signup(_ context.Context, req api.SignupRequest) error {
	f.record("Signup")
	f.signup = &req
	return f.signupErr
}

func (f *fakeService) UpdateProfile(_ context.Context, req api.ProfileUpdate) (*model.User, error) {
	f.record("UpdateProfile")
	f.profile = &req
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if f.profileUser != nil {
		return f.profileUser, nil
	}
	return &model.User{Name: req.Name, Email: req.Email, Theme: req.Theme}, nil
}

func (f *fakeService) ListDoctors(context.Context) ([]model.Contact, error) {
	f.record("ListDoctors")
	return f.doctors, nil
}

func (f *fakeService) ListAppointments(context.Context) ([]model.Appointment, error) {
	f.record("ListAppointments")
	return f.appointments, nil
}

func (f *fakeService) CreateAppointment(_ context.Context, req model.NewAppointment) error {
	f.record("CreateAppointment")
	f.created = &req
	return f.createErr
}

func (f *fakeService) RescheduleAppointment(_ context.Context, id int64, datetime string) error {
	f.record("RescheduleAppointment")
	f.rescheduleID, f.rescheduleAt = id, datetime
	return nil
}

func (f *fakeService) TakenSlots(_ context.Context, doctorID int64) ([]string, error) {
	f.record("TakenSlots")
	if slots, ok := f.takenBy[doctorID]; ok {
		return slots, nil
	}
	return f.taken, nil
}

func (f *fakeService) ListPrescriptions(context.Context) ([]model.Prescription, error) {
	f.record("ListPrescriptions")
	return f.prescriptions, nil
}

func (f *fakeService) CreatePrescription(_ context.Context, req model.NewPrescription) error {
	f.record("CreatePrescription")
	f.prescription = &req
	return nil
}

func (f *fakeService) ListPatients(context.Context) ([]model.Patient, error) {
	f.record("ListPatients")
	return f.patients, nil
}

func (f *fakeService) GetPatient(_ context.Context, id int64) (*model.Patient, error) {
	f.record("GetPatient")
	if f.patient != nil {
		return f.patient, nil
	}
	return &model.Patient{ID: id}, nil
}

func (f *fakeService) GetPatientInfo(_ context.Context, id int64) (*model.PatientInfo, error) {
	f.record("GetPatientInfo")
	if f.info != nil {
		return f.info, nil
	}
	return &model.PatientInfo{UserID: id}, nil
}

func (f *fakeService) UpdatePatientInfo(_ context.Context, info model.PatientInfo) (*model.PatientInfo, error) {
	f.record("UpdatePatientInfo")
	f.savedInfo = &info
	return &info, nil
}

func (f *fakeService) ChatContacts(context.Context) ([]model.Contact, error) {
	f.record("ChatContacts")
	return f.contacts, nil
}

func (f *fakeService) ChatHistory(_ context.Context, peerID int64) ([]model.ChatMessage, error) {
	f.record("ChatHistory")
	if messages, ok := f.historyBy[peerID]; ok {
		return messages, nil
	}
	return f.history, nil
}

// note is one message box shown through fakeNotifier
type note struct {
	kind    string
	title   string
	message string
}

type fakeNotifier struct {
	notes []note
}

func (n *fakeNotifier) Info(title, message string) {
	n.notes = append(n.notes, note{"info", title, message})
}

func (n *fakeNotifier) Warning(title, message string) {
	n.notes = append(n.notes, note{"warning", title, message})
}

func (n *fakeNotifier) Error(title, message string) {
	n.notes = append(n.notes, note{"error", title, message})
}

func (n *fakeNotifier) last() note {
	if len(n.notes) == 0 {
		return note{}
	}
	return n.notes[len(n.notes)-1]
}

// sent is one message written through fakeTransport
type sent struct {
	to      int64
	content string
}

type fakeTransport struct {
	sent       []sent
	sendErr    error
	started    bool
	stopped    bool
	status     model.ConnectionStatus
	onMessage  func(model.ChatMessage)
	onReminder func(model.Reminder)
	onStatus   func(model.ConnectionStatus)
}

var _ chat.Transport = (*fakeTransport)(nil)

func (t *fakeTransport) SetMessageCallback(cb func(model.ChatMessage)) {
	t.onMessage = cb
}

func (t *fakeTransport) SetReminderCallback(cb func(model.Reminder)) {
	t.onReminder = cb
}

func (t *fakeTransport) SetStatusCallback(cb func(model.ConnectionStatus)) {
	t.onStatus = cb
}

func (t *fakeTransport) Start(context.Context) error {
	t.started = true
	return nil
}

func (t *fakeTransport) Stop() {
	t.stopped = true
}

func (t *fakeTransport) Status() model.ConnectionStatus {
	return t.status
}

func (t *fakeTransport) Send(to int64, content string) error {
	if t.sendErr != nil {
		return t.sendErr
	}
	t.sent = append(t.sent, sent{to, content})
	return nil
}

var (
	testPatient = &model.User{ID: 4, Name: "Ann", Email: "ann@clinic.io", Role: model.RolePatient}
	testDoctor  = &model.User{ID: 2, Name: "Dr. House", Email: "house@clinic.io", Role: model.RoleDoctor}
)

func copyUser(u *model.User) *model.User {
	c := *u
	return &c
}

// newTestContext builds a view context that runs requests synchronously
func newTestContext(t *testing.T, user *model.User) (*viewContext, *fakeService, *fakeNotifier) {
	t.Helper()
	test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	svc := &fakeService{}
	notifier := &fakeNotifier{}
	vc := newViewContext(window, svc, notifier, NewLocalization(), logging.Discard())
	if user != nil {
		vc.user = copyUser(user)
	}
	makeSync(vc)
	return vc, svc, notifier
}

func makeSync(vc *viewContext) {
	vc.async = func(f func()) { f() }
	vc.main = func(f func()) { f() }
}
