package api

import (
	"context"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// Service defines the backend operations used by the views.
type Service interface {
	SetToken(token string)
	Token() string

	Login(ctx context.Context, email, password string) (*model.Session, error)
	Signup(ctx context.Context, req SignupRequest) error
	UpdateProfile(ctx context.Context, req ProfileUpdate) (*model.User, error)

	ListDoctors(ctx context.Context) ([]model.Contact, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, req model.NewAppointment) error
	RescheduleAppointment(ctx context.Context, id int64, datetime string) error
	TakenSlots(ctx context.Context, doctorID int64) ([]string, error)

	ListPrescriptions(ctx context.Context) ([]model.Prescription, error)
	CreatePrescription(ctx context.Context, req model.NewPrescription) error

	ListPatients(ctx context.Context) ([]model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	GetPatientInfo(ctx context.Context, patientID int64) (*model.PatientInfo, error)
	UpdatePatientInfo(ctx context.Context, info model.PatientInfo) (*model.PatientInfo, error)

	// Chat history lives behind REST; live messages go through the chat package
	ChatContacts(ctx context.Context) ([]model.Contact, error)
	ChatHistory(ctx context.Context, contactID int64) ([]model.ChatMessage, error)
}

var _ Service = (*Client)(nil)
