package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ListDoctors returns every doctor a patient can book with
func (c *Client) ListDoctors(ctx context.Context) ([]model.Contact, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/users",
		query:    url.Values{"role": {string(model.RoleDoctor)}},
		fallback: "Failed to load doctors.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Contact](body, "doctors"), nil
}

// ListAppointments returns the caller's appointments
func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/appointments",
		fallback: "Failed to load appointments.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Appointment](body, "appointments"), nil
}

// CreateAppointment books a new appointment
func (c *Client) CreateAppointment(ctx context.Context, req model.NewAppointment) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/appointments",
		body:     req,
		fallback: "Failed to schedule appointment.",
	})
	return err
}

// RescheduleAppointment moves an appointment to datetime (YYYY-MM-DD HH:MM:SS)
func (c *Client) RescheduleAppointment(ctx context.Context, id int64, datetime string) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/appointments/%d", id),
		body:     model.Reschedule{DateTime: datetime},
		fallback: "Failed to update appointment.",
	})
	return err
}

// TakenSlots returns the booked slots of a doctor
func (c *Client) TakenSlots(ctx context.Context, doctorID int64) ([]string, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/appointments/taken/%d", doctorID),
		fallback: "Failed to load taken slots.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[string](body, "takenSlots"), nil
}
