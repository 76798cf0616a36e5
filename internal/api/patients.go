package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ListPatients returns the doctor's patients
func (c *Client) ListPatients(ctx context.Context) ([]model.Patient, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/patients",
		fallback: "Failed to load patients.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Patient](body, "patients"), nil
}

// GetPatient returns one patient record
func (c *Client) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/patients/%d", id),
		fallback: "Failed to load patient.",
	})
	if err != nil {
		return nil, err
	}

	patient, ok := decodeField[model.Patient](body, "patient")
	if !ok {
		patient = model.Patient{}
	}
	if patient.ID == 0 {
		patient.ID = id
	}
	return &patient, nil
}

// GetPatientInfo returns a patient's health record. A missing record (404)
// is reported as an empty record rather than an error.
func (c *Client) GetPatientInfo(ctx context.Context, patientID int64) (*model.PatientInfo, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/patient_info",
		query:    url.Values{"patientId": {strconv.FormatInt(patientID, 10)}},
		fallback: "Failed to load patient info.",
	})
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return &model.PatientInfo{UserID: patientID}, nil
		}
		return nil, err
	}

	info, _ := decodeField[model.PatientInfo](body, "info")
	if info.UserID == 0 {
		info.UserID = patientID
	}
	return &info, nil
}

// UpdatePatientInfo saves the caller's own health record
func (c *Client) UpdatePatientInfo(ctx context.Context, info model.PatientInfo) (*model.PatientInfo, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "/patient_info",
		body:     info,
		fallback: "Failed to update patient info.",
	})
	if err != nil {
		return nil, err
	}

	saved, ok := decodeField[model.PatientInfo](body, "info")
	if !ok {
		saved = info
	}
	return &saved, nil
}
