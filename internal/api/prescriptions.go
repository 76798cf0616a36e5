package api

import (
	"context"
	"net/http"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ListPrescriptions returns prescriptions written by (doctor) or for (patient) the caller
func (c *Client) ListPrescriptions(ctx context.Context) ([]model.Prescription, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/prescriptions",
		fallback: "Failed to load prescriptions.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Prescription](body, "prescriptions"), nil
}

// CreatePrescription adds a prescription; only doctors are allowed to
func (c *Client) CreatePrescription(ctx context.Context, req model.NewPrescription) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/prescriptions",
		body:     req,
		fallback: "Failed to add prescription.",
	})
	return err
}
