package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Patient is a patient record as listed by GET /patients and GET /patients/{id}
type Patient struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// PatientInfo is the health record behind /patient_info
type PatientInfo struct {
	UserID          int64   `json:"user_id,omitempty"`
	Age             int     `json:"age,omitempty"`
	Weight          float64 `json:"weight,omitempty"`
	Allergies       string  `json:"allergies"`
	ChronicDiseases string  `json:"chronic_diseases"`
}

// UnmarshalJSON accepts numeric columns sent either as numbers or as strings
// (NUMERIC values arrive quoted). Unreadable numbers are left at zero.
func (p *PatientInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID          json.RawMessage `json:"user_id"`
		Age             json.RawMessage `json:"age"`
		Weight          json.RawMessage `json:"weight"`
		Allergies       *string         `json:"allergies"`
		ChronicDiseases *string         `json:"chronic_diseases"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = PatientInfo{
		UserID: int64(flexNumber(raw.UserID)),
		Age:    int(flexNumber(raw.Age)),
		Weight: flexNumber(raw.Weight),
	}
	if raw.Allergies != nil {
		p.Allergies = *raw.Allergies
	}
	if raw.ChronicDiseases != nil {
		p.ChronicDiseases = *raw.ChronicDiseases
	}
	return nil
}

// IsEmpty reports whether no health data has been recorded
func (p PatientInfo) IsEmpty() bool {
	return p.Age == 0 && p.Weight == 0 && p.Allergies == "" && p.ChronicDiseases == ""
}

func flexNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return 0
}
