package model

import (
	"encoding/json"
	"strings"
)

// Prescription is a medication entry as listed by GET /prescriptions.
// Older servers send "date"/"medicine", newer ones "start_date"/"medication".
type Prescription struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	MedicineRaw string    `json:"medicine,omitempty"`
	Medication  string    `json:"medication,omitempty"`
	Dosage      string    `json:"dosage"`
	DoseTimes   DoseTimes `json:"dose_times,omitempty"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
}

// Medicine returns the medicine name regardless of which key carried it
func (p Prescription) Medicine() string {
	if p.MedicineRaw != "" {
		return p.MedicineRaw
	}
	return p.Medication
}

// DisplayDate returns the prescription date; start_date wins over date
func (p Prescription) DisplayDate() string {
	if p.StartDate != "" {
		if p.EndDate != "" {
			return p.StartDate + " → " + p.EndDate
		}
		return p.StartDate
	}
	return p.Date
}

// Counterpart returns the other participant's name from the viewer's side
func (p Prescription) Counterpart(viewer Role) string {
	if viewer.IsDoctor() {
		return p.PatientName
	}
	return p.DoctorName
}

// DoseTimes holds the times of day a dose is taken. The backend stores it as
// an array but some rows come back as a single comma separated string.
type DoseTimes []string

// UnmarshalJSON accepts an array of strings, a single string or null.
// Anything else decodes to an empty list.
func (d *DoseTimes) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*d = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = ParseDoseTimes(single)
		return nil
	}
	*d = nil
	return nil
}

// String joins the dose times with ", "
func (d DoseTimes) String() string {
	return strings.Join(d, ", ")
}

// ParseDoseTimes splits user input like "08:00, 20:00" into trimmed entries
func ParseDoseTimes(s string) DoseTimes {
	var out DoseTimes
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewPrescription is the body of POST /prescriptions
type NewPrescription struct {
	PatientID int64     `json:"patientId,omitempty"`
	Medicine  string    `json:"medicine"`
	Dosage    string    `json:"dosage"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
	DoseTimes DoseTimes `json:"dose_times,omitempty"`
}
