package model

import (
	"strings"
	"time"
)

// Appointment is a scheduled visit as listed by GET /appointments
type Appointment struct {
	ID          int64  `json:"id"`
	DateTime    string `json:"datetime"`
	Reason      string `json:"reason"`
	DoctorName  string `json:"doctor_name,omitempty"`
	PatientID   int64  `json:"patient_id,omitempty"`
	PatientName string `json:"patient_name,omitempty"`
}

// Counterpart returns the name of the other participant from the viewer's side:
// doctors see the patient, patients see the doctor.
func (a Appointment) Counterpart(viewer Role) string {
	if viewer.IsDoctor() {
		return a.PatientName
	}
	return a.DoctorName
}

// DisplayDateTime returns the date/time normalized for display
func (a Appointment) DisplayDateTime() string {
	return NormalizeDisplay(a.DateTime)
}

// NewAppointment is the body of POST /appointments
type NewAppointment struct {
	DoctorID int64  `json:"doctorId"`
	DateTime string `json:"datetime"`
	Reason   string `json:"reason"`
}

// Reschedule is the body of PUT /appointments/{id}
type Reschedule struct {
	DateTime string `json:"datetime"`
	Reason   string `json:"reason,omitempty"`
}

// IsSlotTaken reports whether slot falls in the same minute as any taken slot.
// Malformed taken entries are ignored.
func IsSlotTaken(slot time.Time, taken []string) bool {
	for _, raw := range taken {
		t, ok := ParseDateTime(raw)
		if !ok {
			continue
		}
		if SameMinute(t, slot) {
			return true
		}
	}
	return false
}

// FormatTakenSlots renders taken slots for display, one per line
func FormatTakenSlots(taken []string) string {
	lines := make([]string, 0, len(taken))
	for _, raw := range taken {
		lines = append(lines, NormalizeDisplay(raw))
	}
	return strings.Join(lines, "\n")
}
