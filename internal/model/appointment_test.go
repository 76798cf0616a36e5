package model

import (
	"testing"
	"time"
)

func TestAppointment_Counterpart(t *testing.T) {
	appt := Appointment{DoctorName: "Dr. House", PatientName: "John"}

	if got := appt.Counterpart(RoleDoctor); got != "John" {
		t.Errorf("Counterpart(doctor) = %s, expected John", got)
	}
	if got := appt.Counterpart(RolePatient); got != "Dr. House" {
		t.Errorf("Counterpart(patient) = %s, expected Dr. House", got)
	}
}

func TestAppointment_DisplayDateTime(t *testing.T) {
	appt := Appointment{DateTime: "2025-03-14T09:30"}
	if got := appt.DisplayDateTime(); got != "2025-03-14 09:30" {
		t.Errorf("DisplayDateTime() = %s, expected 2025-03-14 09:30", got)
	}

	broken := Appointment{DateTime: "soon"}
	if got := broken.DisplayDateTime(); got != "soon" {
		t.Errorf("DisplayDateTime() = %s, expected raw value", got)
	}
}

func TestIsSlotTaken(t *testing.T) {
	taken := []string{"2025-03-14T09:30", "garbage", "2025-03-15T10:00"}

	tests := []struct {
		slot     time.Time
		expected bool
	}{
		{time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local), true},
		{time.Date(2025, 3, 14, 9, 30, 45, 0, time.Local), true},
		{time.Date(2025, 3, 14, 9, 31, 0, 0, time.Local), false},
		{time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local), true},
	}

	for _, test := range tests {
		if got := IsSlotTaken(test.slot, taken); got != test.expected {
			t.Errorf("IsSlotTaken(%v) = %v, expected %v", test.slot, got, test.expected)
		}
	}

	if IsSlotTaken(time.Now(), nil) {
		t.Error("no slot should be taken when the list is empty")
	}
}

func TestFormatTakenSlots(t *testing.T) {
	got := FormatTakenSlots([]string{"2025-03-14T09:30", "bad"})
	expected := "2025-03-14 09:30\nbad"
	if got != expected {
		t.Errorf("FormatTakenSlots() = %q, expected %q", got, expected)
	}
}
