package model

import "testing"

func TestRoomFor(t *testing.T) {
	doctor := &User{ID: 7, Role: RoleDoctor}
	patient := &User{ID: 42, Role: RolePatient}

	fromDoctor := RoomFor(doctor, patient.ID)
	fromPatient := RoomFor(patient, doctor.ID)

	if fromDoctor != "7-42" {
		t.Errorf("RoomFor(doctor) = %s, expected 7-42", fromDoctor)
	}
	if fromDoctor != fromPatient {
		t.Errorf("both participants must derive the same room: %s vs %s", fromDoctor, fromPatient)
	}
	if RoomFor(nil, 1) != "" {
		t.Error("RoomFor(nil) should be empty")
	}
}

func TestChatMessage_Format(t *testing.T) {
	tests := []struct {
		name     string
		msg      ChatMessage
		expected string
	}{
		{
			name:     "named sender",
			msg:      ChatMessage{From: 2, SenderName: "Dr. Who", Content: "hello"},
			expected: "Dr. Who: hello",
		},
		{
			name:     "unknown sender falls back",
			msg:      ChatMessage{From: 2, Content: "hi"},
			expected: "Partner: hi",
		},
		{
			name:     "own message",
			msg:      ChatMessage{From: 1, SenderName: "Me", Content: "ok"},
			expected: "You: ok",
		},
		{
			name:     "with timestamp",
			msg:      ChatMessage{From: 2, SenderName: "Ann", Content: "yo", Timestamp: "2025-03-14 09:30"},
			expected: "[2025-03-14 09:30] Ann: yo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.Format(1, "You"); got != tt.expected {
				t.Errorf("Format() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestUser_AssignedDoctor(t *testing.T) {
	tests := []struct {
		user *User
		id   int64
		name string
	}{
		{nil, 0, ""},
		{&User{}, 0, ""},
		{&User{DoctorID: 3}, 3, ""},
		{&User{DoctorID: 3, Doctor: &Contact{ID: 9, Name: " Grey "}}, 9, "Grey"},
		{&User{DoctorID: 3, Doctor: &Contact{Name: "Grey"}}, 3, "Grey"},
	}

	for _, test := range tests {
		if got := test.user.AssignedDoctorID(); got != test.id {
			t.Errorf("AssignedDoctorID() = %d, expected %d", got, test.id)
		}
		if got := test.user.AssignedDoctorName(); got != test.name {
			t.Errorf("AssignedDoctorName() = %q, expected %q", got, test.name)
		}
	}
}

func TestUser_Merge(t *testing.T) {
	user := &User{ID: 1, Name: "Old", Email: "old@x.io", Role: RolePatient, Theme: ThemeLight}
	user.Merge(User{Name: "New", Theme: ThemeDark})

	if user.Name != "New" || user.Email != "old@x.io" || user.Theme != ThemeDark || user.Role != RolePatient {
		t.Errorf("unexpected merge result: %+v", user)
	}
	if !user.IsDarkTheme() {
		t.Error("expected dark theme after merge")
	}
}

func TestSession_Valid(t *testing.T) {
	var nilSession *Session
	if nilSession.Valid() {
		t.Error("nil session must be invalid")
	}
	if (&Session{Token: "t"}).Valid() {
		t.Error("session without user must be invalid")
	}
	if !(&Session{Token: "t", User: &User{ID: 1}}).Valid() {
		t.Error("expected session to be valid")
	}
}

func TestContact_DisplayName(t *testing.T) {
	if got := (Contact{Name: "  "}).DisplayName("Doctor"); got != "Doctor" {
		t.Errorf("DisplayName() = %q, expected fallback", got)
	}
	if got := (Contact{Name: "Ann"}).DisplayName("Doctor"); got != "Ann" {
		t.Errorf("DisplayName() = %q, expected Ann", got)
	}
}
