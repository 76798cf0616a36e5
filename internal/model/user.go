package model

import "strings"

// Theme preferences stored on the user record
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Contact is a minimal reference to another user (doctor list, chat contacts)
type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// DisplayName returns the contact name, or a fallback when the server sent none
func (c Contact) DisplayName(fallback string) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return fallback
}

// User is the logged-in account as returned by /auth/login and /auth/profile
type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     Role     `json:"role"`
	Theme    string   `json:"theme,omitempty"`
	DoctorID int64    `json:"doctorId,omitempty"`
	Doctor   *Contact `json:"doctor,omitempty"`
}

// IsDarkTheme reports whether the user prefers the dark theme
func (u *User) IsDarkTheme() bool {
	return u != nil && u.Theme == ThemeDark
}

// AssignedDoctorID returns the doctor a patient chats with, or 0 if none
func (u *User) AssignedDoctorID() int64 {
	if u == nil {
		return 0
	}
	if u.Doctor != nil && u.Doctor.ID != 0 {
		return u.Doctor.ID
	}
	return u.DoctorID
}

// AssignedDoctorName returns the assigned doctor's name when the server sent it
func (u *User) AssignedDoctorName() string {
	if u == nil || u.Doctor == nil {
		return ""
	}
	return strings.TrimSpace(u.Doctor.Name)
}

// Merge copies the non-empty fields of an updated profile onto u
func (u *User) Merge(updated User) {
	if updated.ID != 0 {
		u.ID = updated.ID
	}
	if updated.Name != "" {
		u.Name = updated.Name
	}
	if updated.Email != "" {
		u.Email = updated.Email
	}
	if updated.Role != "" {
		u.Role = updated.Role
	}
	if updated.Theme != "" {
		u.Theme = updated.Theme
	}
	if updated.DoctorID != 0 {
		u.DoctorID = updated.DoctorID
	}
	if updated.Doctor != nil {
		u.Doctor = updated.Doctor
	}
}

// Session is the result of a successful login
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Valid reports whether the session carries a token and a user
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}
