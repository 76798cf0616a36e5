package model

// ConnectionStatus represents the state of the chat socket
type ConnectionStatus string

const (
	// ConnectionDisconnected means no socket is open and none is being opened
	ConnectionDisconnected ConnectionStatus = "Disconnected"

	// ConnectionConnecting means a dial is in progress
	ConnectionConnecting ConnectionStatus = "Connecting"

	// ConnectionConnected means the socket is open and listening
	ConnectionConnected ConnectionStatus = "Connected"

	// ConnectionError means the last dial or read failed
	ConnectionError ConnectionStatus = "Error"
)

// String returns the string representation of ConnectionStatus
func (cs ConnectionStatus) String() string {
	return string(cs)
}

// IsActive returns true while a socket is open or being opened
func (cs ConnectionStatus) IsActive() bool {
	return cs == ConnectionConnecting || cs == ConnectionConnected
}

// Role is the account type assigned by the backend at signup
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Roles returns the roles a user can sign up with, patient first
func Roles() []Role {
	return []Role{RolePatient, RoleDoctor}
}

// Valid reports whether the backend accepts the role
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// IsDoctor returns true for doctor accounts
func (r Role) IsDoctor() bool {
	return r == RoleDoctor
}

// IsPatient returns true for patient accounts
func (r Role) IsPatient() bool {
	return r == RolePatient
}

// Title returns the role with its first letter capitalized
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	s := string(r)
	first := s[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	return string(first) + s[1:]
}
