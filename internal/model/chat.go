package model

import (
	"fmt"
	"strings"
)

// DefaultSenderName labels messages whose sender name is unknown
const DefaultSenderName = "Partner"

// ChatMessage is one chat line, either from /chat/history or from the socket
type ChatMessage struct {
	From       int64  `json:"from_user"`
	To         int64  `json:"to_user"`
	SenderName string `json:"sender_name,omitempty"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp,omitempty"`
	Room       string `json:"room,omitempty"`
}

// Format renders the message as "<sender>: <content>" from selfID's point of view
func (m ChatMessage) Format(selfID int64, selfLabel string) string {
	sender := strings.TrimSpace(m.SenderName)
	switch {
	case selfID != 0 && m.From == selfID:
		sender = selfLabel
	case sender == "":
		sender = DefaultSenderName
	}
	if m.Timestamp != "" {
		return fmt.Sprintf("[%s] %s: %s", NormalizeDisplay(m.Timestamp), sender, m.Content)
	}
	return fmt.Sprintf("%s: %s", sender, m.Content)
}

// Reminder is an appointment reminder pushed by the server
type Reminder struct {
	Message string `json:"message"`
}

// RoomID builds the chat room identifier for a doctor/patient pair
func RoomID(doctorID, patientID int64) string {
	return fmt.Sprintf("%d-%d", doctorID, patientID)
}

// RoomFor derives the room between self and peer. Both sides compute the same
// value because the doctor's ID always comes first.
func RoomFor(self *User, peerID int64) string {
	if self == nil {
		return ""
	}
	if self.Role.IsDoctor() {
		return RoomID(self.ID, peerID)
	}
	return RoomID(peerID, self.ID)
}
