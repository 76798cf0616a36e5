package chat

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// Frame types on the socket
const (
	TypeChatMessage = "chat_message"
	TypeReminder    = "reminder"
)

// inbound is any frame the server pushes. Chat frames carry from/content,
// reminders type/message.
type inbound struct {
	Type      string          `json:"type"`
	From      json.RawMessage `json:"from"`
	FromUser  json.RawMessage `json:"from_user"`
	FromName  string          `json:"fromName"`
	To        json.RawMessage `json:"to"`
	Content   string          `json:"content"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Room      string          `json:"room"`
}

type outbound struct {
	Type    string `json:"type"`
	To      int64  `json:"to"`
	Content string `json:"content"`
	Room    string `json:"room,omitempty"`
}

// event is a decoded frame: exactly one of message or reminder is set
type event struct {
	message  *model.ChatMessage
	reminder *model.Reminder
}

// decodeFrame turns raw socket text into an event. ok is false for frames
// that are not JSON or carry nothing to show.
func decodeFrame(data []byte) (event, bool) {
	var in inbound
	if err := json.Unmarshal(data, &in); err != nil {
		return event{}, false
	}

	switch strings.ToLower(in.Type) {
	case TypeReminder:
		text := in.Message
		if text == "" {
			text = in.Content
		}
		if strings.TrimSpace(text) == "" {
			return event{}, false
		}
		return event{reminder: &model.Reminder{Message: text}}, true
	case "", TypeChatMessage, "message":
		if in.Content == "" {
			return event{}, false
		}
		from := parseID(in.From)
		if from == 0 {
			from = parseID(in.FromUser)
		}
		return event{message: &model.ChatMessage{
			From:       from,
			To:         parseID(in.To),
			SenderName: in.FromName,
			Content:    in.Content,
			Timestamp:  in.Timestamp,
			Room:       in.Room,
		}}, true
	default:
		return event{}, false
	}
}

// parseID accepts 12 or "12"
func parseID(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, _ = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	}
	return n
}
