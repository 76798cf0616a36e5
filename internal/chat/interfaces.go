package chat

import (
	"context"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// Transport defines the live chat connection used by the views.
type Transport interface {
	SetMessageCallback(func(model.ChatMessage))
	SetReminderCallback(func(model.Reminder))
	SetStatusCallback(func(model.ConnectionStatus))

	// Start connects in the background and keeps reconnecting until Stop
	Start(ctx context.Context) error
	Stop()

	Send(to int64, content string) error
	Status() model.ConnectionStatus
}

var _ Transport = (*Client)(nil)
