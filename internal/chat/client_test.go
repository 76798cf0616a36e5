package chat

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

const waitTimeout = 2 * time.Second

func newSocketServer(t *testing.T, handler func(*websocket.Conn)) string {
	t.Helper()
	server := httptest.NewServer(websocket.Handler(handler))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/"
}

func newTestClient(url, token string, opts ...Option) *Client {
	opts = append([]Option{WithLogger(logging.Discard()), WithReconnectDelay(10 * time.Millisecond)}, opts...)
	return NewClient(url, token, opts...)
}

func waitStatus(t *testing.T, statuses <-chan model.ConnectionStatus, want model.ConnectionStatus) {
	t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case got := <-statuses:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for status %s", want)
		}
	}
}

func TestClient_DeliversFramesInOrder(t *testing.T) {
	auth := make(chan [2]string, 1)
	url := newSocketServer(t, func(ws *websocket.Conn) {
		select {
		case auth <- [2]string{ws.Request().URL.Query().Get("token"), ws.Request().Header.Get("Authorization")}:
		default:
		}
		for _, frame := range []string{
			`{"from":2,"fromName":"Dr. House","content":"first"}`,
			`not json`,
			`{"type":"reminder","message":"Appointment at 10:00"}`,
			`{"type":"typing","from":2}`,
			`{"from":"2","content":"second"}`,
		} {
			websocket.Message.Send(ws, frame)
		}
		var block string
		websocket.Message.Receive(ws, &block)
	})

	events := make(chan string, 10)
	client := newTestClient(url, "tok")
	client.SetMessageCallback(func(m model.ChatMessage) {
		events <- m.Format(0, "You")
	})
	client.SetReminderCallback(func(r model.Reminder) {
		events <- "reminder: " + r.Message
	})

	require.NoError(t, client.Start(context.Background()))
	defer client.Stop()

	want := []string{"Dr. House: first", "reminder: Appointment at 10:00", "Partner: second"}
	for _, expected := range want {
		select {
		case got := <-events:
			assert.Equal(t, expected, got)
		case <-time.After(waitTimeout):
			t.Fatalf("timed out waiting for %q", expected)
		}
	}

	got := <-auth
	assert.Equal(t, "tok", got[0])
	assert.Equal(t, "Bearer tok", got[1])
}

func TestClient_Send(t *testing.T) {
	received := make(chan outbound, 1)
	url := newSocketServer(t, func(ws *websocket.Conn) {
		var frame outbound
		if err := websocket.JSON.Receive(ws, &frame); err == nil {
			received <- frame
		}
	})

	statuses := make(chan model.ConnectionStatus, 10)
	self := &model.User{ID: 4, Role: model.RolePatient}
	client := newTestClient(url, "tok", WithUser(self))
	client.SetStatusCallback(func(s model.ConnectionStatus) { statuses <- s })

	require.NoError(t, client.Start(context.Background()))
	defer client.Stop()
	waitStatus(t, statuses, model.ConnectionConnected)

	assert.ErrorIs(t, client.Send(2, "   "), ErrEmptyMessage)
	require.NoError(t, client.Send(2, "hello doctor"))

	select {
	case frame := <-received:
		assert.Equal(t, TypeChatMessage, frame.Type)
		assert.Equal(t, int64(2), frame.To)
		assert.Equal(t, "hello doctor", frame.Content)
		assert.Equal(t, "2-4", frame.Room)
	case <-time.After(waitTimeout):
		t.Fatal("server never received the message")
	}
}

func TestClient_SendWithoutConnection(t *testing.T) {
	client := newTestClient("ws://localhost:4000/", "tok")
	assert.ErrorIs(t, client.Send(2, "hello"), ErrNotConnected)
	assert.Equal(t, model.ConnectionDisconnected, client.Status())
}

func TestClient_Reconnects(t *testing.T) {
	var connections atomic.Int32
	url := newSocketServer(t, func(ws *websocket.Conn) {
		connections.Add(1)
	})

	client := newTestClient(url, "tok")
	require.NoError(t, client.Start(context.Background()))
	defer client.Stop()

	assert.Eventually(t, func() bool { return connections.Load() >= 3 }, waitTimeout, 10*time.Millisecond)
}

func TestClient_StartTwice(t *testing.T) {
	url := newSocketServer(t, func(ws *websocket.Conn) {
		var block string
		websocket.Message.Receive(ws, &block)
	})

	client := newTestClient(url, "tok")
	require.NoError(t, client.Start(context.Background()))
	defer client.Stop()

	assert.ErrorIs(t, client.Start(context.Background()), ErrAlreadyRunning)
}

func TestClient_InvalidURL(t *testing.T) {
	client := newTestClient("http://localhost:4000/", "tok")
	assert.Error(t, client.Start(context.Background()))
}

func TestClient_StopClosesConnection(t *testing.T) {
	closed := make(chan struct{})
	url := newSocketServer(t, func(ws *websocket.Conn) {
		var block string
		websocket.Message.Receive(ws, &block)
		close(closed)
	})

	statuses := make(chan model.ConnectionStatus, 10)
	client := newTestClient(url, "tok")
	client.SetStatusCallback(func(s model.ConnectionStatus) { statuses <- s })

	require.NoError(t, client.Start(context.Background()))
	waitStatus(t, statuses, model.ConnectionConnected)

	client.Stop()
	client.Stop()

	select {
	case <-closed:
	case <-time.After(waitTimeout):
		t.Fatal("server connection was not closed")
	}
	assert.Equal(t, model.ConnectionDisconnected, client.Status())
	assert.ErrorIs(t, client.Send(2, "late"), ErrNotConnected)
}

func TestClient_ContextCancel(t *testing.T) {
	url := newSocketServer(t, func(ws *websocket.Conn) {
		var block string
		websocket.Message.Receive(ws, &block)
	})

	statuses := make(chan model.ConnectionStatus, 10)
	client := newTestClient(url, "tok")
	client.SetStatusCallback(func(s model.ConnectionStatus) { statuses <- s })

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, client.Start(ctx))
	waitStatus(t, statuses, model.ConnectionConnected)

	cancel()
	waitStatus(t, statuses, model.ConnectionDisconnected)
	client.Stop()
}
