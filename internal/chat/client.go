// Package chat keeps the live socket connection used for chat messages and
// appointment reminders.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
	"golang.org/x/net/websocket"
)

// DefaultReconnectDelay is the pause between connection attempts
const DefaultReconnectDelay = time.Second

var (
	ErrNotConnected   = errors.New("chat: not connected")
	ErrAlreadyRunning = errors.New("chat: already running")
	ErrEmptyMessage   = errors.New("chat: empty message")
)

// Client is one session's socket. Incoming frames are delivered to the
// callbacks in arrival order on the listener goroutine.
type Client struct {
	socketURL      string
	token          string
	self           *model.User
	reconnectDelay time.Duration
	logger         *logging.Logger

	mu         sync.Mutex
	conn       *websocket.Conn
	status     model.ConnectionStatus
	cancel     context.CancelFunc
	done       chan struct{}
	onMessage  func(model.ChatMessage)
	onReminder func(model.Reminder)
	onStatus   func(model.ConnectionStatus)

	writeMu sync.Mutex
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithReconnectDelay overrides the pause between connection attempts.
func WithReconnectDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.reconnectDelay = delay
		}
	}
}

// WithUser sets the logged-in user; outgoing frames then carry the room ID.
func WithUser(user *model.User) Option {
	return func(c *Client) {
		c.self = user
	}
}

// NewClient creates a client for socketURL (e.g. "ws://localhost:4000/")
// authenticated with token.
func NewClient(socketURL, token string, opts ...Option) *Client {
	c := &Client{
		socketURL:      socketURL,
		token:          token,
		reconnectDelay: DefaultReconnectDelay,
		logger:         logging.Default(),
		status:         model.ConnectionDisconnected,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetMessageCallback sets the function called for every chat message
func (c *Client) SetMessageCallback(callback func(model.ChatMessage)) {
	c.mu.Lock()
	c.onMessage = callback
	c.mu.Unlock()
}

// SetReminderCallback sets the function called for every reminder
func (c *Client) SetReminderCallback(callback func(model.Reminder)) {
	c.mu.Lock()
	c.onReminder = callback
	c.mu.Unlock()
}

// SetStatusCallback sets the function called on connection status changes
func (c *Client) SetStatusCallback(callback func(model.ConnectionStatus)) {
	c.mu.Lock()
	c.onStatus = callback
	c.mu.Unlock()
}

// Status returns the current connection status
func (c *Client) Status() model.ConnectionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Start launches the connect-and-listen loop. It returns immediately.
func (c *Client) Start(ctx context.Context) error {
	if _, err := c.endpoint(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.run(ctx, c.done)
	return nil
}

// Stop ends the loop, closes the socket and waits for the listener to exit.
// It is safe to call more than once.
func (c *Client) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	c.closeConn()
	<-done
}

// Send writes a chat message to user to.
func (c *Client) Send(to int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	frame := outbound{Type: TypeChatMessage, To: to, Content: content}
	if c.self != nil {
		frame.Room = model.RoomFor(c.self, to)
	}

	c.writeMu.Lock()
	err := websocket.JSON.Send(conn, frame)
	c.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("chat: send: %w", err)
	}

	c.logger.Debug("chat message sent", "to", to)
	return nil
}

func (c *Client) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer c.setStatus(model.ConnectionDisconnected)

	stop := context.AfterFunc(ctx, c.closeConn)
	defer stop()

	for {
		c.setStatus(model.ConnectionConnecting)

		conn, err := c.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("chat connection failed", "error", err)
			c.setStatus(model.ConnectionError)
		} else {
			c.setConn(conn)
			if ctx.Err() != nil {
				c.closeConn()
				return
			}
			c.setStatus(model.ConnectionConnected)
			c.logger.Info("chat connected")

			c.listen(conn)

			c.closeConn()
			if ctx.Err() != nil {
				return
			}
			c.setStatus(model.ConnectionDisconnected)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.reconnectDelay):
		}
	}
}

// listen reads frames until the connection fails
func (c *Client) listen(conn *websocket.Conn) {
	for {
		var data string
		if err := websocket.Message.Receive(conn, &data); err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Info("chat connection closed by server")
			} else {
				c.logger.Debug("chat read ended", "error", err)
			}
			return
		}

		ev, ok := decodeFrame([]byte(data))
		if !ok {
			c.logger.Debug("dropping chat frame", "size", len(data))
			continue
		}
		c.dispatch(ev)
	}
}

func (c *Client) dispatch(ev event) {
	c.mu.Lock()
	onMessage, onReminder := c.onMessage, c.onReminder
	c.mu.Unlock()

	switch {
	case ev.reminder != nil && onReminder != nil:
		onReminder(*ev.reminder)
	case ev.message != nil && onMessage != nil:
		onMessage(*ev.message)
	}
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	target, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	config, err := websocket.NewConfig(target.String(), originFor(target))
	if err != nil {
		return nil, fmt.Errorf("chat: config: %w", err)
	}
	config.Header.Set("Authorization", "Bearer "+c.token)

	conn, err := config.DialContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("chat: dial: %w", err)
	}
	return conn, nil
}

// endpoint returns the socket URL with the token in the query string
func (c *Client) endpoint() (*url.URL, error) {
	u, err := url.Parse(c.socketURL)
	if err != nil {
		return nil, fmt.Errorf("chat: invalid socket url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, fmt.Errorf("chat: invalid socket url scheme %q", u.Scheme)
	}
	q := u.Query()
	q.Set("token", c.token)
	u.RawQuery = q.Encode()
	return u, nil
}

func originFor(u *url.URL) string {
	scheme := "http"
	if u.Scheme == "wss" {
		scheme = "https"
	}
	return scheme + "://" + u.Host + "/"
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}

func (c *Client) closeConn() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

func (c *Client) setStatus(status model.ConnectionStatus) {
	c.mu.Lock()
	if c.status == status {
		c.mu.Unlock()
		return
	}
	c.status = status
	onStatus := c.onStatus
	c.mu.Unlock()

	if onStatus != nil {
		onStatus(status)
	}
}
