package realtime

import (
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// Message kinds recognized on the wire
const (
	MessageNotification = "notification"
	MessagePing         = "ping"
	MessagePong         = "pong"
	MessageError        = "error"
)

// Default timing and retry policy
const (
	DefaultPingInterval         = 30 * time.Second
	DefaultReconnectDelay       = 3 * time.Second
	DefaultMaxReconnectAttempts = 5

	handshakeTimeout = 10 * time.Second
	writeTimeout     = 5 * time.Second
)

// Message is the JSON envelope exchanged on the channel
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageHandler receives every non-liveness inbound message
type MessageHandler func(Message)

// HandlerID identifies a registered handler for later removal
type HandlerID int

// Options configures the client. Zero values fall back to the defaults above.
type Options struct {
	// BaseURL is the WebSocket endpoint, e.g. "ws://localhost:8000/ws"
	BaseURL string

	PingInterval         time.Duration
	ReconnectDelay       time.Duration
	MaxReconnectAttempts int
}

// Client owns at most one outbound connection at a time
type Client struct {
	opts   Options
	dialer *websocket.Dialer

	mu         sync.Mutex
	conn       *websocket.Conn
	connected  bool
	connecting bool
	closing    bool
	attempts   int
	stopPing   chan struct{}
	userID     int
	token      string

	handlersMu sync.Mutex
	handlers   map[HandlerID]MessageHandler
	nextID     HandlerID

	// writeMu serializes writes: pong replies and liveness pings come from
	// different goroutines.
	writeMu sync.Mutex
}

// NewClient creates a realtime client. No connection is opened until Connect.
func NewClient(opts Options) *Client {
	if opts.PingInterval <= 0 {
		opts.PingInterval = DefaultPingInterval
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = DefaultReconnectDelay
	}
	if opts.MaxReconnectAttempts <= 0 {
		opts.MaxReconnectAttempts = DefaultMaxReconnectAttempts
	}

	return &Client{
		opts:     opts,
		dialer:   &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		handlers: make(map[HandlerID]MessageHandler),
	}
}

// Connect opens the channel scoped to the session's user. It is a no-op when
// the session is absent (warned) and when a connection is already open or
// being opened. Dialing happens in the background; failures are logged, not
// returned.
func (c *Client) Connect(sess *model.Session) {
	if !sess.Valid() {
		log.Printf("Realtime connect skipped: no valid session")
		return
	}

	c.mu.Lock()
	if c.connected || c.connecting {
		c.mu.Unlock()
		log.Printf("Realtime connect skipped: already connected or connecting")
		return
	}
	c.connecting = true
	c.closing = false
	c.attempts = 0
	c.userID = sess.User.ID
	c.token = sess.Token
	c.mu.Unlock()

	go c.dial()
}

// Disconnect closes the channel if open and stops the liveness timer first,
// to avoid sending on a closed connection. Idempotent; suppresses reconnect.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.closing = true
	c.connecting = false
	if c.stopPing != nil {
		close(c.stopPing)
		c.stopPing = nil
	}
	conn := c.conn
	c.conn = nil
	c.connected = false
	c.mu.Unlock()

	if conn != nil {
		deadline := time.Now().Add(writeTimeout)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = conn.Close()
	}
}

// IsConnected reports whether the channel is currently open
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// AddMessageHandler registers a callback for every non-liveness inbound
// message and returns an id for removal.
func (c *Client) AddMessageHandler(h MessageHandler) HandlerID {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.nextID++
	id := c.nextID
	c.handlers[id] = h
	return id
}

// RemoveMessageHandler unregisters a previously added handler
func (c *Client) RemoveMessageHandler(id HandlerID) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	delete(c.handlers, id)
}

// endpoint builds the connection URL parameterized by user id and token
func (c *Client) endpoint() string {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(c.userID))
	query.Set("token", c.token)
	return c.opts.BaseURL + "?" + query.Encode()
}

// dial opens one connection and starts the read and ping loops
func (c *Client) dial() {
	conn, resp, err := c.dialer.Dial(c.endpoint(), nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		log.Printf("Realtime dial failed: %v", err)
		c.mu.Lock()
		c.connecting = false
		c.mu.Unlock()
		c.scheduleReconnect()
		return
	}

	c.mu.Lock()
	if c.closing {
		// Disconnect raced the dial; drop the fresh connection
		c.connecting = false
		c.mu.Unlock()
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.connected = true
	c.connecting = false
	c.attempts = 0
	stop := make(chan struct{})
	c.stopPing = stop
	c.mu.Unlock()

	log.Printf("Realtime channel connected for user %d", c.userID)

	go c.pingLoop(conn, stop)
	go c.readLoop(conn)
}

// pingLoop sends a liveness ping on a fixed interval until stopped
func (c *Client) pingLoop(conn *websocket.Conn, stop chan struct{}) {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := c.write(conn, Message{Type: MessagePing}); err != nil {
				log.Printf("Realtime ping failed: %v", err)
				return
			}
		}
	}
}

// readLoop consumes inbound messages until the connection drops
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn, err)
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("Realtime dropping malformed message: %v", err)
			continue
		}

		switch msg.Type {
		case MessagePing:
			// Liveness probe from the server; reply and do not forward
			if err := c.write(conn, Message{Type: MessagePong}); err != nil {
				log.Printf("Realtime pong failed: %v", err)
			}
		case MessagePong:
			// Reply to our own probe; nothing to do
		default:
			if msg.Type == MessageError {
				log.Printf("Realtime server error message: %s", msg.Payload)
			}
			c.dispatch(msg)
		}
	}
}

// dispatch fans a message out to every handler. A panicking handler must not
// prevent the remaining handlers from running.
func (c *Client) dispatch(msg Message) {
	c.handlersMu.Lock()
	handlers := make([]MessageHandler, 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.handlersMu.Unlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Realtime handler panicked: %v", r)
				}
			}()
			h(msg)
		}()
	}
}

// handleClose tears down state after a read failure and decides on reconnect
func (c *Client) handleClose(conn *websocket.Conn, err error) {
	_ = conn.Close()

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.connected = false
		if c.stopPing != nil {
			close(c.stopPing)
			c.stopPing = nil
		}
	}
	closing := c.closing
	c.mu.Unlock()

	clean := websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
	if closing || clean {
		log.Printf("Realtime channel closed")
		return
	}

	log.Printf("Realtime channel lost: %v", err)
	c.scheduleReconnect()
}

// scheduleReconnect retries after a fixed delay, bounded by the attempt cap
func (c *Client) scheduleReconnect() {
	c.mu.Lock()
	if c.closing || c.connecting || c.connected {
		c.mu.Unlock()
		return
	}
	c.attempts++
	attempt := c.attempts
	if attempt > c.opts.MaxReconnectAttempts {
		c.mu.Unlock()
		log.Printf("Realtime reconnect giving up after %d attempts", c.opts.MaxReconnectAttempts)
		return
	}
	c.connecting = true
	c.mu.Unlock()

	log.Printf("Realtime reconnect attempt %d/%d in %s", attempt, c.opts.MaxReconnectAttempts, c.opts.ReconnectDelay)
	time.AfterFunc(c.opts.ReconnectDelay, func() {
		c.mu.Lock()
		if c.closing {
			c.connecting = false
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
		c.dial()
	})
}

// write sends one message, serializing writers on the shared connection
func (c *Client) write(conn *websocket.Conn, msg Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(msg)
}
