package conn

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/intentvault/widgets/internal/logger"
	pkgerrors "github.com/intentvault/widgets/pkg/errors"
)

// Conn is the subset of a websocket connection the manager needs. It exists
// so tests can exercise the lifecycle without a live server.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer establishes a push connection to a URL.
type Dialer interface {
	Dial(url string) (Conn, error)
}

type wsDialer struct{}

func (wsDialer) Dial(url string) (Conn, error) {
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewWebsocketDialer returns the production dialer.
func NewWebsocketDialer() Dialer {
	return wsDialer{}
}

// Hooks are the widget-facing lifecycle callbacks. Every hook is optional.
// OnFrame receives raw inbound frames in arrival order.
type Hooks struct {
	OnOpen  func()
	OnClose func()
	OnError func(err error)
	OnFrame func(raw []byte)
}

// Manager owns at most one push connection for a single widget instance.
// There is deliberately no reconnect or backoff: a failed or dropped
// connection stays closed until the owner opens it again.
type Manager struct {
	mu        sync.Mutex
	conn      Conn
	connected bool

	dialer Dialer
	hooks  Hooks
	log    *logger.Logger
}

// NewManager creates a manager using the given dialer. A nil dialer selects
// the production websocket dialer; a nil logger discards.
func NewManager(dialer Dialer, hooks Hooks, log *logger.Logger) *Manager {
	if dialer == nil {
		dialer = NewWebsocketDialer()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Manager{dialer: dialer, hooks: hooks, log: log}
}

// Open establishes the connection and starts the read loop. An empty URL and
// an already-open manager are both no-ops. Dial failure is logged and leaves
// the manager closed.
func (m *Manager) Open(url string) {
	if url == "" {
		return
	}

	m.mu.Lock()
	if m.connected {
		m.mu.Unlock()
		return
	}
	conn, err := m.dialer.Dial(url)
	if err != nil {
		m.mu.Unlock()
		m.log.Error(pkgerrors.NewConnectionError(url, err), "push connection failed")
		if m.hooks.OnError != nil {
			m.hooks.OnError(err)
		}
		return
	}
	m.conn = conn
	m.connected = true
	m.mu.Unlock()

	if m.hooks.OnOpen != nil {
		m.hooks.OnOpen()
	}
	go m.readLoop(conn)
}

// readLoop delivers frames sequentially until the connection ends. Frame
// order is the network arrival order; no batching or reordering.
func (m *Manager) readLoop(conn Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if m.markClosed(conn) {
				if m.hooks.OnError != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					m.hooks.OnError(err)
				}
				if m.hooks.OnClose != nil {
					m.hooks.OnClose()
				}
			}
			return
		}
		if m.hooks.OnFrame != nil {
			m.hooks.OnFrame(raw)
		}
	}
}

// markClosed transitions to closed exactly once per connection. It reports
// whether this call performed the transition, so close hooks fire once no
// matter whether the close was local or remote.
func (m *Manager) markClosed(conn Conn) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != conn || !m.connected {
		return false
	}
	m.connected = false
	m.conn = nil
	_ = conn.Close()
	return true
}

// Send serializes and transmits. It is a no-op unless connected; write
// failures are logged and degrade to nothing visible.
func (m *Manager) Send(v any) {
	m.mu.Lock()
	conn := m.conn
	connected := m.connected
	m.mu.Unlock()

	if !connected || conn == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Error(err, "dropping unserializable outbound message")
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		m.log.Error(err, "push send failed")
		if m.hooks.OnError != nil {
			m.hooks.OnError(err)
		}
	}
}

// Close tears the connection down. Safe to call when no connection exists,
// and safe to call repeatedly.
func (m *Manager) Close() {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		return
	}
	if m.markClosed(conn) {
		if m.hooks.OnClose != nil {
			m.hooks.OnClose()
		}
	}
}

// Connected reports whether the connection is currently open.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}
