package connection

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Connection is one managed pool together with its liveness state. Err
// holds the most recent connect or ping failure.
type Connection struct {
	ID          string
	Config      Config
	Pool        *Pool
	Connected   bool
	ConnectedAt time.Time
	LastPing    time.Time
	Err         error
}

// Manager tracks every open connection and which one is active. Methods
// are safe for concurrent use from command goroutines.
type Manager struct {
	mu     sync.RWMutex
	conns  map[string]*Connection
	active string
}

// NewManager creates an empty manager with no active connection.
func NewManager() *Manager {
	return &Manager{conns: make(map[string]*Connection)}
}

// Connect opens a pool and registers it under the config's display name,
// falling back to user@host:port/db. A successful connection becomes
// active. A failed attempt is registered too, so the connections pane
// can surface the error.
func (m *Manager) Connect(ctx context.Context, cfg Config) (*Connection, error) {
	conn := &Connection{ID: connectionID(cfg), Config: cfg}

	pool, err := NewPool(ctx, cfg)
	if err != nil {
		conn.Err = err
	} else {
		conn.Pool = pool
		conn.Connected = true
		conn.ConnectedAt = time.Now()
		conn.LastPing = conn.ConnectedAt
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.conns[conn.ID]; ok && prev.Pool != nil {
		prev.Pool.Close()
	}
	m.conns[conn.ID] = conn
	if conn.Connected {
		m.active = conn.ID
	}
	return conn, err
}

// Disconnect closes and removes a connection. Removing the active one
// promotes the first remaining live connection, if any.
func (m *Manager) Disconnect(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	conn, ok := m.conns[id]
	if !ok {
		return fmt.Errorf("connection %s not found", id)
	}
	if conn.Pool != nil {
		conn.Pool.Close()
	}
	delete(m.conns, id)

	if m.active == id {
		m.active = ""
		for _, next := range m.orderedLocked() {
			if next.Connected {
				m.active = next.ID
				break
			}
		}
	}
	return nil
}

// CloseAll closes every pool. Used at shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, conn := range m.conns {
		if conn.Pool != nil {
			conn.Pool.Close()
		}
	}
	m.conns = make(map[string]*Connection)
	m.active = ""
}

// GetActive returns the active connection.
func (m *Manager) GetActive() (*Connection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conn, ok := m.conns[m.active]
	if !ok {
		return nil, fmt.Errorf("no active connection")
	}
	return conn, nil
}

// ActiveID returns the active connection's ID, or "" when none is.
func (m *Manager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// SetActive activates a connection by ID. Only live connections can
// become active.
func (m *Manager) SetActive(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	conn, ok := m.conns[id]
	if !ok {
		return fmt.Errorf("connection %s not found", id)
	}
	if !conn.Connected {
		return fmt.Errorf("connection %s is not connected", id)
	}
	m.active = id
	return nil
}

// GetAll returns the connections ordered by ID.
func (m *Manager) GetAll() []*Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orderedLocked()
}

func (m *Manager) orderedLocked() []*Connection {
	conns := make([]*Connection, 0, len(m.conns))
	for _, conn := range m.conns {
		conns = append(conns, conn)
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i].ID < conns[j].ID })
	return conns
}

// Ping checks the active pool and records the outcome on the
// connection.
func (m *Manager) Ping(ctx context.Context) error {
	conn, err := m.GetActive()
	if err != nil {
		return err
	}
	if conn.Pool == nil {
		return fmt.Errorf("connection %s has no pool", conn.ID)
	}

	err = conn.Pool.Ping(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	conn.Err = err
	conn.Connected = err == nil
	if err == nil {
		conn.LastPing = time.Now()
	}
	return err
}

func connectionID(cfg Config) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}
