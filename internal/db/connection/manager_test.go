package connection

import "testing"

func managerWith(active string, conns ...*Connection) *Manager {
	m := NewManager()
	for _, conn := range conns {
		m.conns[conn.ID] = conn
	}
	m.active = active
	return m
}

func TestDisconnectPromotesNextLive(t *testing.T) {
	m := managerWith("staging",
		&Connection{ID: "staging", Connected: true},
		&Connection{ID: "broken", Connected: false},
		&Connection{ID: "prod", Connected: true},
	)

	if err := m.Disconnect("staging"); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	// Promotion skips the dead connection and picks the first live one
	// in ID order.
	if got := m.ActiveID(); got != "prod" {
		t.Errorf("active = %q, want %q", got, "prod")
	}

	if err := m.Disconnect("prod"); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	if got := m.ActiveID(); got != "" {
		t.Errorf("active = %q after last live disconnect, want empty", got)
	}

	if err := m.Disconnect("missing"); err == nil {
		t.Error("disconnecting an unknown ID did not error")
	}
}

func TestSetActiveRejectsDeadConnection(t *testing.T) {
	m := managerWith("up",
		&Connection{ID: "up", Connected: true},
		&Connection{ID: "down", Connected: false},
	)

	if err := m.SetActive("down"); err == nil {
		t.Error("SetActive accepted a dead connection")
	}
	if got := m.ActiveID(); got != "up" {
		t.Errorf("active = %q after rejected switch, want %q", got, "up")
	}

	if err := m.SetActive("nope"); err == nil {
		t.Error("SetActive accepted an unknown ID")
	}
}

func TestGetAllOrdered(t *testing.T) {
	m := managerWith("",
		&Connection{ID: "zeta"},
		&Connection{ID: "alpha"},
		&Connection{ID: "mid"},
	)

	all := m.GetAll()
	want := []string{"alpha", "mid", "zeta"}
	if len(all) != len(want) {
		t.Fatalf("GetAll() returned %d connections, want %d", len(all), len(want))
	}
	for i, conn := range all {
		if conn.ID != want[i] {
			t.Errorf("GetAll()[%d] = %q, want %q", i, conn.ID, want[i])
		}
	}
}

func TestGetActiveWithoutConnections(t *testing.T) {
	m := NewManager()
	if _, err := m.GetActive(); err == nil {
		t.Error("GetActive on an empty manager did not error")
	}
}

func TestConnectionID(t *testing.T) {
	if got := connectionID(Config{Name: "local"}); got != "local" {
		t.Errorf("connectionID = %q, want %q", got, "local")
	}
	cfg := Config{User: "app", Host: "db", Port: 5432, Database: "orders"}
	if got := connectionID(cfg); got != "app@db:5432/orders" {
		t.Errorf("connectionID = %q, want %q", got, "app@db:5432/orders")
	}
}
