package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "history.db"), maxEntries)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAndGetRecent(t *testing.T) {
	s := newTestStore(t, 0)

	entries := []Entry{
		{ConnectionName: "local", DatabaseName: "app", Query: "select 1", Duration: 5 * time.Millisecond, Success: true},
		{ConnectionName: "local", DatabaseName: "app", Query: "select 2", Duration: 7 * time.Millisecond, RowsAffected: 2, Success: true},
		{ConnectionName: "local", DatabaseName: "app", Query: "select oops", Success: false, ErrorMessage: "syntax error"},
	}
	for _, e := range entries {
		if err := s.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for _, e := range got {
		if e.ConnectionName != "local" || e.DatabaseName != "app" {
			t.Errorf("entry = %+v", e)
		}
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t, 0)
	_ = s.Add(Entry{ConnectionName: "c", DatabaseName: "d", Query: "select * from users", Success: true})
	_ = s.Add(Entry{ConnectionName: "c", DatabaseName: "d", Query: "select * from orders", Success: true})

	got, err := s.Search("users", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Query != "select * from users" {
		t.Errorf("Search = %+v", got)
	}
}

func TestTrimKeepsNewest(t *testing.T) {
	s := newTestStore(t, 2)
	for _, q := range []string{"one", "two", "three"} {
		if err := s.Add(Entry{ConnectionName: "c", DatabaseName: "d", Query: q, Success: true}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.Query == "one" {
			t.Error("oldest entry survived trim")
		}
	}
}
