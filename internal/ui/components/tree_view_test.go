package components

import (
	"strings"
	"testing"

	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/ui/theme"
)

func testTree() *models.TreeNode {
	return models.BuildSchemaTree("local", map[string][]string{
		"public": {"users", "orders"},
		"audit":  {"events"},
	})
}

func TestTreeViewRendersVisibleNodes(t *testing.T) {
	tv := NewTreeView(testTree(), theme.DefaultTheme())
	tv.Width = 40
	tv.Height = 20

	out := tv.View()

	for _, label := range []string{"public", "audit", "users", "orders", "events"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected rendered tree to contain %q", label)
		}
	}
}

func TestTreeViewCollapsedSchemaHidesTables(t *testing.T) {
	root := testTree()
	schema := root.FindByID("schema:public")
	if schema == nil {
		t.Fatal("schema node not found")
	}
	schema.Toggle()

	tv := NewTreeView(root, theme.DefaultTheme())
	tv.Width = 40
	tv.Height = 20
	out := tv.View()

	if strings.Contains(out, "users") {
		t.Error("collapsed schema should hide its tables")
	}
	if !strings.Contains(out, "public") {
		t.Error("collapsed schema itself should still render")
	}
}

func TestTreeViewNodeAtCursor(t *testing.T) {
	tv := NewTreeView(testTree(), theme.DefaultTheme())

	node := tv.NodeAtCursor()
	if node == nil || node.Label != "audit" {
		t.Fatalf("expected cursor on first schema %q, got %v", "audit", node)
	}

	tv.CursorIndex = 1
	node = tv.NodeAtCursor()
	if node == nil || node.Label != "events" {
		t.Fatalf("expected cursor on %q, got %v", "events", node)
	}

	tv.CursorIndex = 99
	node = tv.NodeAtCursor()
	if node == nil {
		t.Fatal("out of range cursor should clamp, not return nil")
	}
}

func TestTreeViewEmptyState(t *testing.T) {
	tv := NewTreeView(nil, theme.DefaultTheme())
	if !strings.Contains(tv.View(), "empty") {
		t.Error("nil root should render the empty state")
	}
}

func TestTreeViewScrollFollowsCursor(t *testing.T) {
	tables := make([]string, 30)
	for i := range tables {
		tables[i] = "t" + strings.Repeat("x", i%5)
	}
	root := models.BuildSchemaTree("local", map[string][]string{"public": tables})

	tv := NewTreeView(root, theme.DefaultTheme())
	tv.Width = 40
	tv.Height = 10

	tv.CursorIndex = 25
	tv.View()

	if tv.ScrollOffset == 0 {
		t.Error("viewport should scroll to keep a deep cursor visible")
	}
	if tv.CursorIndex < tv.ScrollOffset {
		t.Error("cursor above viewport after scroll adjustment")
	}
}
