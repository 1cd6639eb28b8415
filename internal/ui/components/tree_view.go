package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/ui/theme"
)

// TreeView renders hierarchical tree data with a cursor and viewport
// scrolling. Cursor movement is driven externally; the view only needs the
// current cursor index.
type TreeView struct {
	Root         *models.TreeNode
	CursorIndex  int
	Width        int
	Height       int
	Theme        theme.Theme
	ScrollOffset int
}

// NewTreeView creates a new tree view component
func NewTreeView(root *models.TreeNode, th theme.Theme) *TreeView {
	return &TreeView{
		Root:   root,
		Width:  40,
		Height: 20,
		Theme:  th,
	}
}

// SetRoot replaces the tree and resets the viewport.
func (tv *TreeView) SetRoot(root *models.TreeNode) {
	tv.Root = root
	tv.CursorIndex = 0
	tv.ScrollOffset = 0
}

// NodeAtCursor returns the node under the cursor, or nil for an empty tree.
func (tv *TreeView) NodeAtCursor() *models.TreeNode {
	if tv.Root == nil {
		return nil
	}
	visible := tv.Root.Flatten()
	if len(visible) == 0 {
		return nil
	}
	idx := tv.CursorIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	return visible[idx]
}

// View renders the tree as a string
func (tv *TreeView) View() string {
	if tv.Root == nil {
		return tv.emptyState()
	}

	visible := tv.Root.Flatten()
	if len(visible) == 0 {
		return tv.emptyState()
	}

	if tv.CursorIndex < 0 {
		tv.CursorIndex = 0
	}
	if tv.CursorIndex >= len(visible) {
		tv.CursorIndex = len(visible) - 1
	}

	viewHeight := tv.Height - 2
	if viewHeight < 1 {
		viewHeight = 1
	}

	tv.adjustScrollOffset(len(visible), viewHeight)

	start := tv.ScrollOffset
	end := start + viewHeight
	if end > len(visible) {
		end = len(visible)
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, tv.renderNode(visible[i], i == tv.CursorIndex))
	}
	for len(lines) < viewHeight {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// adjustScrollOffset keeps the cursor inside the viewport
func (tv *TreeView) adjustScrollOffset(total, viewHeight int) {
	if tv.CursorIndex < tv.ScrollOffset {
		tv.ScrollOffset = tv.CursorIndex
	}
	if tv.CursorIndex >= tv.ScrollOffset+viewHeight {
		tv.ScrollOffset = tv.CursorIndex - viewHeight + 1
	}
	maxOffset := total - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if tv.ScrollOffset > maxOffset {
		tv.ScrollOffset = maxOffset
	}
	if tv.ScrollOffset < 0 {
		tv.ScrollOffset = 0
	}
}

// renderNode renders a single tree node with appropriate styling
func (tv *TreeView) renderNode(node *models.TreeNode, selected bool) string {
	if node == nil {
		return ""
	}

	depth := node.Depth() - 1
	if depth < 0 {
		depth = 0
	}
	indent := strings.Repeat("  ", depth)

	content := fmt.Sprintf("%s%s %s", indent, tv.nodeIcon(node), node.Label)

	maxWidth := tv.Width - 2
	if maxWidth < 4 {
		maxWidth = 4
	}
	if len(content) > maxWidth {
		content = content[:maxWidth-1] + "…"
	}

	if selected {
		return lipgloss.NewStyle().
			Background(tv.Theme.Selection).
			Foreground(tv.Theme.Foreground).
			Bold(true).
			Width(maxWidth).
			Render(content)
	}

	return lipgloss.NewStyle().
		Foreground(tv.nodeColor(node)).
		Render(content)
}

func (tv *TreeView) nodeIcon(node *models.TreeNode) string {
	if len(node.Children) == 0 && node.Type == models.TreeNodeTypeTable {
		return "•"
	}
	if node.Expanded {
		return "▾"
	}
	return "▸"
}

func (tv *TreeView) nodeColor(node *models.TreeNode) lipgloss.Color {
	switch {
	case node.Type == models.TreeNodeTypeTable:
		return tv.Theme.TreeLeaf
	case node.Expanded:
		return tv.Theme.TreeExpanded
	default:
		return tv.Theme.TreeCollapsed
	}
}

func (tv *TreeView) emptyState() string {
	return lipgloss.NewStyle().
		Foreground(tv.Theme.TreeCollapsed).
		Italic(true).
		Render("  (empty)")
}
