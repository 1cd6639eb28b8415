package nav

import (
	"github.com/dbtea/dbtea/internal/keymap"
	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/vim"
)

// paneOrder is the declaration order used for pane cycling.
var paneOrder = []models.PaneKind{
	models.PaneConnections,
	models.PaneQueryInput,
	models.PaneResults,
	models.PaneSchemaExplorer,
	models.PaneCommandLine,
}

// Manager owns pane focus and the spatial layout. Box-level state lives
// in the BoxManager it wraps. All methods are synchronous; every action
// yields a defined next state, with the explicit no-op as a valid
// transition.
type Manager struct {
	layout  Layout
	boxes   *BoxManager
	focused models.PaneKind
}

// NewManager starts with Connections focused, matching the startup
// transition from the unfocused state to the default pane.
func NewManager(editing models.EditingMode, reg *vim.Register) *Manager {
	return &Manager{
		layout:  DefaultLayout(),
		boxes:   NewBoxManager(editing, reg),
		focused: models.PaneConnections,
	}
}

// Focused returns the focused pane.
func (m *Manager) Focused() models.PaneKind {
	return m.focused
}

// Boxes exposes the box manager.
func (m *Manager) Boxes() *BoxManager {
	return m.boxes
}

// ActiveBox returns the box receiving input: the top modal when one is
// open, otherwise the focused pane's active box.
func (m *Manager) ActiveBox() *Box {
	if modal := m.boxes.TopModal(); modal != nil {
		return modal
	}
	return m.boxes.Active(m.focused)
}

// ModalOpen reports whether a modal captures input.
func (m *Manager) ModalOpen() bool {
	return m.boxes.TopModal() != nil
}

// FocusPane jumps directly to a pane regardless of spatial position.
func (m *Manager) FocusPane(pane models.PaneKind) Effect {
	if pane == m.focused {
		return None()
	}
	m.focused = pane
	return FocusChanged()
}

// MoveFocus shifts focus to the nearest pane in the direction. Without a
// target the focus state is left untouched.
func (m *Manager) MoveFocus(dir models.Direction) Effect {
	target, ok := m.layout.Nearest(m.focused, dir)
	if !ok {
		return None()
	}
	return m.FocusPane(target)
}

// CyclePane moves focus by delta through the declaration order with
// wraparound.
func (m *Manager) CyclePane(delta int) Effect {
	cur := 0
	for i, p := range paneOrder {
		if p == m.focused {
			cur = i
			break
		}
	}
	n := len(paneOrder)
	m.focused = paneOrder[((cur+delta)%n+n)%n]
	return FocusChanged()
}

// CycleBox rotates the focused pane's active box.
func (m *Manager) CycleBox(delta int) Effect {
	if m.boxes.Cycle(m.focused, delta) {
		return FocusChanged()
	}
	return None()
}

// FocusBoxKind activates a box of the given kind in the focused pane.
func (m *Manager) FocusBoxKind(kind models.BoxKind) Effect {
	if m.boxes.FocusKind(m.focused, kind) {
		return FocusChanged()
	}
	return None()
}

// FocusLocation applies a completed foreign-key lookup: focus the target
// pane and place the table cursor on the target row.
func (m *Manager) FocusLocation(loc models.TargetLocation) Effect {
	m.focused = loc.Pane
	if box := m.boxes.Active(loc.Pane); box != nil && box.Kind == models.BoxDataTable {
		box.Table.Row = loc.Row
		box.Table.Col = 0
		box.clampTable()
	}
	return FocusChanged()
}

// Context builds the resolution context for the active box.
func (m *Manager) Context() keymap.Context {
	ctx := keymap.Context{Pane: m.focused}
	box := m.ActiveBox()
	if box == nil {
		return ctx
	}
	ctx.HasBox = true
	ctx.Box = box.Kind
	ctx.Editing = box.Editing
	if mode, ok := box.VimMode(); ok {
		ctx.Vim = mode
	}
	return ctx.WithEdit(box.ViewEdit)
}

// ModeIndicator returns the status-bar label for the active box's mode.
func (m *Manager) ModeIndicator() string {
	box := m.ActiveBox()
	if box == nil {
		return ""
	}
	if mode, ok := box.VimMode(); ok {
		return mode.String()
	}
	if !box.SupportsEditing {
		return ""
	}
	if box.ViewEdit {
		return "EDIT"
	}
	return "VIEW"
}
