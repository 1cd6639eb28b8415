package nav

import (
	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/vim"
)

// BoxManager owns the per-pane box lists, the active box within each
// pane, and the modal overlay stack. A modal on top of the stack
// captures input ahead of any pane box.
type BoxManager struct {
	boxes  map[models.PaneKind][]*Box
	active map[models.PaneKind]int
	modals []*Box
}

// NewBoxManager builds the fixed box set for every pane. Text boxes
// start in the given editing mode and share the yank register.
func NewBoxManager(editing models.EditingMode, reg *vim.Register) *BoxManager {
	return &BoxManager{
		boxes: map[models.PaneKind][]*Box{
			models.PaneConnections:    {NewTreeBox()},
			models.PaneQueryInput:     {NewTextBox(editing, reg)},
			models.PaneResults:        {NewDataTableBox()},
			models.PaneSchemaExplorer: {NewTreeBox(), NewListBox()},
			models.PaneCommandLine:    {NewTextBox(editing, reg)},
		},
		active: make(map[models.PaneKind]int),
	}
}

// Active returns the active box of a pane, or nil when the pane owns no
// boxes. The modal stack does not affect per-pane activity.
func (m *BoxManager) Active(pane models.PaneKind) *Box {
	boxes := m.boxes[pane]
	if len(boxes) == 0 {
		return nil
	}
	return boxes[m.active[pane]]
}

// Boxes returns the pane's boxes in declaration order.
func (m *BoxManager) Boxes(pane models.PaneKind) []*Box {
	return m.boxes[pane]
}

// Cycle rotates the pane's active box by delta with wraparound. It
// reports whether the active box changed.
func (m *BoxManager) Cycle(pane models.PaneKind, delta int) bool {
	boxes := m.boxes[pane]
	if len(boxes) < 2 {
		return false
	}
	n := len(boxes)
	m.active[pane] = ((m.active[pane]+delta)%n + n) % n
	return true
}

// FocusKind activates the first box of the given kind within the pane.
// It reports whether such a box exists.
func (m *BoxManager) FocusKind(pane models.PaneKind, kind models.BoxKind) bool {
	for i, b := range m.boxes[pane] {
		if b.Kind == kind {
			changed := m.active[pane] != i
			m.active[pane] = i
			return changed
		}
	}
	return false
}

// PushModal places a modal box on top of the overlay stack.
func (m *BoxManager) PushModal(b *Box) {
	m.modals = append(m.modals, b)
}

// PopModal removes the top modal, if any.
func (m *BoxManager) PopModal() *Box {
	if len(m.modals) == 0 {
		return nil
	}
	top := m.modals[len(m.modals)-1]
	m.modals = m.modals[:len(m.modals)-1]
	return top
}

// TopModal returns the capturing modal, or nil when the stack is empty.
func (m *BoxManager) TopModal() *Box {
	if len(m.modals) == 0 {
		return nil
	}
	return m.modals[len(m.modals)-1]
}
