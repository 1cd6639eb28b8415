package nav

import (
	"testing"

	"github.com/dbtea/dbtea/internal/keymap"
	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/vim"
)

func newTestManager() *Manager {
	reg := vim.NewRegister()
	reg.SyncClipboard = false
	return NewManager(models.EditingVim, reg)
}

func TestFocusPane(t *testing.T) {
	m := newTestManager()
	if m.Focused() != models.PaneConnections {
		t.Fatalf("initial focus = %v, want Connections", m.Focused())
	}

	eff := m.FocusPane(models.PaneResults)
	if eff.Kind != EffectFocusChanged {
		t.Errorf("effect = %v, want FocusChanged", eff.Kind)
	}
	if m.Focused() != models.PaneResults {
		t.Errorf("focus = %v, want Results", m.Focused())
	}

	// Focusing the already focused pane is a no-op.
	eff = m.FocusPane(models.PaneResults)
	if eff.Kind != EffectNone {
		t.Errorf("refocus effect = %v, want None", eff.Kind)
	}
}

func TestMoveFocusNoTargetIsNoOp(t *testing.T) {
	m := newTestManager()
	before := *m

	eff := m.MoveFocus(models.DirLeft)
	if eff.Kind != EffectNone {
		t.Errorf("effect = %v, want None", eff.Kind)
	}
	if m.focused != before.focused {
		t.Errorf("focus changed on blocked move: %v", m.focused)
	}
}

func TestMoveFocusRight(t *testing.T) {
	m := newTestManager()
	eff := m.MoveFocus(models.DirRight)
	if eff.Kind != EffectFocusChanged {
		t.Fatalf("effect = %v, want FocusChanged", eff.Kind)
	}
	if m.Focused() != models.PaneQueryInput {
		t.Errorf("focus = %v, want QueryInput", m.Focused())
	}
}

func TestCyclePaneWraps(t *testing.T) {
	m := newTestManager()
	for i := 0; i < len(paneOrder); i++ {
		m.CyclePane(1)
	}
	if m.Focused() != models.PaneConnections {
		t.Errorf("focus after full cycle = %v, want Connections", m.Focused())
	}

	m.CyclePane(-1)
	if m.Focused() != models.PaneCommandLine {
		t.Errorf("focus after reverse cycle = %v, want CommandLine", m.Focused())
	}
}

func TestCycleBox(t *testing.T) {
	m := newTestManager()

	// Connections has a single box; cycling cannot change anything.
	if eff := m.CycleBox(1); eff.Kind != EffectNone {
		t.Errorf("single-box cycle effect = %v, want None", eff.Kind)
	}

	m.FocusPane(models.PaneSchemaExplorer)
	if m.ActiveBox().Kind != models.BoxTreeView {
		t.Fatalf("active box = %v, want TreeView", m.ActiveBox().Kind)
	}
	if eff := m.CycleBox(1); eff.Kind != EffectFocusChanged {
		t.Errorf("cycle effect = %v, want FocusChanged", eff.Kind)
	}
	if m.ActiveBox().Kind != models.BoxListView {
		t.Errorf("active box = %v, want ListView", m.ActiveBox().Kind)
	}
	m.CycleBox(1)
	if m.ActiveBox().Kind != models.BoxTreeView {
		t.Errorf("active box after wrap = %v, want TreeView", m.ActiveBox().Kind)
	}
}

func TestModalCapturesActiveBox(t *testing.T) {
	m := newTestManager()
	modal := NewModalBox()
	m.Boxes().PushModal(modal)
	if m.ActiveBox() != modal {
		t.Error("modal is not the active box")
	}
	if !m.ModalOpen() {
		t.Error("ModalOpen() = false with a modal pushed")
	}
	m.Boxes().PopModal()
	if m.ModalOpen() {
		t.Error("ModalOpen() = true after pop")
	}
	if m.ActiveBox().Kind != models.BoxTreeView {
		t.Errorf("active box = %v, want TreeView", m.ActiveBox().Kind)
	}
}

func TestFocusLocation(t *testing.T) {
	m := newTestManager()
	box := m.Boxes().Active(models.PaneResults)
	box.SetTableSize(10, 4)

	eff := m.FocusLocation(models.TargetLocation{
		Pane:  models.PaneResults,
		Table: "orders",
		Row:   7,
	})
	if eff.Kind != EffectFocusChanged {
		t.Errorf("effect = %v, want FocusChanged", eff.Kind)
	}
	if m.Focused() != models.PaneResults {
		t.Errorf("focus = %v, want Results", m.Focused())
	}
	if box.Table.Row != 7 || box.Table.Col != 0 {
		t.Errorf("table cursor = (%d,%d), want (7,0)", box.Table.Row, box.Table.Col)
	}

	// A row past the loaded page clamps.
	m.FocusLocation(models.TargetLocation{Pane: models.PaneResults, Row: 99})
	if box.Table.Row != 9 {
		t.Errorf("table row = %d, want 9", box.Table.Row)
	}
}

func TestContextScopes(t *testing.T) {
	m := newTestManager()

	// Connections holds a browse-only tree.
	if got := m.Context().Scope(); got != keymap.ScopeCursorView {
		t.Errorf("tree context scope = %v, want cursor-view", got)
	}

	m.FocusPane(models.PaneQueryInput)
	if got := m.Context().Scope(); got != keymap.ScopeVimNormal {
		t.Errorf("query context scope = %v, want vim-normal", got)
	}

	box := m.ActiveBox()
	box.Editor.EnterInsert()
	if got := m.Context().Scope(); got != keymap.ScopeVimInsert {
		t.Errorf("insert context scope = %v, want vim-insert", got)
	}
	box.Editor.Cancel()

	m.FocusPane(models.PaneResults)
	if got := m.Context().Scope(); got != keymap.ScopeCursorView {
		t.Errorf("table context scope = %v, want cursor-view", got)
	}
	m.ActiveBox().ViewEdit = true
	if got := m.Context().Scope(); got != keymap.ScopeCursorEdit {
		t.Errorf("edit context scope = %v, want cursor-edit", got)
	}
}

func TestModeIndicator(t *testing.T) {
	m := newTestManager()
	if got := m.ModeIndicator(); got != "" {
		t.Errorf("browse indicator = %q, want empty", got)
	}

	m.FocusPane(models.PaneQueryInput)
	if got := m.ModeIndicator(); got != "NORMAL" {
		t.Errorf("indicator = %q, want NORMAL", got)
	}
	m.ActiveBox().Editor.EnterVisual()
	if got := m.ModeIndicator(); got != "VISUAL" {
		t.Errorf("indicator = %q, want VISUAL", got)
	}
	m.ActiveBox().Editor.Cancel()

	m.FocusPane(models.PaneResults)
	if got := m.ModeIndicator(); got != "VIEW" {
		t.Errorf("indicator = %q, want VIEW", got)
	}
	m.ActiveBox().ViewEdit = true
	if got := m.ModeIndicator(); got != "EDIT" {
		t.Errorf("indicator = %q, want EDIT", got)
	}
}
