package nav

import (
	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/vim"
)

// TableState is the row/column cursor of a data table box, clamped to
// the loaded result dimensions.
type TableState struct {
	Row, Col   int
	Rows, Cols int
}

// ListState is the line cursor of a tree or list box.
type ListState struct {
	Index int
	Len   int
}

// Box is a focusable unit inside a pane. Boxes are constructed with
// their pane at startup and never reparented.
type Box struct {
	Kind            models.BoxKind
	SupportsEditing bool

	// Editing selects vim-style or cursor-style interaction for boxes
	// that support editing.
	Editing models.EditingMode

	// ViewEdit is the cursor-mode edit flag; false means view.
	ViewEdit bool

	// Editor is present only for vim-capable text boxes. All editors in
	// a session share one yank register.
	Editor *vim.Editor

	Table TableState
	List  ListState
}

// NewTextBox creates an editable text box with its own editor.
func NewTextBox(editing models.EditingMode, reg *vim.Register) *Box {
	return &Box{
		Kind:            models.BoxTextInput,
		SupportsEditing: true,
		Editing:         editing,
		Editor:          vim.NewEditor(reg),
	}
}

// NewDataTableBox creates a result table box. Tables edit in cursor
// mode only; the view/edit flag gates cell mutation.
func NewDataTableBox() *Box {
	return &Box{
		Kind:            models.BoxDataTable,
		SupportsEditing: true,
		Editing:         models.EditingCursor,
	}
}

// NewTreeBox creates a browse-only tree box. Browse boxes interact in
// cursor style but never edit.
func NewTreeBox() *Box {
	return &Box{Kind: models.BoxTreeView, Editing: models.EditingCursor}
}

// NewListBox creates a browse-only list box.
func NewListBox() *Box {
	return &Box{Kind: models.BoxListView, Editing: models.EditingCursor}
}

// NewModalBox creates a transient overlay box for the modal stack.
func NewModalBox() *Box {
	return &Box{Kind: models.BoxModal, Editing: models.EditingCursor}
}

// VimMode returns the active vim sub-mode, or ok=false when the box has
// no vim editor or is not editing in vim mode.
func (b *Box) VimMode() (models.VimMode, bool) {
	if b.Editor == nil || b.Editing != models.EditingVim {
		return models.VimNormal, false
	}
	return b.Editor.Mode(), true
}

// SetTableSize resizes the table cursor bounds, clamping the cursor.
func (b *Box) SetTableSize(rows, cols int) {
	b.Table.Rows = rows
	b.Table.Cols = cols
	b.clampTable()
}

// SetListLen resizes the list cursor bounds, clamping the cursor.
func (b *Box) SetListLen(n int) {
	b.List.Len = n
	if b.List.Index >= n {
		b.List.Index = n - 1
	}
	if b.List.Index < 0 {
		b.List.Index = 0
	}
}

func (b *Box) clampTable() {
	if b.Table.Row >= b.Table.Rows {
		b.Table.Row = b.Table.Rows - 1
	}
	if b.Table.Row < 0 {
		b.Table.Row = 0
	}
	if b.Table.Col >= b.Table.Cols {
		b.Table.Col = b.Table.Cols - 1
	}
	if b.Table.Col < 0 {
		b.Table.Col = 0
	}
}

// ApplyMotion moves the box's own cursor one step, clamped at bounds.
// It reports whether the cursor actually moved.
func (b *Box) ApplyMotion(dir models.Direction) bool {
	switch b.Kind {
	case models.BoxDataTable:
		return b.moveTable(dir)
	case models.BoxTreeView, models.BoxListView:
		return b.moveList(dir)
	}
	return false
}

func (b *Box) moveTable(dir models.Direction) bool {
	before := b.Table
	switch dir {
	case models.DirUp:
		b.Table.Row--
	case models.DirDown:
		b.Table.Row++
	case models.DirLeft:
		b.Table.Col--
	case models.DirRight:
		b.Table.Col++
	}
	b.clampTable()
	return b.Table != before
}

func (b *Box) moveList(dir models.Direction) bool {
	before := b.List.Index
	switch dir {
	case models.DirUp:
		if b.List.Index > 0 {
			b.List.Index--
		}
	case models.DirDown:
		if b.List.Index+1 < b.List.Len {
			b.List.Index++
		}
	}
	return b.List.Index != before
}
