package core

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dbtea/dbtea/internal/keymap"
	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/nav"
	"github.com/dbtea/dbtea/internal/vim"
)

// Core is the single synchronous entry point for key events. One event
// is fully resolved and dispatched before the next is read; external
// work is described by the returned effect and performed by the caller.
type Core struct {
	keys *keymap.Table
	nav  *nav.Manager
	reg  *vim.Register

	count vim.Count

	// pendingDouble holds a line action awaiting its second press.
	pendingDouble keymap.Action

	// latest request IDs; completions carrying any other ID are stale
	// and discarded.
	latestQuery  uuid.UUID
	latestLookup uuid.UUID

	// result context backing the data table box.
	resultSchema  string
	resultTable   string
	resultColumns []string
	resultRows    [][]string
}

// New wires a core from an already-merged key table. The register is
// shared across every editor the navigation manager creates.
func New(keys *keymap.Table, editing models.EditingMode, reg *vim.Register) *Core {
	return &Core{
		keys: keys,
		nav:  nav.NewManager(editing, reg),
		reg:  reg,
	}
}

// Nav exposes the navigation manager for rendering.
func (c *Core) Nav() *nav.Manager {
	return c.nav
}

// Register exposes the shared yank register.
func (c *Core) Register() *vim.Register {
	return c.reg
}

// Focus is a read-only snapshot of the focus state for drawing.
type Focus struct {
	Pane    models.PaneKind
	Box     models.BoxKind
	HasBox  bool
	Editing models.EditingMode
	Vim     models.VimMode
	HasVim  bool
}

// CurrentFocus returns the focus snapshot.
func (c *Core) CurrentFocus() Focus {
	f := Focus{Pane: c.nav.Focused()}
	box := c.nav.ActiveBox()
	if box == nil {
		return f
	}
	f.HasBox = true
	f.Box = box.Kind
	f.Editing = box.Editing
	if mode, ok := box.VimMode(); ok {
		f.Vim = mode
		f.HasVim = true
	}
	return f
}

// HandleKey resolves one key event and dispatches the resulting action.
// Unmapped chords and invalid transitions are no-ops, never errors.
func (c *Core) HandleKey(ev keymap.Event) nav.Effect {
	pending := c.pendingDouble
	c.pendingDouble = keymap.ActionNone

	box := c.nav.ActiveBox()

	// An armed replace consumes the next text rune before resolution.
	// Any other key disarms it, so a confirm or motion after r does not
	// leave the following rune overwriting.
	if box != nil && box.Editor != nil && box.Editor.PendingReplace() {
		if ev.IsText() {
			box.Editor.HandleText(ev.Rune)
			return nav.BufferChanged()
		}
		box.Editor.CancelReplace()
	}

	// Numeric prefixes accumulate in vim Normal mode and while browsing
	// in cursor view mode. A bare 0 with no active count falls through
	// so the line-start motion can resolve.
	if c.interceptsCount(box) && ev.IsDigit() && (ev.Rune != '0' || c.count.Active()) {
		c.count.Accumulate(ev.Rune)
		return nav.None()
	}

	// Literal text bypasses the table while an editor is consuming it:
	// digits and mapped-elsewhere runes insert instead of resolving.
	// Cursor-mode edit has no vim sub-mode, so it inserts directly.
	if ev.IsText() && c.acceptsText(box) {
		if box.Editing == models.EditingCursor {
			box.Editor.InsertRune(ev.Rune)
		} else {
			box.Editor.HandleText(ev.Rune)
		}
		return nav.BufferChanged()
	}

	action, ok := c.keys.Resolve(ev, c.nav.Context())
	if !ok {
		c.count.Reset()
		return nav.None()
	}

	n := 1
	if action.IsMotion() {
		n = c.count.Take()
	} else {
		c.count.Reset()
	}

	// Line delete and yank require a doubled press in vim Normal mode.
	if eff, handled := c.handleDouble(box, action, pending); handled {
		return eff
	}

	return c.dispatch(box, action, n)
}

// interceptsCount reports whether digits form a numeric prefix in the
// box's current mode. Insert, Visual, Command and cursor edit treat
// digits as literal input.
func (c *Core) interceptsCount(box *nav.Box) bool {
	if box == nil {
		return false
	}
	if mode, ok := box.VimMode(); ok {
		return mode == models.VimNormal
	}
	if box.Kind == models.BoxModal {
		return false
	}
	return box.Editing == models.EditingCursor && !box.ViewEdit
}

// acceptsText reports whether the box's editor consumes literal runes.
func (c *Core) acceptsText(box *nav.Box) bool {
	if box == nil || box.Editor == nil {
		return false
	}
	if mode, ok := box.VimMode(); ok {
		return mode == models.VimInsert || mode == models.VimCommand
	}
	return box.Editing == models.EditingCursor && box.ViewEdit
}

// handleDouble implements the two-press line delete and line yank. The
// first press arms the action; a second identical press fires it. Any
// other key in between disarms.
func (c *Core) handleDouble(box *nav.Box, action, pending keymap.Action) (nav.Effect, bool) {
	if box == nil || box.Editor == nil {
		return nav.None(), false
	}
	mode, ok := box.VimMode()
	if !ok || mode != models.VimNormal {
		return nav.None(), false
	}
	switch action {
	case keymap.DeleteLine:
		if pending == keymap.DeleteLine {
			box.Editor.DeleteLine()
			return nav.BufferChanged(), true
		}
		c.pendingDouble = keymap.DeleteLine
		return nav.None(), true
	case keymap.Copy:
		if pending == keymap.Copy {
			box.Editor.YankLine()
			return nav.None(), true
		}
		c.pendingDouble = keymap.Copy
		return nav.None(), true
	}
	return nav.None(), false
}

func (c *Core) dispatch(box *nav.Box, action keymap.Action, n int) nav.Effect {
	switch action {
	case keymap.Quit:
		return nav.RequestQuit()
	case keymap.Cancel:
		return c.handleCancel(box)
	case keymap.Confirm:
		return c.handleConfirm(box)
	case keymap.FocusSearch:
		return nav.RequestSearch()

	case keymap.FocusConnections:
		return c.nav.FocusPane(models.PaneConnections)
	case keymap.FocusQueryInput:
		return c.nav.FocusPane(models.PaneQueryInput)
	case keymap.FocusResults:
		return c.nav.FocusPane(models.PaneResults)
	case keymap.FocusSchemaExplorer:
		return c.nav.FocusPane(models.PaneSchemaExplorer)
	case keymap.FocusCommandLine:
		return c.nav.FocusPane(models.PaneCommandLine)
	case keymap.NextPane:
		return c.nav.CyclePane(1)
	case keymap.PrevPane:
		return c.nav.CyclePane(-1)
	case keymap.PaneLeft:
		return c.nav.MoveFocus(models.DirLeft)
	case keymap.PaneRight:
		return c.nav.MoveFocus(models.DirRight)
	case keymap.PaneUp:
		return c.nav.MoveFocus(models.DirUp)
	case keymap.PaneDown:
		return c.nav.MoveFocus(models.DirDown)
	case keymap.NextBox:
		return c.nav.CycleBox(1)
	case keymap.PrevBox:
		return c.nav.CycleBox(-1)
	case keymap.FocusTextInput:
		return c.nav.FocusBoxKind(models.BoxTextInput)
	case keymap.FocusDataTable:
		return c.nav.FocusBoxKind(models.BoxDataTable)
	case keymap.FocusTreeView:
		return c.nav.FocusBoxKind(models.BoxTreeView)
	case keymap.FocusListView:
		return c.nav.FocusBoxKind(models.BoxListView)

	case keymap.MoveLeft, keymap.MoveRight, keymap.MoveUp, keymap.MoveDown,
		keymap.MoveWordForward, keymap.MoveWordBackward:
		return c.applyMotion(box, action, n)
	case keymap.MoveLineStart, keymap.MoveLineEnd:
		return c.applyLineJump(box, action)

	case keymap.FirstPage:
		return nav.RequestPageChange(nav.PageFirst)
	case keymap.LastPage:
		return nav.RequestPageChange(nav.PageLast)
	case keymap.NextPage:
		return nav.RequestPageChange(nav.PageNext)
	case keymap.PrevPage:
		return nav.RequestPageChange(nav.PagePrev)
	case keymap.Sort:
		if box != nil && box.Kind == models.BoxDataTable {
			return nav.RequestSort(box.Table.Col)
		}
		return nav.None()
	case keymap.FollowForeignKey:
		return c.followForeignKey(box)
	}

	if action.IsEdit() {
		return c.applyEdit(box, action)
	}
	return nav.None()
}

func (c *Core) applyMotion(box *nav.Box, action keymap.Action, n int) nav.Effect {
	if box == nil {
		return nav.None()
	}
	if box.Editor != nil {
		for i := 0; i < n; i++ {
			switch action {
			case keymap.MoveLeft:
				box.Editor.Move(models.DirLeft)
			case keymap.MoveRight:
				box.Editor.Move(models.DirRight)
			case keymap.MoveUp:
				box.Editor.Move(models.DirUp)
			case keymap.MoveDown:
				box.Editor.Move(models.DirDown)
			case keymap.MoveWordForward:
				box.Editor.MoveWordForward()
			case keymap.MoveWordBackward:
				box.Editor.MoveWordBackward()
			}
		}
		return nav.None()
	}

	dir, ok := motionDirection(action)
	if !ok {
		return nav.None()
	}
	for i := 0; i < n; i++ {
		if !box.ApplyMotion(dir) {
			break
		}
	}
	return nav.None()
}

func motionDirection(action keymap.Action) (models.Direction, bool) {
	switch action {
	case keymap.MoveLeft:
		return models.DirLeft, true
	case keymap.MoveRight:
		return models.DirRight, true
	case keymap.MoveUp:
		return models.DirUp, true
	case keymap.MoveDown:
		return models.DirDown, true
	}
	return 0, false
}

func (c *Core) applyLineJump(box *nav.Box, action keymap.Action) nav.Effect {
	if box == nil {
		return nav.None()
	}
	if box.Editor != nil {
		if action == keymap.MoveLineStart {
			box.Editor.MoveLineStart()
		} else {
			box.Editor.MoveLineEnd()
		}
		return nav.None()
	}
	if box.Kind == models.BoxDataTable {
		if action == keymap.MoveLineStart {
			box.Table.Col = 0
		} else if box.Table.Cols > 0 {
			box.Table.Col = box.Table.Cols - 1
		}
	}
	return nav.None()
}

func (c *Core) applyEdit(box *nav.Box, action keymap.Action) nav.Effect {
	if box == nil || !box.SupportsEditing {
		return nav.None()
	}

	if action == keymap.ToggleViewEdit {
		if box.Editing != models.EditingCursor {
			return nav.None()
		}
		box.ViewEdit = !box.ViewEdit
		return nav.ModeChanged()
	}

	if box.Kind == models.BoxDataTable {
		return c.applyTableEdit(box, action)
	}
	if box.Editor == nil {
		return nav.None()
	}
	ed := box.Editor

	switch action {
	case keymap.EnterInsert:
		ed.EnterInsert()
		return nav.ModeChanged()
	case keymap.EnterAppend:
		ed.EnterAppend()
		return nav.ModeChanged()
	case keymap.EnterVisual:
		ed.EnterVisual()
		return nav.ModeChanged()
	case keymap.EnterCommand:
		ed.EnterCommand()
		return nav.ModeChanged()
	case keymap.EnterNormal:
		ed.Cancel()
		return nav.ModeChanged()
	case keymap.OpenLineBelow:
		ed.OpenLineBelow()
		return nav.ModeChanged()
	case keymap.OpenLineAbove:
		ed.OpenLineAbove()
		return nav.ModeChanged()
	case keymap.DeleteCharBefore:
		if ed.Mode() == models.VimCommand {
			ed.CmdBackspace()
		} else {
			ed.DeleteCharBefore()
		}
		return nav.BufferChanged()
	case keymap.DeleteChar:
		ed.DeleteChar()
		return nav.BufferChanged()
	case keymap.DeleteLine:
		ed.DeleteLine()
		return nav.BufferChanged()
	case keymap.ReplaceChar:
		ed.StartReplace()
		return nav.None()
	case keymap.Undo:
		ed.Undo()
		return nav.BufferChanged()
	case keymap.Copy:
		wasVisual := ed.Mode() == models.VimVisual
		ed.Yank()
		if wasVisual {
			return nav.ModeChanged()
		}
		return nav.None()
	case keymap.YankLine:
		ed.YankLine()
		return nav.None()
	case keymap.Paste:
		ed.Paste()
		return nav.BufferChanged()
	case keymap.Cut:
		ed.Cut()
		return nav.BufferChanged()
	}
	return nav.None()
}

// applyTableEdit covers the clipboard actions a result table supports.
// Cell mutation itself belongs to the application layer.
func (c *Core) applyTableEdit(box *nav.Box, action keymap.Action) nav.Effect {
	switch action {
	case keymap.Copy:
		if text, ok := c.cellText(box.Table.Row, box.Table.Col); ok {
			c.reg.Set(text)
		}
	case keymap.CopyRow, keymap.YankLine:
		if box.Table.Row < len(c.resultRows) {
			c.reg.Set(strings.Join(c.resultRows[box.Table.Row], "\t"))
		}
	case keymap.Paste:
		// Pasting into a result table would mutate data this core does
		// not own.
	}
	return nav.None()
}

func (c *Core) handleCancel(box *nav.Box) nav.Effect {
	if c.nav.ModalOpen() {
		c.nav.Boxes().PopModal()
		return nav.FocusChanged()
	}
	if box == nil {
		return nav.None()
	}
	if box.Editor != nil {
		if mode, ok := box.VimMode(); ok && mode != models.VimNormal {
			box.Editor.Cancel()
			return nav.ModeChanged()
		}
	}
	if box.Editing == models.EditingCursor && box.ViewEdit {
		box.ViewEdit = false
		return nav.ModeChanged()
	}
	return nav.None()
}

func (c *Core) handleConfirm(box *nav.Box) nav.Effect {
	if c.nav.ModalOpen() {
		c.nav.Boxes().PopModal()
		return nav.RequestConfirm("")
	}
	if box == nil {
		return nav.RequestConfirm("")
	}

	if box.Editor != nil {
		if mode, ok := box.VimMode(); ok && mode == models.VimCommand {
			return nav.RequestConfirm(box.Editor.TakeCommand())
		}
	}

	switch c.nav.Focused() {
	case models.PaneQueryInput:
		// Multiline entry: confirm inserts a line break while typing;
		// execution happens from Normal mode.
		if box.Editor != nil {
			if mode, ok := box.VimMode(); ok && mode == models.VimInsert {
				box.Editor.InsertNewline()
				return nav.BufferChanged()
			}
		}
		return c.startQuery(box)
	case models.PaneCommandLine:
		if box.Editor != nil {
			command := box.Editor.Content()
			box.Editor.SetContent("")
			return nav.RequestConfirm(command)
		}
	}
	return nav.RequestConfirm("")
}

func (c *Core) startQuery(box *nav.Box) nav.Effect {
	if box == nil || box.Editor == nil {
		return nav.None()
	}
	query := strings.TrimSpace(box.Editor.Content())
	if query == "" {
		return nav.None()
	}
	id := uuid.New()
	c.latestQuery = id
	return nav.RequestQuery(id, query)
}

func (c *Core) followForeignKey(box *nav.Box) nav.Effect {
	if box == nil || box.Kind != models.BoxDataTable {
		return nav.None()
	}
	if box.Table.Rows == 0 || box.Table.Col >= len(c.resultColumns) {
		return nav.None()
	}
	id := uuid.New()
	c.latestLookup = id
	return nav.RequestForeignKeyFollow(id, models.CellRef{
		Schema: c.resultSchema,
		Table:  c.resultTable,
		Column: c.resultColumns[box.Table.Col],
		Row:    box.Table.Row,
	})
}

func (c *Core) cellText(row, col int) (string, bool) {
	if row >= len(c.resultRows) || row < 0 {
		return "", false
	}
	r := c.resultRows[row]
	if col >= len(r) || col < 0 {
		return "", false
	}
	return r[col], true
}

// SetResultContext records which table the result set came from so that
// cell references can name it.
func (c *Core) SetResultContext(schema, table string) {
	c.resultSchema = schema
	c.resultTable = table
}

// OnQueryComplete applies a finished query. Stale completions, ones
// superseded by a newer request, are dropped without touching state.
func (c *Core) OnQueryComplete(id uuid.UUID, res models.QueryResult) nav.Effect {
	if id != c.latestQuery {
		return nav.None()
	}
	if res.Err != nil {
		return nav.ShowError(res.Err)
	}
	c.resultColumns = res.Columns
	c.resultRows = res.Rows
	if box := c.nav.Boxes().Active(models.PaneResults); box != nil {
		box.SetTableSize(len(res.Rows), len(res.Columns))
		box.Table.Row = 0
		box.Table.Col = 0
	}
	c.nav.FocusPane(models.PaneResults)
	return nav.FocusChanged()
}

// LoadResults replaces the result set outside the request/completion
// protocol, for page and sort reloads of an already-open table. The
// cursor clamps into the new bounds instead of resetting.
func (c *Core) LoadResults(schema, table string, res models.QueryResult) nav.Effect {
	if res.Err != nil {
		return nav.ShowError(res.Err)
	}
	c.resultSchema = schema
	c.resultTable = table
	c.resultColumns = res.Columns
	c.resultRows = res.Rows
	if box := c.nav.Boxes().Active(models.PaneResults); box != nil {
		box.SetTableSize(len(res.Rows), len(res.Columns))
	}
	return nav.BufferChanged()
}

// OnLookupComplete applies a finished foreign key lookup: the fetched
// target rows replace the result set and focus lands on the target row.
// This is the only focus change without a key action.
func (c *Core) OnLookupComplete(id uuid.UUID, loc models.TargetLocation, res models.QueryResult, err error) nav.Effect {
	if id != c.latestLookup {
		return nav.None()
	}
	if err != nil {
		return nav.ShowError(err)
	}
	if res.Err != nil {
		return nav.ShowError(res.Err)
	}
	c.resultSchema = loc.Schema
	c.resultTable = loc.Table
	c.resultColumns = res.Columns
	c.resultRows = res.Rows
	if box := c.nav.Boxes().Active(models.PaneResults); box != nil {
		box.SetTableSize(len(res.Rows), len(res.Columns))
	}
	return c.nav.FocusLocation(loc)
}

// OnSchemaLoaded resizes the schema tree cursor to the loaded tree.
func (c *Core) OnSchemaLoaded(tree *models.TreeNode, err error) nav.Effect {
	if err != nil {
		return nav.ShowError(err)
	}
	n := 0
	if tree != nil {
		n = len(tree.Flatten())
	}
	for _, box := range c.nav.Boxes().Boxes(models.PaneSchemaExplorer) {
		if box.Kind == models.BoxTreeView {
			box.SetListLen(n)
		}
	}
	return nav.BufferChanged()
}

// SetConnectionCount resizes the connections pane cursor to the listed
// connections, clamping the cursor.
func (c *Core) SetConnectionCount(n int) {
	if box := c.nav.Boxes().Active(models.PaneConnections); box != nil {
		box.SetListLen(n)
	}
}
