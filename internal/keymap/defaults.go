package keymap

// Defaults returns the built-in key table. User configuration is overlaid
// onto this via Merge; pane-modifier chords are composed afterwards so
// explicit user bindings always win.
func Defaults() *Table {
	t := NewTable()

	// Global: application-level keys available in every context that does
	// not shadow them.
	t.Bind(ScopeGlobal, "Esc", Cancel)
	t.Bind(ScopeGlobal, "Enter", Confirm)
	t.Bind(ScopeGlobal, "/", FocusSearch)
	t.Bind(ScopeGlobal, "Ctrl+c", Quit)
	t.Bind(ScopeGlobal, "Tab", NextBox)
	t.Bind(ScopeGlobal, "Shift+Tab", PrevBox)
	t.Bind(ScopeGlobal, "]", NextPane)
	t.Bind(ScopeGlobal, "[", PrevPane)

	// Vim normal mode: motions, mode entry, editing primitives.
	t.Bind(ScopeVimNormal, "h", MoveLeft)
	t.Bind(ScopeVimNormal, "j", MoveDown)
	t.Bind(ScopeVimNormal, "k", MoveUp)
	t.Bind(ScopeVimNormal, "l", MoveRight)
	t.Bind(ScopeVimNormal, "Left", MoveLeft)
	t.Bind(ScopeVimNormal, "Down", MoveDown)
	t.Bind(ScopeVimNormal, "Up", MoveUp)
	t.Bind(ScopeVimNormal, "Right", MoveRight)
	t.Bind(ScopeVimNormal, "w", MoveWordForward)
	t.Bind(ScopeVimNormal, "b", MoveWordBackward)
	t.Bind(ScopeVimNormal, "0", MoveLineStart)
	t.Bind(ScopeVimNormal, "$", MoveLineEnd)
	t.Bind(ScopeVimNormal, "i", EnterInsert)
	t.Bind(ScopeVimNormal, "a", EnterAppend)
	t.Bind(ScopeVimNormal, "o", OpenLineBelow)
	t.Bind(ScopeVimNormal, "Shift+o", OpenLineAbove)
	t.Bind(ScopeVimNormal, "v", EnterVisual)
	t.Bind(ScopeVimNormal, ":", EnterCommand)
	t.Bind(ScopeVimNormal, "x", DeleteChar)
	t.Bind(ScopeVimNormal, "Delete", DeleteChar)
	t.Bind(ScopeVimNormal, "r", ReplaceChar)
	t.Bind(ScopeVimNormal, "u", Undo)
	t.Bind(ScopeVimNormal, "d", DeleteLine)
	t.Bind(ScopeVimNormal, "y", Copy)
	t.Bind(ScopeVimNormal, "Shift+y", YankLine)
	t.Bind(ScopeVimNormal, "p", Paste)
	t.Bind(ScopeVimNormal, "g", FirstPage)
	t.Bind(ScopeVimNormal, "Shift+g", LastPage)
	t.Bind(ScopeVimNormal, ",", NextPage)
	t.Bind(ScopeVimNormal, ".", PrevPage)
	t.Bind(ScopeVimNormal, "s", Sort)
	t.Bind(ScopeVimNormal, "Shift+f", FollowForeignKey)

	// Vim insert mode: everything not bound here is literal text.
	t.Bind(ScopeVimInsert, "Backspace", DeleteCharBefore)
	t.Bind(ScopeVimInsert, "Delete", DeleteChar)
	t.Bind(ScopeVimInsert, "Left", MoveLeft)
	t.Bind(ScopeVimInsert, "Down", MoveDown)
	t.Bind(ScopeVimInsert, "Up", MoveUp)
	t.Bind(ScopeVimInsert, "Right", MoveRight)

	// Vim visual mode: motions extend the selection; y/d act on it.
	t.Bind(ScopeVimVisual, "h", MoveLeft)
	t.Bind(ScopeVimVisual, "j", MoveDown)
	t.Bind(ScopeVimVisual, "k", MoveUp)
	t.Bind(ScopeVimVisual, "l", MoveRight)
	t.Bind(ScopeVimVisual, "Left", MoveLeft)
	t.Bind(ScopeVimVisual, "Down", MoveDown)
	t.Bind(ScopeVimVisual, "Up", MoveUp)
	t.Bind(ScopeVimVisual, "Right", MoveRight)
	t.Bind(ScopeVimVisual, "y", Copy)
	t.Bind(ScopeVimVisual, "d", DeleteChar)
	t.Bind(ScopeVimVisual, "x", DeleteChar)

	// Vim command mode: the command line consumes text; only control keys
	// are resolved.
	t.Bind(ScopeVimCommand, "Backspace", DeleteCharBefore)

	// Cursor mode, view half: browse keys mirroring the original layout.
	t.Bind(ScopeCursorView, "h", MoveLeft)
	t.Bind(ScopeCursorView, "j", MoveDown)
	t.Bind(ScopeCursorView, "k", MoveUp)
	t.Bind(ScopeCursorView, "l", MoveRight)
	t.Bind(ScopeCursorView, "Left", MoveLeft)
	t.Bind(ScopeCursorView, "Down", MoveDown)
	t.Bind(ScopeCursorView, "Up", MoveUp)
	t.Bind(ScopeCursorView, "Right", MoveRight)
	t.Bind(ScopeCursorView, "e", ToggleViewEdit)
	t.Bind(ScopeCursorView, "g", FirstPage)
	t.Bind(ScopeCursorView, "Shift+g", LastPage)
	t.Bind(ScopeCursorView, ",", NextPage)
	t.Bind(ScopeCursorView, ".", PrevPage)
	t.Bind(ScopeCursorView, "s", Sort)
	t.Bind(ScopeCursorView, "y", Copy)
	t.Bind(ScopeCursorView, "Shift+y", CopyRow)
	t.Bind(ScopeCursorView, "f", FollowForeignKey)
	t.Bind(ScopeCursorView, "q", Quit)

	// Cursor mode, edit half: Esc (global Cancel) leaves; text is literal.
	t.Bind(ScopeCursorEdit, "Backspace", DeleteCharBefore)
	t.Bind(ScopeCursorEdit, "Delete", DeleteChar)
	t.Bind(ScopeCursorEdit, "Left", MoveLeft)
	t.Bind(ScopeCursorEdit, "Down", MoveDown)
	t.Bind(ScopeCursorEdit, "Up", MoveUp)
	t.Bind(ScopeCursorEdit, "Right", MoveRight)

	return t
}
