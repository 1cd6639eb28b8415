package vim

import (
	"strings"

	"github.com/dbtea/dbtea/internal/models"
)

// Position is a cursor location in the editor buffer. Col counts runes,
// not bytes.
type Position struct {
	Row int
	Col int
}

// Editor is a modal text editor owned by a single box. Lines are rune
// slices so that cursor arithmetic stays valid on multi-byte input. The
// yank register is shared across every editor in the session and
// injected at construction.
type Editor struct {
	mode   models.VimMode
	lines  [][]rune
	cursor Position

	// anchor is the visual selection start; present only in Visual mode.
	anchor *Position

	// pendingReplace is set after a replace-char action; the next text
	// rune overwrites the character under the cursor.
	pendingReplace bool

	// cmdline is the Command-mode input line, distinct from the buffer.
	cmdline string

	reg  *Register
	undo []snapshot
}

type snapshot struct {
	lines  [][]rune
	cursor Position
}

// NewEditor creates an empty editor in Normal mode.
func NewEditor(reg *Register) *Editor {
	return &Editor{
		mode:  models.VimNormal,
		lines: [][]rune{{}},
		reg:   reg,
	}
}

// Mode returns the current vim sub-mode.
func (e *Editor) Mode() models.VimMode {
	return e.mode
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Position {
	return e.cursor
}

// Content returns the buffer as a single string.
func (e *Editor) Content() string {
	var b strings.Builder
	for i, line := range e.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}

// Lines returns the buffer lines for rendering.
func (e *Editor) Lines() []string {
	lines := make([]string, len(e.lines))
	for i, line := range e.lines {
		lines[i] = string(line)
	}
	return lines
}

// SetContent replaces the buffer and resets the cursor and history.
func (e *Editor) SetContent(content string) {
	parts := strings.Split(content, "\n")
	e.lines = make([][]rune, len(parts))
	for i, part := range parts {
		e.lines[i] = []rune(part)
	}
	e.cursor = Position{}
	e.anchor = nil
	e.undo = nil
}

// PendingReplace reports whether the next text rune replaces the
// character under the cursor.
func (e *Editor) PendingReplace() bool {
	return e.pendingReplace
}

// CancelReplace disarms a pending replace without changing mode.
func (e *Editor) CancelReplace() {
	e.pendingReplace = false
}

// line returns the current line.
func (e *Editor) line() []rune {
	return e.lines[e.cursor.Row]
}

func (e *Editor) clamp() {
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if e.cursor.Row >= len(e.lines) {
		e.cursor.Row = len(e.lines) - 1
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
	if e.cursor.Col > len(e.line()) {
		e.cursor.Col = len(e.line())
	}
}

func (e *Editor) pushUndo() {
	lines := make([][]rune, len(e.lines))
	for i, line := range e.lines {
		lines[i] = append([]rune(nil), line...)
	}
	e.undo = append(e.undo, snapshot{lines: lines, cursor: e.cursor})
}

// Undo restores the buffer to the state before the last mutation.
// Without history it is a no-op.
func (e *Editor) Undo() {
	if len(e.undo) == 0 {
		return
	}
	last := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.lines = last.lines
	e.cursor = last.cursor
	e.clamp()
}

// EnterInsert switches to Insert mode with the cursor unchanged.
func (e *Editor) EnterInsert() {
	e.mode = models.VimInsert
	e.pendingReplace = false
}

// EnterAppend moves the cursor one position right (clamped to the line
// length) and switches to Insert mode.
func (e *Editor) EnterAppend() {
	e.cursor.Col++
	e.clamp()
	e.EnterInsert()
}

// EnterVisual anchors a selection at the cursor and switches to Visual.
func (e *Editor) EnterVisual() {
	anchor := e.cursor
	e.anchor = &anchor
	e.mode = models.VimVisual
}

// EnterCommand clears the command line and switches to Command mode.
func (e *Editor) EnterCommand() {
	e.cmdline = ""
	e.mode = models.VimCommand
}

// Cancel returns to Normal mode. A Visual selection is discarded without
// mutating the buffer; a Command line is discarded without executing.
func (e *Editor) Cancel() {
	e.anchor = nil
	e.cmdline = ""
	e.pendingReplace = false
	e.mode = models.VimNormal
}

// Move moves the cursor one step, clamped at buffer bounds. Up/Down keep
// the column within the target line.
func (e *Editor) Move(dir models.Direction) {
	switch dir {
	case models.DirLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
	case models.DirRight:
		if e.cursor.Col < len(e.line()) {
			e.cursor.Col++
		}
	case models.DirUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
			e.clamp()
		}
	case models.DirDown:
		if e.cursor.Row+1 < len(e.lines) {
			e.cursor.Row++
			e.clamp()
		}
	}
}

// MoveWordForward moves to just past the next space, or line end.
func (e *Editor) MoveWordForward() {
	line := e.line()
	for i := min(e.cursor.Col, len(line)); i < len(line); i++ {
		if line[i] == ' ' {
			e.cursor.Col = i + 1
			return
		}
	}
	e.cursor.Col = len(line)
}

// MoveWordBackward moves to just past the previous space, or line start.
func (e *Editor) MoveWordBackward() {
	line := e.line()
	i := min(e.cursor.Col, len(line)) - 1
	for i >= 0 && line[i] == ' ' {
		i--
	}
	for i >= 0 && line[i] != ' ' {
		i--
	}
	e.cursor.Col = i + 1
}

// MoveLineStart moves to column zero.
func (e *Editor) MoveLineStart() {
	e.cursor.Col = 0
}

// MoveLineEnd moves past the last character of the line.
func (e *Editor) MoveLineEnd() {
	e.cursor.Col = len(e.line())
}

// HandleText consumes one literal text rune according to the current
// mode: Command mode appends to the command line, a pending replace
// overwrites in place, Insert mode inserts at the cursor. In Normal and
// Visual modes literal text is ignored.
func (e *Editor) HandleText(r rune) {
	switch {
	case e.mode == models.VimCommand:
		e.cmdline += string(r)
	case e.pendingReplace:
		e.replaceAtCursor(r)
		e.pendingReplace = false
	case e.mode == models.VimInsert:
		e.InsertRune(r)
	}
}

// InsertRune inserts a character at the cursor and advances it.
func (e *Editor) InsertRune(r rune) {
	line := e.line()
	e.cursor.Col = min(e.cursor.Col, len(line))
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:e.cursor.Col]...)
	next = append(next, r)
	next = append(next, line[e.cursor.Col:]...)
	e.lines[e.cursor.Row] = next
	e.cursor.Col++
}

func (e *Editor) replaceAtCursor(r rune) {
	if e.cursor.Col >= len(e.line()) {
		return
	}
	e.pushUndo()
	e.line()[e.cursor.Col] = r
}

// StartReplace arms the replace-pending flag; the next text rune
// overwrites the character under the cursor.
func (e *Editor) StartReplace() {
	e.pendingReplace = true
}

// InsertNewline splits the current line at the cursor.
func (e *Editor) InsertNewline() {
	line := e.line()
	e.cursor.Col = min(e.cursor.Col, len(line))
	before := append([]rune(nil), line[:e.cursor.Col]...)
	after := append([]rune(nil), line[e.cursor.Col:]...)
	e.lines[e.cursor.Row] = before
	e.lines = append(e.lines[:e.cursor.Row+1], append([][]rune{after}, e.lines[e.cursor.Row+1:]...)...)
	e.cursor.Row++
	e.cursor.Col = 0
}

// OpenLineBelow inserts an empty line under the cursor and enters Insert.
func (e *Editor) OpenLineBelow() {
	e.pushUndo()
	row := e.cursor.Row + 1
	e.lines = append(e.lines[:row], append([][]rune{{}}, e.lines[row:]...)...)
	e.cursor = Position{Row: row}
	e.EnterInsert()
}

// OpenLineAbove inserts an empty line at the cursor and enters Insert.
func (e *Editor) OpenLineAbove() {
	e.pushUndo()
	row := e.cursor.Row
	e.lines = append(e.lines[:row], append([][]rune{{}}, e.lines[row:]...)...)
	e.cursor = Position{Row: row}
	e.EnterInsert()
}

// DeleteCharBefore deletes the character before the cursor, joining with
// the previous line at column zero.
func (e *Editor) DeleteCharBefore() {
	if e.cursor.Col > 0 {
		line := e.line()
		next := append([]rune(nil), line[:e.cursor.Col-1]...)
		e.lines[e.cursor.Row] = append(next, line[e.cursor.Col:]...)
		e.cursor.Col--
		return
	}
	if e.cursor.Row == 0 {
		return
	}
	prev := e.lines[e.cursor.Row-1]
	joined := append([]rune(nil), prev...)
	e.lines[e.cursor.Row-1] = append(joined, e.line()...)
	e.lines = append(e.lines[:e.cursor.Row], e.lines[e.cursor.Row+1:]...)
	e.cursor.Row--
	e.cursor.Col = len(prev)
}

// DeleteChar deletes the character under the cursor, or the full
// selection in Visual mode.
func (e *Editor) DeleteChar() {
	if e.mode == models.VimVisual {
		e.DeleteSelection()
		return
	}
	line := e.line()
	if e.cursor.Col >= len(line) {
		return
	}
	e.pushUndo()
	next := append([]rune(nil), line[:e.cursor.Col]...)
	e.lines[e.cursor.Row] = append(next, line[e.cursor.Col+1:]...)
}

// DeleteLine removes the current line, keeping at least one empty line.
func (e *Editor) DeleteLine() {
	e.pushUndo()
	e.lines = append(e.lines[:e.cursor.Row], e.lines[e.cursor.Row+1:]...)
	if len(e.lines) == 0 {
		e.lines = [][]rune{{}}
	}
	if e.cursor.Row >= len(e.lines) {
		e.cursor.Row = len(e.lines) - 1
	}
	e.cursor.Col = 0
}

// Selection returns the normalized inclusive selection range.
func (e *Editor) Selection() (start, end Position, ok bool) {
	if e.anchor == nil {
		return Position{}, Position{}, false
	}
	a, b := *e.anchor, e.cursor
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return a, b, true
}

// SelectedText returns the inclusive selection contents, clamped to the
// buffer.
func (e *Editor) SelectedText() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}
	if start.Row == end.Row {
		line := e.lines[start.Row]
		lo := min(start.Col, len(line))
		hi := min(end.Col+1, len(line))
		if lo >= hi {
			return ""
		}
		return string(line[lo:hi])
	}

	var b strings.Builder
	for row := start.Row; row <= end.Row && row < len(e.lines); row++ {
		line := e.lines[row]
		switch row {
		case start.Row:
			b.WriteString(string(line[min(start.Col, len(line)):]))
		case end.Row:
			b.WriteString(string(line[:min(end.Col+1, len(line))]))
		default:
			b.WriteString(string(line))
		}
		if row < end.Row {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Yank copies the selection (Visual) or the current line (Normal) into
// the shared register. Visual yank returns to Normal mode.
func (e *Editor) Yank() {
	if e.mode == models.VimVisual {
		e.reg.Set(e.SelectedText())
		e.Cancel()
		return
	}
	e.YankLine()
}

// YankLine copies the current line into the shared register.
func (e *Editor) YankLine() {
	e.reg.Set(string(e.line()))
}

// DeleteSelection removes the inclusive selection, yanks it, and returns
// to Normal mode with the cursor at the selection start.
func (e *Editor) DeleteSelection() {
	start, end, ok := e.Selection()
	if !ok {
		return
	}
	e.pushUndo()
	e.reg.Set(e.SelectedText())

	first := e.lines[start.Row]
	lastLine := e.lines[min(end.Row, len(e.lines)-1)]
	joined := append([]rune(nil), first[:min(start.Col, len(first))]...)
	if end.Col+1 < len(lastLine) {
		joined = append(joined, lastLine[end.Col+1:]...)
	}

	e.lines = append(e.lines[:start.Row], append([][]rune{joined}, e.lines[min(end.Row, len(e.lines)-1)+1:]...)...)
	e.cursor = start
	e.clamp()
	e.Cancel()
}

// Cut deletes the selection (Visual) or the character under the cursor
// (Normal) after yanking it.
func (e *Editor) Cut() {
	if e.mode == models.VimVisual {
		e.DeleteSelection()
		return
	}
	line := e.line()
	if e.cursor.Col < len(line) {
		e.reg.Set(string(line[e.cursor.Col]))
	}
	e.DeleteChar()
}

// Paste inserts the register contents at the cursor. Mode is unchanged.
func (e *Editor) Paste() {
	text := e.reg.Get()
	if text == "" {
		return
	}
	e.pushUndo()
	for _, r := range text {
		if r == '\n' {
			e.InsertNewline()
			continue
		}
		e.InsertRune(r)
	}
}

// CommandLine returns the Command-mode input line.
func (e *Editor) CommandLine() string {
	return e.cmdline
}

// CmdBackspace removes the last command-line character.
func (e *Editor) CmdBackspace() {
	if e.cmdline == "" {
		return
	}
	runes := []rune(e.cmdline)
	e.cmdline = string(runes[:len(runes)-1])
}

// TakeCommand returns the command line, clears it, and returns to
// Normal mode. Used when a Command-mode confirm fires.
func (e *Editor) TakeCommand() string {
	cmd := e.cmdline
	e.cmdline = ""
	e.mode = models.VimNormal
	return cmd
}
