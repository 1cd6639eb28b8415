package vim

import (
	"testing"

	"github.com/dbtea/dbtea/internal/models"
)

func newTestEditor() *Editor {
	reg := NewRegister()
	reg.SyncClipboard = false
	return NewEditor(reg)
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleText(r)
	}
}

func TestModeTransitions(t *testing.T) {
	e := newTestEditor()
	if e.Mode() != models.VimNormal {
		t.Fatalf("initial mode = %v, want Normal", e.Mode())
	}

	e.EnterInsert()
	if e.Mode() != models.VimInsert {
		t.Errorf("mode = %v, want Insert", e.Mode())
	}
	e.Cancel()
	if e.Mode() != models.VimNormal {
		t.Errorf("mode after cancel = %v, want Normal", e.Mode())
	}

	e.EnterVisual()
	if e.Mode() != models.VimVisual {
		t.Errorf("mode = %v, want Visual", e.Mode())
	}
	e.Cancel()
	if _, _, ok := e.Selection(); ok {
		t.Error("selection survived cancel")
	}

	e.EnterCommand()
	typeText(e, "quit")
	e.Cancel()
	if e.CommandLine() != "" {
		t.Errorf("command line survived cancel: %q", e.CommandLine())
	}
	if e.Mode() != models.VimNormal {
		t.Errorf("mode after cancel = %v, want Normal", e.Mode())
	}
}

func TestInsertAndContent(t *testing.T) {
	e := newTestEditor()
	e.EnterInsert()
	typeText(e, "select 1")
	if got := e.Content(); got != "select 1" {
		t.Errorf("Content() = %q, want %q", got, "select 1")
	}
	if e.Cursor().Col != 8 {
		t.Errorf("cursor col = %d, want 8", e.Cursor().Col)
	}

	e.InsertNewline()
	typeText(e, "limit 10")
	if got := e.Content(); got != "select 1\nlimit 10" {
		t.Errorf("Content() = %q", got)
	}
	if e.Cursor().Row != 1 {
		t.Errorf("cursor row = %d, want 1", e.Cursor().Row)
	}
}

func TestInsertMultibyteRunes(t *testing.T) {
	e := newTestEditor()
	e.EnterInsert()
	typeText(e, "éa")
	if got := e.Content(); got != "éa" {
		t.Fatalf("Content() = %q, want %q", got, "éa")
	}
	if e.Cursor().Col != 2 {
		t.Errorf("cursor col = %d, want 2", e.Cursor().Col)
	}

	// Backspace removes the whole rune, not one byte.
	e.DeleteCharBefore()
	e.DeleteCharBefore()
	if got := e.Content(); got != "" {
		t.Errorf("Content() = %q after backspaces, want empty", got)
	}

	typeText(e, "日本語")
	e.Cancel()
	e.MoveLineStart()
	e.Move(models.DirRight)
	e.StartReplace()
	e.HandleText('ü')
	if got := e.Content(); got != "日ü語" {
		t.Errorf("Content() = %q, want %q", got, "日ü語")
	}
}

func TestAppendMovesRight(t *testing.T) {
	e := newTestEditor()
	e.SetContent("ab")
	e.EnterAppend()
	typeText(e, "X")
	if got := e.Content(); got != "aXb" {
		t.Errorf("Content() = %q, want %q", got, "aXb")
	}
}

func TestNormalModeIgnoresText(t *testing.T) {
	e := newTestEditor()
	e.SetContent("abc")
	typeText(e, "xyz")
	if got := e.Content(); got != "abc" {
		t.Errorf("Normal mode mutated buffer: %q", got)
	}
}

func TestCursorClamping(t *testing.T) {
	e := newTestEditor()
	e.SetContent("abc\nz")

	// Repeated moves past the edge stay at the edge.
	for i := 0; i < 10; i++ {
		e.Move(models.DirRight)
	}
	if e.Cursor().Col != 3 {
		t.Errorf("col = %d, want 3", e.Cursor().Col)
	}

	// Moving down to a shorter line clamps the column.
	e.Move(models.DirDown)
	if e.Cursor() != (Position{Row: 1, Col: 1}) {
		t.Errorf("cursor = %+v, want {1 1}", e.Cursor())
	}

	for i := 0; i < 10; i++ {
		e.Move(models.DirDown)
	}
	if e.Cursor().Row != 1 {
		t.Errorf("row = %d, want 1", e.Cursor().Row)
	}
	for i := 0; i < 10; i++ {
		e.Move(models.DirLeft)
		e.Move(models.DirUp)
	}
	if e.Cursor() != (Position{}) {
		t.Errorf("cursor = %+v, want origin", e.Cursor())
	}
}

func TestWordMotions(t *testing.T) {
	e := newTestEditor()
	e.SetContent("select id from users")

	e.MoveWordForward()
	if e.Cursor().Col != 7 {
		t.Errorf("after first w: col = %d, want 7", e.Cursor().Col)
	}
	e.MoveWordForward()
	if e.Cursor().Col != 10 {
		t.Errorf("after second w: col = %d, want 10", e.Cursor().Col)
	}
	e.MoveLineEnd()
	if e.Cursor().Col != 20 {
		t.Errorf("after $: col = %d, want 20", e.Cursor().Col)
	}
	e.MoveWordBackward()
	if e.Cursor().Col != 15 {
		t.Errorf("after b: col = %d, want 15", e.Cursor().Col)
	}
	e.MoveLineStart()
	if e.Cursor().Col != 0 {
		t.Errorf("after 0: col = %d, want 0", e.Cursor().Col)
	}
	e.MoveWordBackward()
	if e.Cursor().Col != 0 {
		t.Errorf("b at line start moved: col = %d", e.Cursor().Col)
	}
}

func TestVisualYankPasteRoundTrip(t *testing.T) {
	e := newTestEditor()
	e.EnterInsert()
	typeText(e, "abc")
	e.Cancel()

	e.EnterVisual()
	e.MoveLineStart()
	e.Yank()
	if e.Mode() != models.VimNormal {
		t.Fatalf("mode after yank = %v, want Normal", e.Mode())
	}

	e.MoveLineEnd()
	e.Paste()
	if got := e.Content(); got != "abcabc" {
		t.Errorf("Content() = %q, want %q", got, "abcabc")
	}
}

func TestDeleteSelection(t *testing.T) {
	e := newTestEditor()
	e.SetContent("hello world")
	e.EnterVisual()
	for i := 0; i < 4; i++ {
		e.Move(models.DirRight)
	}
	e.DeleteSelection()

	if got := e.Content(); got != " world" {
		t.Errorf("Content() = %q, want %q", got, " world")
	}
	if e.Mode() != models.VimNormal {
		t.Errorf("mode = %v, want Normal", e.Mode())
	}
	if got := e.reg.Get(); got != "hello" {
		t.Errorf("register = %q, want %q", got, "hello")
	}
}

func TestDeleteSelectionMultiline(t *testing.T) {
	e := newTestEditor()
	e.SetContent("one\ntwo\nthree")
	e.Move(models.DirRight) // col 1 on "one"
	e.EnterVisual()
	e.Move(models.DirDown)
	e.Move(models.DirDown) // col 1 on "three"
	e.DeleteSelection()

	if got := e.Content(); got != "oree" {
		t.Errorf("Content() = %q, want %q", got, "oree")
	}
	if got := e.reg.Get(); got != "ne\ntwo\nth" {
		t.Errorf("register = %q, want %q", got, "ne\ntwo\nth")
	}
}

func TestDeleteLine(t *testing.T) {
	e := newTestEditor()
	e.SetContent("one\ntwo\nthree")
	e.Move(models.DirDown)
	e.DeleteLine()
	if got := e.Content(); got != "one\nthree" {
		t.Errorf("Content() = %q, want %q", got, "one\nthree")
	}

	// Deleting every line leaves a single empty line.
	e.DeleteLine()
	e.DeleteLine()
	if got := e.Content(); got != "" {
		t.Errorf("Content() = %q, want empty", got)
	}
	if e.Cursor() != (Position{}) {
		t.Errorf("cursor = %+v, want origin", e.Cursor())
	}
}

func TestYankLinePaste(t *testing.T) {
	e := newTestEditor()
	e.SetContent("first\nsecond")
	e.YankLine()
	e.Move(models.DirDown)
	e.MoveLineEnd()
	e.Paste()
	if got := e.Content(); got != "first\nsecondfirst" {
		t.Errorf("Content() = %q", got)
	}
}

func TestReplaceChar(t *testing.T) {
	e := newTestEditor()
	e.SetContent("cat")
	e.Move(models.DirRight)
	e.StartReplace()
	if !e.PendingReplace() {
		t.Fatal("replace not pending")
	}
	e.HandleText('u')
	if got := e.Content(); got != "cut" {
		t.Errorf("Content() = %q, want %q", got, "cut")
	}
	if e.PendingReplace() {
		t.Error("replace still pending after consuming a rune")
	}

	// A second rune in Normal mode is ignored.
	e.HandleText('x')
	if got := e.Content(); got != "cut" {
		t.Errorf("Content() = %q after stray rune, want %q", got, "cut")
	}
}

func TestReplaceCancelled(t *testing.T) {
	e := newTestEditor()
	e.SetContent("cat")
	e.StartReplace()
	e.Cancel()
	e.HandleText('x')
	if got := e.Content(); got != "cat" {
		t.Errorf("Content() = %q, want %q", got, "cat")
	}
}

func TestOpenLines(t *testing.T) {
	e := newTestEditor()
	e.SetContent("mid")

	e.OpenLineBelow()
	if e.Mode() != models.VimInsert {
		t.Fatalf("mode = %v, want Insert", e.Mode())
	}
	typeText(e, "below")
	e.Cancel()
	e.Move(models.DirUp)

	e.OpenLineAbove()
	typeText(e, "above")
	if got := e.Content(); got != "above\nmid\nbelow" {
		t.Errorf("Content() = %q", got)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newTestEditor()
	e.SetContent("ab\ncd")
	e.Move(models.DirDown)
	e.EnterInsert()
	e.DeleteCharBefore()
	if got := e.Content(); got != "abcd" {
		t.Errorf("Content() = %q, want %q", got, "abcd")
	}
	if e.Cursor() != (Position{Row: 0, Col: 2}) {
		t.Errorf("cursor = %+v, want {0 2}", e.Cursor())
	}
}

func TestUndo(t *testing.T) {
	e := newTestEditor()
	e.SetContent("keep")
	e.DeleteLine()
	if got := e.Content(); got != "" {
		t.Fatalf("Content() = %q, want empty", got)
	}
	e.Undo()
	if got := e.Content(); got != "keep" {
		t.Errorf("Content() after undo = %q, want %q", got, "keep")
	}

	// Undo without history is a no-op.
	e.Undo()
	e.Undo()
	if got := e.Content(); got != "keep" {
		t.Errorf("Content() = %q, want %q", got, "keep")
	}
}

func TestCommandLine(t *testing.T) {
	e := newTestEditor()
	e.EnterCommand()
	typeText(e, "wqx")
	e.CmdBackspace()
	if got := e.CommandLine(); got != "wq" {
		t.Errorf("CommandLine() = %q, want %q", got, "wq")
	}
	if got := e.TakeCommand(); got != "wq" {
		t.Errorf("TakeCommand() = %q, want %q", got, "wq")
	}
	if e.Mode() != models.VimNormal {
		t.Errorf("mode = %v, want Normal", e.Mode())
	}
	if e.CommandLine() != "" {
		t.Error("command line not cleared")
	}
}

func TestSharedRegisterAcrossEditors(t *testing.T) {
	reg := NewRegister()
	reg.SyncClipboard = false
	a := NewEditor(reg)
	b := NewEditor(reg)

	a.SetContent("from a")
	a.YankLine()
	b.EnterInsert()
	b.Paste()
	if got := b.Content(); got != "from a" {
		t.Errorf("Content() = %q, want %q", got, "from a")
	}
}
