package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/ui/theme"
	"github.com/dbtea/dbtea/internal/vim"
)

// EditorView renders a modal text editor buffer with cursor, visual
// selection, and the command line when command mode is active.
type EditorView struct {
	Editor *vim.Editor
	Width  int
	Height int
	Theme  theme.Theme
}

// NewEditorView creates an editor view for the given buffer
func NewEditorView(ed *vim.Editor, th theme.Theme) *EditorView {
	return &EditorView{
		Editor: ed,
		Width:  60,
		Height: 10,
		Theme:  th,
	}
}

// View renders the buffer
func (ev *EditorView) View() string {
	if ev.Editor == nil {
		return ""
	}

	lines := ev.Editor.Lines()
	cursor := ev.Editor.Cursor()
	selStart, selEnd, hasSel := ev.Editor.Selection()

	viewHeight := ev.Height
	if ev.Editor.Mode() == models.VimCommand {
		viewHeight--
	}
	if viewHeight < 1 {
		viewHeight = 1
	}

	top := 0
	if cursor.Row >= viewHeight {
		top = cursor.Row - viewHeight + 1
	}
	end := top + viewHeight
	if end > len(lines) {
		end = len(lines)
	}

	var rendered []string
	for row := top; row < end; row++ {
		rendered = append(rendered, ev.renderLine(lines[row], row, cursor, selStart, selEnd, hasSel))
	}
	for len(rendered) < viewHeight {
		rendered = append(rendered, "")
	}

	out := strings.Join(rendered, "\n")
	if ev.Editor.Mode() == models.VimCommand {
		cmdStyle := lipgloss.NewStyle().Foreground(ev.Theme.Info)
		out += "\n" + cmdStyle.Render(":"+ev.Editor.CommandLine())
	}
	return out
}

// renderLine styles one buffer line, cell by cell, so the cursor and the
// selection can both land mid-line.
func (ev *EditorView) renderLine(line string, row int, cursor vim.Position, selStart, selEnd vim.Position, hasSel bool) string {
	runes := []rune(line)
	showCursor := row == cursor.Row && ev.Editor.Mode() != models.VimCommand

	cursorStyle := lipgloss.NewStyle().
		Background(ev.Theme.Cursor).
		Foreground(ev.Theme.Background)
	selStyle := lipgloss.NewStyle().
		Background(ev.Theme.Selection)

	var b strings.Builder
	for col := 0; col <= len(runes); col++ {
		var ch string
		if col < len(runes) {
			ch = string(runes[col])
		} else if showCursor && col == cursor.Col {
			ch = " "
		} else {
			break
		}

		switch {
		case showCursor && col == cursor.Col:
			b.WriteString(cursorStyle.Render(ch))
		case hasSel && inSelection(row, col, selStart, selEnd):
			b.WriteString(selStyle.Render(ch))
		default:
			b.WriteString(ch)
		}
	}
	return b.String()
}

func inSelection(row, col int, start, end vim.Position) bool {
	if row < start.Row || row > end.Row {
		return false
	}
	if row == start.Row && col < start.Col {
		return false
	}
	if row == end.Row && col > end.Col {
		return false
	}
	return true
}
