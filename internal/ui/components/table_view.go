package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbtea/dbtea/internal/ui/theme"
)

// TableView displays result rows with a cell-level cursor and virtual
// scrolling. The cursor position is driven externally.
type TableView struct {
	Columns []string
	Rows    [][]string
	Width   int
	Height  int
	Theme   theme.Theme

	// Cursor position (row and column of the selected cell)
	CursorRow int
	CursorCol int

	// Virtual scrolling state
	TopRow      int
	VisibleRows int

	// Column widths (calculated)
	ColumnWidths []int
}

// NewTableView creates a new table view
func NewTableView(th theme.Theme) *TableView {
	return &TableView{
		Columns:      []string{},
		Rows:         [][]string{},
		ColumnWidths: []int{},
		Theme:        th,
	}
}

// SetData sets the table data and resets the viewport
func (tv *TableView) SetData(columns []string, rows [][]string) {
	tv.Columns = columns
	tv.Rows = rows
	tv.TopRow = 0
	tv.calculateColumnWidths()
}

// SetCursor moves the cell cursor, scrolling the viewport as needed
func (tv *TableView) SetCursor(row, col int) {
	tv.CursorRow = row
	tv.CursorCol = col
	if tv.CursorRow < tv.TopRow {
		tv.TopRow = tv.CursorRow
	}
	if tv.VisibleRows > 0 && tv.CursorRow >= tv.TopRow+tv.VisibleRows {
		tv.TopRow = tv.CursorRow - tv.VisibleRows + 1
	}
}

// calculateColumnWidths calculates optimal column widths
func (tv *TableView) calculateColumnWidths() {
	if len(tv.Columns) == 0 {
		return
	}

	tv.ColumnWidths = make([]int, len(tv.Columns))

	for i, col := range tv.Columns {
		tv.ColumnWidths[i] = len(col)
	}

	for _, row := range tv.Rows {
		for i, cell := range row {
			if i < len(tv.ColumnWidths) && len(cell) > tv.ColumnWidths[i] {
				tv.ColumnWidths[i] = len(cell)
			}
		}
	}

	maxWidth := 50
	for i := range tv.ColumnWidths {
		if tv.ColumnWidths[i] > maxWidth {
			tv.ColumnWidths[i] = maxWidth
		}
		if tv.ColumnWidths[i] < 10 {
			tv.ColumnWidths[i] = 10
		}
	}
}

// View renders the table
func (tv *TableView) View() string {
	if len(tv.Columns) == 0 {
		return lipgloss.NewStyle().
			Foreground(tv.Theme.TreeCollapsed).
			Italic(true).
			Render("No data")
	}

	var b strings.Builder

	b.WriteString(tv.renderHeader())
	b.WriteString("\n")
	b.WriteString(tv.renderSeparator())
	b.WriteString("\n")

	tv.VisibleRows = tv.Height - 3
	if tv.VisibleRows < 1 {
		tv.VisibleRows = 1
	}

	endRow := tv.TopRow + tv.VisibleRows
	if endRow > len(tv.Rows) {
		endRow = len(tv.Rows)
	}

	for i := tv.TopRow; i < endRow; i++ {
		b.WriteString(tv.renderRow(tv.Rows[i], i == tv.CursorRow))
		if i < endRow-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tv.renderStatus())

	return b.String()
}

func (tv *TableView) renderHeader() string {
	var parts []string
	for i, col := range tv.Columns {
		parts = append(parts, tv.pad(col, tv.ColumnWidths[i]))
	}
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tv.Theme.TableHeader)
	return headerStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (tv *TableView) renderSeparator() string {
	var parts []string
	for _, width := range tv.ColumnWidths {
		parts = append(parts, strings.Repeat("─", width))
	}
	return lipgloss.NewStyle().
		Foreground(tv.Theme.Border).
		Render("─" + strings.Join(parts, "─┼─") + "─")
}

func (tv *TableView) renderRow(row []string, selected bool) string {
	cellStyle := lipgloss.NewStyle().
		Background(tv.Theme.Selection).
		Foreground(tv.Theme.Foreground).
		Bold(true)

	var parts []string
	for i, cell := range row {
		if i >= len(tv.ColumnWidths) {
			break
		}
		padded := tv.pad(cell, tv.ColumnWidths[i])
		if selected && i == tv.CursorCol {
			padded = cellStyle.Render(padded)
		}
		parts = append(parts, padded)
	}

	line := " " + strings.Join(parts, " │ ") + " "
	if selected {
		return lipgloss.NewStyle().
			Background(tv.Theme.TableRowSelected).
			Render(line)
	}
	return line
}

func (tv *TableView) renderStatus() string {
	if len(tv.Rows) == 0 {
		return lipgloss.NewStyle().
			Foreground(tv.Theme.TreeCollapsed).
			Italic(true).
			Render(" 0 rows")
	}
	showing := fmt.Sprintf(" row %d of %d", tv.CursorRow+1, len(tv.Rows))
	return lipgloss.NewStyle().
		Foreground(tv.Theme.TreeCollapsed).
		Italic(true).
		Render(showing)
}

func (tv *TableView) pad(s string, width int) string {
	if len(s) > width {
		return s[:width-3] + "..."
	}
	return s + strings.Repeat(" ", width-len(s))
}
