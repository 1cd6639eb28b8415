package models

import "time"

// PaneKind identifies a top-level pane of the interface.
type PaneKind int

const (
	PaneConnections PaneKind = iota
	PaneQueryInput
	PaneResults
	PaneSchemaExplorer
	PaneCommandLine
)

// String returns the display name of the pane.
func (p PaneKind) String() string {
	switch p {
	case PaneConnections:
		return "Connections"
	case PaneQueryInput:
		return "Query"
	case PaneResults:
		return "Results"
	case PaneSchemaExplorer:
		return "Schema"
	case PaneCommandLine:
		return "Command"
	default:
		return "Unknown"
	}
}

// BoxKind identifies a focusable box within a pane.
type BoxKind int

const (
	BoxTextInput BoxKind = iota
	BoxDataTable
	BoxTreeView
	BoxListView
	BoxModal
)

func (b BoxKind) String() string {
	switch b {
	case BoxTextInput:
		return "Text"
	case BoxDataTable:
		return "Table"
	case BoxTreeView:
		return "Tree"
	case BoxListView:
		return "List"
	case BoxModal:
		return "Modal"
	default:
		return "Unknown"
	}
}

// EditingMode selects the style of text interaction for a box.
type EditingMode int

const (
	EditingVim EditingMode = iota
	EditingCursor
)

func (m EditingMode) String() string {
	if m == EditingCursor {
		return "cursor"
	}
	return "vim"
}

// VimMode is the sub-state of vim-style editing.
type VimMode int

const (
	VimNormal VimMode = iota
	VimInsert
	VimVisual
	VimCommand
)

func (m VimMode) String() string {
	switch m {
	case VimInsert:
		return "INSERT"
	case VimVisual:
		return "VISUAL"
	case VimCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Direction is a navigation direction for cursor and focus movement.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// PaneModifier is the modifier key used to compose pane-focus chords.
type PaneModifier int

const (
	PaneModShift PaneModifier = iota
	PaneModCtrl
	PaneModAlt
)

func (m PaneModifier) String() string {
	switch m {
	case PaneModCtrl:
		return "Ctrl"
	case PaneModAlt:
		return "Alt"
	default:
		return "Shift"
	}
}

// CellRef identifies a single cell in a result set.
type CellRef struct {
	Schema string
	Table  string
	Column string
	Row    int
}

// TargetLocation identifies where a foreign-key follow should land.
type TargetLocation struct {
	Pane   PaneKind
	Schema string
	Table  string
	Row    int
}

// QueryResult holds the outcome of one query execution.
type QueryResult struct {
	Columns      []string
	Rows         [][]string
	RowsAffected int64
	Duration     time.Duration
	Err          error
}
