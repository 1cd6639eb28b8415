package keymap

import "fmt"

// Action is the closed set of abstract actions the resolver produces and
// every handler consumes. Handlers never inspect raw keys.
type Action int

const (
	ActionNone Action = iota

	// Pane focus
	FocusConnections
	FocusQueryInput
	FocusResults
	FocusSchemaExplorer
	FocusCommandLine
	NextPane
	PrevPane
	PaneLeft
	PaneRight
	PaneUp
	PaneDown

	// Box focus
	FocusTextInput
	FocusDataTable
	FocusTreeView
	FocusListView
	NextBox
	PrevBox

	// Cursor movement within the active box
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveLineStart
	MoveLineEnd
	MoveWordForward
	MoveWordBackward

	// Mode entry
	EnterInsert
	EnterAppend
	EnterVisual
	EnterCommand
	EnterNormal
	OpenLineBelow
	OpenLineAbove
	ToggleViewEdit

	// Text editing
	DeleteCharBefore
	DeleteChar
	DeleteLine
	ReplaceChar
	Undo

	// Clipboard
	Copy
	CopyRow
	YankLine
	Paste
	Cut

	// Pagination and result actions
	FirstPage
	LastPage
	NextPage
	PrevPage
	Sort
	FollowForeignKey

	// Application-level
	FocusSearch
	Confirm
	Cancel
	Quit
)

var actionNames = map[Action]string{
	FocusConnections:    "focus-connections",
	FocusQueryInput:     "focus-query",
	FocusResults:        "focus-results",
	FocusSchemaExplorer: "focus-schema",
	FocusCommandLine:    "focus-command",
	NextPane:            "next-pane",
	PrevPane:            "prev-pane",
	PaneLeft:            "pane-left",
	PaneRight:           "pane-right",
	PaneUp:              "pane-up",
	PaneDown:            "pane-down",
	FocusTextInput:      "focus-text-input",
	FocusDataTable:      "focus-data-table",
	FocusTreeView:       "focus-tree-view",
	FocusListView:       "focus-list-view",
	NextBox:             "next-box",
	PrevBox:             "prev-box",
	MoveLeft:            "move-left",
	MoveRight:           "move-right",
	MoveUp:              "move-up",
	MoveDown:            "move-down",
	MoveLineStart:       "move-line-start",
	MoveLineEnd:         "move-line-end",
	MoveWordForward:     "move-word-forward",
	MoveWordBackward:    "move-word-backward",
	EnterInsert:         "enter-insert",
	EnterAppend:         "enter-append",
	EnterVisual:         "enter-visual",
	EnterCommand:        "enter-command",
	EnterNormal:         "enter-normal",
	OpenLineBelow:       "open-line-below",
	OpenLineAbove:       "open-line-above",
	ToggleViewEdit:      "toggle-view-edit",
	DeleteCharBefore:    "delete-char-before",
	DeleteChar:          "delete-char",
	DeleteLine:          "delete-line",
	ReplaceChar:         "replace-char",
	Undo:                "undo",
	Copy:                "copy",
	CopyRow:             "copy-row",
	YankLine:            "yank-line",
	Paste:               "paste",
	Cut:                 "cut",
	FirstPage:           "first-page",
	LastPage:            "last-page",
	NextPage:            "next-page",
	PrevPage:            "prev-page",
	Sort:                "sort",
	FollowForeignKey:    "follow-foreign-key",
	FocusSearch:         "focus-search",
	Confirm:             "confirm",
	Cancel:              "cancel",
	Quit:                "quit",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = a
	}
	return m
}()

// String returns the configuration name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction resolves a configuration name to an action.
func ParseAction(name string) (Action, error) {
	if a, ok := actionsByName[name]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// IsMotion reports whether the action is a repeatable cursor motion.
// Motions are the only actions a numeric prefix replays.
func (a Action) IsMotion() bool {
	switch a {
	case MoveLeft, MoveRight, MoveUp, MoveDown, MoveWordForward, MoveWordBackward:
		return true
	}
	return false
}

// IsEdit reports whether the action mutates box content and must therefore
// be routed through the Box Manager.
func (a Action) IsEdit() bool {
	switch a {
	case EnterInsert, EnterAppend, EnterVisual, EnterCommand, EnterNormal,
		OpenLineBelow, OpenLineAbove, ToggleViewEdit,
		DeleteCharBefore, DeleteChar, DeleteLine, ReplaceChar, Undo,
		Copy, CopyRow, YankLine, Paste, Cut:
		return true
	}
	return false
}
