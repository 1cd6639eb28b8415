package nav

import (
	"github.com/google/uuid"

	"github.com/dbtea/dbtea/internal/models"
)

// EffectKind tags the closed set of instructions the core hands to the
// surrounding application. Anything with real latency (queries, foreign
// key lookups) is described by an effect and performed outside the core.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectFocusChanged
	EffectBufferChanged
	EffectModeChanged
	EffectRequestQuery
	EffectRequestForeignKeyFollow
	EffectRequestPageChange
	EffectRequestSort
	EffectRequestQuit
	EffectRequestConfirm
	EffectRequestSearch
	EffectShowError
	EffectQueryStarted
	EffectLookupStarted
)

// PageDirection selects the target page of a page-change request.
type PageDirection int

const (
	PageFirst PageDirection = iota
	PageLast
	PageNext
	PagePrev
)

// Effect is the core's only output. Kind selects which payload fields
// are meaningful; unused fields are zero.
type Effect struct {
	Kind EffectKind

	// RequestID identifies an asynchronous request so that stale
	// completions can be discarded after supersession.
	RequestID uuid.UUID

	Query   string
	Command string
	Cell    models.CellRef
	Page    PageDirection
	Column  int
	Err     error
}

// None is the explicit no-op effect.
func None() Effect {
	return Effect{Kind: EffectNone}
}

// FocusChanged signals that the focused pane or box moved.
func FocusChanged() Effect {
	return Effect{Kind: EffectFocusChanged}
}

// BufferChanged signals that box content was mutated.
func BufferChanged() Effect {
	return Effect{Kind: EffectBufferChanged}
}

// ModeChanged signals an editing-mode or vim sub-mode transition.
func ModeChanged() Effect {
	return Effect{Kind: EffectModeChanged}
}

// RequestQuery asks the application to execute a query. The ID is
// recorded by the core so a later completion can be matched or dropped.
func RequestQuery(id uuid.UUID, query string) Effect {
	return Effect{Kind: EffectRequestQuery, RequestID: id, Query: query}
}

// RequestForeignKeyFollow asks the application to resolve the cell's
// referential link and report back a target location.
func RequestForeignKeyFollow(id uuid.UUID, cell models.CellRef) Effect {
	return Effect{Kind: EffectRequestForeignKeyFollow, RequestID: id, Cell: cell}
}

// RequestPageChange asks the application to load another result page.
func RequestPageChange(dir PageDirection) Effect {
	return Effect{Kind: EffectRequestPageChange, Page: dir}
}

// RequestSort asks the application to re-sort results by column index.
func RequestSort(column int) Effect {
	return Effect{Kind: EffectRequestSort, Column: column}
}

// RequestQuit asks the application to terminate.
func RequestQuit() Effect {
	return Effect{Kind: EffectRequestQuit}
}

// RequestConfirm forwards a confirm the core cannot satisfy locally,
// carrying the command line contents when one was entered.
func RequestConfirm(command string) Effect {
	return Effect{Kind: EffectRequestConfirm, Command: command}
}

// RequestSearch asks the application to open the search overlay.
func RequestSearch() Effect {
	return Effect{Kind: EffectRequestSearch}
}

// ShowError routes an external failure to the UI for display.
func ShowError(err error) Effect {
	return Effect{Kind: EffectShowError, Err: err}
}

// QueryStarted acknowledges that query execution began.
func QueryStarted(id uuid.UUID) Effect {
	return Effect{Kind: EffectQueryStarted, RequestID: id}
}

// LookupStarted acknowledges that a foreign key lookup began.
func LookupStarted(id uuid.UUID) Effect {
	return Effect{Kind: EffectLookupStarted, RequestID: id}
}
