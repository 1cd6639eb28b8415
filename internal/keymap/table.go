package keymap

import (
	"fmt"
	"sort"

	"github.com/dbtea/dbtea/internal/models"
)

// Scope identifies which sub-table a binding belongs to. Resolution always
// consults the scope matching the current context before falling back to
// the global table.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeVimNormal
	ScopeVimInsert
	ScopeVimVisual
	ScopeVimCommand
	ScopeCursorView
	ScopeCursorEdit
)

var scopeNames = map[string]Scope{
	"global":      ScopeGlobal,
	"vim-normal":  ScopeVimNormal,
	"vim-insert":  ScopeVimInsert,
	"vim-visual":  ScopeVimVisual,
	"vim-command": ScopeVimCommand,
	"cursor-view": ScopeCursorView,
	"cursor-edit": ScopeCursorEdit,
}

// ParseScope resolves a configuration section name to a scope.
func ParseScope(name string) (Scope, error) {
	if s, ok := scopeNames[name]; ok {
		return s, nil
	}
	return ScopeGlobal, fmt.Errorf("unknown keymap scope %q", name)
}

// Context describes the focus state a chord is resolved against.
type Context struct {
	Pane    models.PaneKind
	Box     models.BoxKind
	HasBox  bool
	Editing models.EditingMode
	Vim     models.VimMode

	editFlag bool
}

// Scope returns the most specific sub-table for the context.
func (c Context) Scope() Scope {
	if !c.HasBox {
		return ScopeGlobal
	}
	if c.Editing == models.EditingVim {
		switch c.Vim {
		case models.VimInsert:
			return ScopeVimInsert
		case models.VimVisual:
			return ScopeVimVisual
		case models.VimCommand:
			return ScopeVimCommand
		default:
			return ScopeVimNormal
		}
	}
	if c.InEdit() {
		return ScopeCursorEdit
	}
	return ScopeCursorView
}

// InEdit reports whether a cursor-mode box is in its edit half.
// The zero value means view.
func (c Context) InEdit() bool { return c.editFlag }

// WithEdit returns a copy of the context with the cursor edit flag set.
func (c Context) WithEdit(edit bool) Context {
	c.editFlag = edit
	return c
}

// Table is the immutable-after-load chord-to-action mapping: one global
// map plus mode-scoped sub-tables. Within one scope each chord maps to at
// most one action; the last binding applied wins.
type Table struct {
	scopes       map[Scope]map[string]Action
	paneModifier models.PaneModifier
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		scopes:       make(map[Scope]map[string]Action),
		paneModifier: models.PaneModShift,
	}
}

// PaneModifier returns the modifier used to compose pane-focus chords.
func (t *Table) PaneModifier() models.PaneModifier {
	return t.paneModifier
}

// SetPaneModifier records the configured pane modifier.
func (t *Table) SetPaneModifier(mod models.PaneModifier) {
	t.paneModifier = mod
}

// Bind maps a chord to an action within a scope, replacing any previous
// binding for that chord.
func (t *Table) Bind(scope Scope, chord string, action Action) {
	m, ok := t.scopes[scope]
	if !ok {
		m = make(map[string]Action)
		t.scopes[scope] = m
	}
	m[chord] = action
}

// Lookup returns the action bound to a chord in one scope.
func (t *Table) Lookup(scope Scope, chord string) (Action, bool) {
	a, ok := t.scopes[scope][chord]
	return a, ok
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable()
	out.paneModifier = t.paneModifier
	for scope, m := range t.scopes {
		for chord, action := range m {
			out.Bind(scope, chord, action)
		}
	}
	return out
}

// Len returns the total number of bindings across all scopes.
func (t *Table) Len() int {
	n := 0
	for _, m := range t.scopes {
		n += len(m)
	}
	return n
}

// Merge overlays user bindings onto a base table and returns a new table.
// Neither input is modified; overlay entries win on conflict. Merging the
// same overlay twice yields an identical table.
func Merge(base, overlay *Table) *Table {
	out := base.Clone()
	if overlay == nil {
		return out
	}
	out.paneModifier = overlay.paneModifier
	for scope, m := range overlay.scopes {
		for chord, action := range m {
			out.Bind(scope, chord, action)
		}
	}
	return out
}

// Collision records a composed pane chord that was skipped because the
// chord already carries an explicit binding.
type Collision struct {
	Chord    string
	Existing Action
}

// paneChordKeys are the base keys the pane modifier composes with.
var paneChordKeys = []struct {
	key    string
	action Action
}{
	{"h", PaneLeft},
	{"j", PaneDown},
	{"k", PaneUp},
	{"l", PaneRight},
	{"c", FocusConnections},
	{"q", FocusQueryInput},
	{"r", FocusResults},
	{"s", FocusSchemaExplorer},
}

// ComposePaneChords adds the modifier-composed directional and
// pane-focus chords to the global table at the lowest priority: an
// explicitly configured chord is never overwritten, and each skip is
// reported as a collision for the caller to surface at load time.
func (t *Table) ComposePaneChords() []Collision {
	prefix := t.paneModifier.String() + "+"

	var collisions []Collision
	for _, pc := range paneChordKeys {
		chord := prefix + pc.key
		if existing, ok := t.Lookup(ScopeGlobal, chord); ok {
			if existing != pc.action {
				collisions = append(collisions, Collision{Chord: chord, Existing: existing})
			}
			continue
		}
		t.Bind(ScopeGlobal, chord, pc.action)
	}
	sort.Slice(collisions, func(i, j int) bool { return collisions[i].Chord < collisions[j].Chord })
	return collisions
}

// Resolve maps a key event to an action for the given context. The
// mode-specific sub-table is consulted first, then the global table.
// An uppercase rune additionally matches its "Shift+<lower>" spelling.
// Returns false when the chord is unmapped; that is a no-op, not an error.
func (t *Table) Resolve(ev Event, ctx Context) (Action, bool) {
	chords := []string{ev.Chord()}
	if alt := ev.shiftedChord(); alt != "" {
		chords = append(chords, alt)
	}

	scope := ctx.Scope()
	for _, chord := range chords {
		if scope != ScopeGlobal {
			if a, ok := t.Lookup(scope, chord); ok {
				return a, true
			}
		}
		if a, ok := t.Lookup(ScopeGlobal, chord); ok {
			return a, true
		}
	}
	return ActionNone, false
}
