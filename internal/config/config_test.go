package config

import (
	"testing"

	"github.com/dbtea/dbtea/internal/keymap"
	"github.com/dbtea/dbtea/internal/models"
)

func TestPaneModifierParsing(t *testing.T) {
	tests := []struct {
		input   string
		want    models.PaneModifier
		wantErr bool
	}{
		{"", models.PaneModShift, false},
		{"shift", models.PaneModShift, false},
		{"ctrl", models.PaneModCtrl, false},
		{"alt", models.PaneModAlt, false},
		{"hyper", models.PaneModShift, true},
	}
	for _, tt := range tests {
		cfg := &Config{Navigation: NavigationConfig{PaneModifier: tt.input}}
		got, err := cfg.PaneModifier()
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("%q: modifier = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEditingModeParsing(t *testing.T) {
	cfg := &Config{}
	if mode, err := cfg.EditingMode(); err != nil || mode != models.EditingVim {
		t.Errorf("default mode = %v, err = %v", mode, err)
	}
	cfg.Navigation.DefaultEditingMode = "cursor"
	if mode, err := cfg.EditingMode(); err != nil || mode != models.EditingCursor {
		t.Errorf("cursor mode = %v, err = %v", mode, err)
	}
	cfg.Navigation.DefaultEditingMode = "emacs"
	if _, err := cfg.EditingMode(); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestBuildKeymapOverridesDefaults(t *testing.T) {
	cfg := &Config{
		Keymap: map[string]map[string]string{
			"global":     {"Ctrl+x": "quit"},
			"vim-normal": {"s": "enter-insert"},
		},
	}
	tbl, collisions, err := cfg.BuildKeymap()
	if err != nil {
		t.Fatalf("BuildKeymap: %v", err)
	}
	if len(collisions) != 0 {
		t.Errorf("collisions = %v", collisions)
	}
	if a, _ := tbl.Lookup(keymap.ScopeGlobal, "Ctrl+x"); a != keymap.Quit {
		t.Errorf("Ctrl+x = %v, want Quit", a)
	}
	// The user binding replaced the default sort action.
	if a, _ := tbl.Lookup(keymap.ScopeVimNormal, "s"); a != keymap.EnterInsert {
		t.Errorf("s = %v, want EnterInsert", a)
	}
	// Composed pane chords are present.
	if a, _ := tbl.Lookup(keymap.ScopeGlobal, "Shift+l"); a != keymap.PaneRight {
		t.Errorf("Shift+l = %v, want PaneRight", a)
	}
}

func TestBuildKeymapReportsCollisions(t *testing.T) {
	cfg := &Config{
		Navigation: NavigationConfig{PaneModifier: "ctrl"},
	}
	// The default Ctrl+c quit binding collides with the composed
	// Ctrl+c pane-focus chord.
	_, collisions, err := cfg.BuildKeymap()
	if err != nil {
		t.Fatalf("BuildKeymap: %v", err)
	}
	if len(collisions) != 1 || collisions[0].Chord != "Ctrl+c" {
		t.Errorf("collisions = %v, want exactly Ctrl+c", collisions)
	}
}

func TestBuildKeymapRejectsUnknownNames(t *testing.T) {
	cfg := &Config{Keymap: map[string]map[string]string{"global": {"z": "warp"}}}
	if _, _, err := cfg.BuildKeymap(); err == nil {
		t.Error("unknown action accepted")
	}
	cfg = &Config{Keymap: map[string]map[string]string{"galactic": {"z": "quit"}}}
	if _, _, err := cfg.BuildKeymap(); err == nil {
		t.Error("unknown scope accepted")
	}
}
