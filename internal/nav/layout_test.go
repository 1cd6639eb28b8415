package nav

import (
	"testing"

	"github.com/dbtea/dbtea/internal/models"
)

func TestNearest(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		name string
		from models.PaneKind
		dir  models.Direction
		want models.PaneKind
		ok   bool
	}{
		{"connections right", models.PaneConnections, models.DirRight, models.PaneQueryInput, true},
		{"connections down", models.PaneConnections, models.DirDown, models.PaneSchemaExplorer, true},
		{"connections up", models.PaneConnections, models.DirUp, models.PaneConnections, false},
		{"connections left", models.PaneConnections, models.DirLeft, models.PaneConnections, false},
		{"query down", models.PaneQueryInput, models.DirDown, models.PaneResults, true},
		{"query left", models.PaneQueryInput, models.DirLeft, models.PaneConnections, true},
		{"results up", models.PaneResults, models.DirUp, models.PaneQueryInput, true},
		{"results right", models.PaneResults, models.DirRight, models.PaneResults, false},
		{"results left", models.PaneResults, models.DirLeft, models.PaneSchemaExplorer, true},
		{"results down", models.PaneResults, models.DirDown, models.PaneCommandLine, true},
		{"schema right", models.PaneSchemaExplorer, models.DirRight, models.PaneResults, true},
		{"command up", models.PaneCommandLine, models.DirUp, models.PaneResults, true},
		{"command down", models.PaneCommandLine, models.DirDown, models.PaneCommandLine, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Nearest(tt.from, tt.dir)
			if ok != tt.ok {
				t.Fatalf("Nearest(%v, %v) ok = %v, want %v", tt.from, tt.dir, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Nearest(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestNearestUnknownPane(t *testing.T) {
	l := Layout{}
	if _, ok := l.Nearest(models.PaneResults, models.DirLeft); ok {
		t.Error("empty layout produced a neighbor")
	}
}
