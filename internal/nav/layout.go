package nav

import "github.com/dbtea/dbtea/internal/models"

// Rect is a pane's position in an abstract grid. Coordinates only feed
// directional adjacency; the renderer owns real cell geometry.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) centerX() int { return r.X + r.Width/2 }
func (r Rect) centerY() int { return r.Y + r.Height/2 }

func (r Rect) overlapsX(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width
}

func (r Rect) overlapsY(o Rect) bool {
	return r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Layout maps every pane to its fixed position. Panes are laid out once
// at startup and never move during a session.
type Layout map[models.PaneKind]Rect

// DefaultLayout places connections and the schema explorer in a left
// column, query input above results on the right, and the command line
// along the bottom.
func DefaultLayout() Layout {
	return Layout{
		models.PaneConnections:    {X: 0, Y: 0, Width: 30, Height: 20},
		models.PaneSchemaExplorer: {X: 0, Y: 20, Width: 30, Height: 20},
		models.PaneQueryInput:     {X: 30, Y: 0, Width: 70, Height: 8},
		models.PaneResults:        {X: 30, Y: 8, Width: 70, Height: 32},
		models.PaneCommandLine:    {X: 0, Y: 40, Width: 100, Height: 3},
	}
}

// Nearest returns the geometrically closest pane in the given direction,
// or ok=false when no pane lies that way. Candidates that overlap the
// source on the perpendicular axis are preferred; there is no wrapping.
func (l Layout) Nearest(from models.PaneKind, dir models.Direction) (models.PaneKind, bool) {
	src, found := l[from]
	if !found {
		return from, false
	}

	best := from
	bestDist := -1
	bestOverlap := false
	for pane, r := range l {
		if pane == from || !inDirection(src, r, dir) {
			continue
		}
		overlap := perpendicularOverlap(src, r, dir)
		dist := distance(src, r, dir)
		switch {
		case overlap && !bestOverlap:
			best, bestDist, bestOverlap = pane, dist, true
		case overlap == bestOverlap && (bestDist < 0 || dist < bestDist):
			best, bestDist = pane, dist
		}
	}
	return best, bestDist >= 0
}

// inDirection requires the candidate to lie entirely past the source
// edge, so partially overlapping neighbors never count as being in the
// direction of travel.
func inDirection(from, to Rect, dir models.Direction) bool {
	switch dir {
	case models.DirLeft:
		return to.X+to.Width <= from.X
	case models.DirRight:
		return to.X >= from.X+from.Width
	case models.DirUp:
		return to.Y+to.Height <= from.Y
	case models.DirDown:
		return to.Y >= from.Y+from.Height
	}
	return false
}

func perpendicularOverlap(from, to Rect, dir models.Direction) bool {
	if dir == models.DirLeft || dir == models.DirRight {
		return from.overlapsY(to)
	}
	return from.overlapsX(to)
}

// distance weights the primary axis over the perpendicular one so that
// a pane straight ahead beats a nearer diagonal neighbor.
func distance(from, to Rect, dir models.Direction) int {
	dx := to.centerX() - from.centerX()
	dy := to.centerY() - from.centerY()
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dir == models.DirLeft || dir == models.DirRight {
		return dx + 2*dy
	}
	return dy + 2*dx
}
