package main

import "math"

// Rect is the board's rendered bounding box in screen-cell coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Position is a board-relative coordinate, normalized to [0,1] on both axes.
// X grows toward higher precision, Y toward higher rigor.
type Position struct {
	X float64
	Y float64
}

type clampPolicy int

const (
	// clampMargin keeps the card's whole footprint on the board: the center
	// is clamped to [margin, 1-margin] per axis.
	clampMargin clampPolicy = iota
	// clampEdge lets the card's center reach the exact board edge.
	clampEdge
)

// normalize converts a client-space point into a normalized board position.
// A rect span of zero or less (board not laid out yet) is substituted with 1
// so the result is always finite.
func normalize(rect Rect, cx, cy float64, policy clampPolicy, marginX, marginY float64) Position {
	w := rect.W
	if w <= 0 {
		w = 1
	}
	h := rect.H
	if h <= 0 {
		h = 1
	}
	p := Position{
		X: (cx - rect.X) / w,
		Y: (cy - rect.Y) / h,
	}
	return clampPosition(p, policy, marginX, marginY)
}

// clampPosition forces a position into the bounds the active policy allows.
// Out-of-range input from upstream rounding is clamped, never rejected.
func clampPosition(p Position, policy clampPolicy, marginX, marginY float64) Position {
	loX, hiX := 0.0, 1.0
	loY, hiY := 0.0, 1.0
	if policy == clampMargin {
		loX, hiX = clampedMarginSpan(marginX)
		loY, hiY = clampedMarginSpan(marginY)
	}
	return Position{
		X: clampFloat(p.X, loX, hiX),
		Y: clampFloat(p.Y, loY, hiY),
	}
}

// clampedMarginSpan returns the [lo,hi] interval for one axis. A degenerate
// margin (>= half the span, or not finite) collapses to the midpoint.
func clampedMarginSpan(margin float64) (float64, float64) {
	if math.IsNaN(margin) || margin < 0 {
		margin = 0
	}
	if margin >= 0.5 {
		return 0.5, 0.5
	}
	return margin, 1 - margin
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// distance is the Euclidean distance between two client-space points. Used
// only for the drag movement threshold.
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// contains reports whether a client-space point falls inside the rect.
func (r Rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// cellRect builds a Rect from integer cell coordinates.
func cellRect(x, y, w, h int) Rect {
	return Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}
