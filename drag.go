package main

// dropStyle selects how a drag resolves into a placement.
type dropStyle int

const (
	// dropContinuous writes live position updates while the pointer moves,
	// once the movement threshold has been crossed.
	dropContinuous dropStyle = iota
	// dropAbsolute resolves the position only at release, from the drop
	// point. No live feedback during the drag.
	dropAbsolute
)

// dragSession is the transient record of one in-progress card move. At most
// one session exists at a time; it is discarded on release or cancel.
type dragSession struct {
	cardID  int
	originX float64
	originY float64
	// startPos is the card's position when the drag began, for delta-based
	// dragging. Nil for unplaced cards (and never used in absolute style).
	startPos *Position
	// grabDX/grabDY anchor the drag at the exact grab point instead of
	// snapping the card center to the pointer.
	grabDX float64
	grabDY float64
	moved  bool
	last   *Position
}

// dragMachine owns the Idle/Dragging state and the click-vs-drag
// disambiguation. It is pure interaction logic: the caller supplies board
// geometry and applies the returned positions to the card collection.
type dragMachine struct {
	style        dropStyle
	policy       clampPolicy
	threshold    float64
	session      *dragSession
	suppressOpen bool
}

// dragOutcome is what a finished session yields: either a click (open the
// card) or a committed placement, never both.
type dragOutcome struct {
	CardID  int
	Clicked bool
	Placed  bool
	Pos     Position
}

func (d *dragMachine) dragging() bool {
	return d.session != nil
}

func (d *dragMachine) draggingCard() (int, bool) {
	if d.session == nil {
		return 0, false
	}
	return d.session.cardID, true
}

// start opens a session for cardID at the given pointer origin. startPos is
// the card's current position (nil if unplaced); grabDX/grabDY is the
// pointer's offset from the card's on-screen center.
func (d *dragMachine) start(cardID int, x, y float64, startPos *Position, grabDX, grabDY float64) {
	// A new press is a new gesture; a suppression left over from the last
	// drag only applies to duplicate events from that same gesture.
	d.suppressOpen = false
	s := &dragSession{
		cardID:  cardID,
		originX: x,
		originY: y,
		grabDX:  grabDX,
		grabDY:  grabDY,
	}
	if startPos != nil {
		p := *startPos
		s.startPos = &p
	}
	d.session = s
}

// move processes a pointer-move. The returned position is the live update to
// apply (continuous style only); ok is false when nothing should change:
// no active session, no board geometry, or threshold not yet crossed.
// The moved flag is sticky: once the cumulative displacement from the origin
// exceeds the threshold it stays set even if the pointer returns.
func (d *dragMachine) move(ev pointerEvent, rect *Rect, marginX, marginY float64) (Position, bool) {
	s := d.session
	if s == nil {
		return Position{}, false
	}
	if distance(s.originX, s.originY, ev.X, ev.Y) > d.threshold {
		s.moved = true
	}
	if rect == nil {
		return Position{}, false
	}
	if d.style != dropContinuous || !s.moved {
		return Position{}, false
	}
	p := d.candidate(s, ev, *rect, marginX, marginY)
	s.last = &p
	return p, true
}

// release ends the session. Below the threshold the gesture was a click:
// the card opens and its position is untouched. Above it the last (or drop
// point) position is committed and the next open is suppressed once, for
// platforms that emit a click alongside the drag end.
func (d *dragMachine) release(ev pointerEvent, rect *Rect, marginX, marginY float64) dragOutcome {
	s := d.session
	if s == nil {
		return dragOutcome{}
	}
	d.session = nil
	if distance(s.originX, s.originY, ev.X, ev.Y) > d.threshold {
		s.moved = true
	}
	out := dragOutcome{CardID: s.cardID}
	if !s.moved {
		out.Clicked = true
		return out
	}
	d.suppressOpen = true
	switch d.style {
	case dropAbsolute:
		if rect != nil {
			out.Placed = true
			out.Pos = d.candidate(s, ev, *rect, marginX, marginY)
		}
	case dropContinuous:
		if s.last != nil {
			out.Placed = true
			out.Pos = *s.last
		} else if rect != nil {
			out.Placed = true
			out.Pos = d.candidate(s, ev, *rect, marginX, marginY)
		}
	}
	return out
}

// cancel discards the session without a placement or a click. The returned
// session (nil when idle) carries the pre-drag position so the caller can
// rewind any live updates already written.
func (d *dragMachine) cancel() *dragSession {
	s := d.session
	d.session = nil
	return s
}

// consumeSuppress reports whether the next open should be swallowed, and
// clears the flag. The flag lives for exactly one click.
func (d *dragMachine) consumeSuppress() bool {
	v := d.suppressOpen
	d.suppressOpen = false
	return v
}

// candidate computes the position a pointer location maps to. Placed cards
// in continuous style move by origin-relative delta so the grab point stays
// under the pointer; everything else normalizes the pointer location itself,
// corrected by the grab offset.
func (d *dragMachine) candidate(s *dragSession, ev pointerEvent, rect Rect, marginX, marginY float64) Position {
	if d.style == dropContinuous && s.startPos != nil {
		w := rect.W
		if w <= 0 {
			w = 1
		}
		h := rect.H
		if h <= 0 {
			h = 1
		}
		p := Position{
			X: s.startPos.X + (ev.X-s.originX)/w,
			Y: s.startPos.Y + (ev.Y-s.originY)/h,
		}
		return clampPosition(p, d.policy, marginX, marginY)
	}
	return normalize(rect, ev.X-s.grabDX, ev.Y-s.grabDY, d.policy, marginX, marginY)
}
