package main

import "time"

// overlayStyle selects between the animated zoom transition and an overlay
// that simply appears and disappears.
type overlayStyle int

const (
	overlayAnimated overlayStyle = iota
	overlayStatic
)

type overlayMode int

const (
	overlayCollapsed overlayMode = iota
	overlayExpanding
	overlayExpanded
	overlayCollapsing
)

// timeline is a timed transition of one scalar: a start value, a target, a
// start time, a duration and an eased interpolation sampled per frame tick.
type timeline struct {
	from  float64
	to    float64
	start time.Time
	dur   time.Duration
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func (tl timeline) valueAt(now time.Time) float64 {
	if tl.dur <= 0 {
		return tl.to
	}
	t := float64(now.Sub(tl.start)) / float64(tl.dur)
	if t <= 0 {
		return tl.from
	}
	if t >= 1 {
		return tl.to
	}
	return tl.from + (tl.to-tl.from)*easeOutCubic(t)
}

func (tl timeline) doneAt(now time.Time) bool {
	return now.Sub(tl.start) >= tl.dur
}

// overlayState tracks which card (if any) is shown magnified and drives the
// scale animation between the collapsed and expanded visual states. While
// collapsing, the card identity is retained so the shrinking overlay still
// shows the right content; a delayed finalize signal clears it.
type overlayState struct {
	style  overlayStyle
	mode   overlayMode
	cardID int
	// seq invalidates finalize timers from superseded close transitions.
	seq int
	tl  timeline
}

func newOverlayState(style overlayStyle) overlayState {
	return overlayState{style: style, cardID: -1}
}

// open focuses cardID and starts the expand transition. Valid from any mode;
// opening over an in-flight close re-targets the timeline from the current
// scale, and bumping seq neutralizes the pending finalize timer. Returns
// true when frame ticks are needed to drive the animation.
func (o *overlayState) open(id int, now time.Time) bool {
	o.seq++
	from := o.scaleAt(now)
	o.cardID = id
	if o.style == overlayStatic {
		o.mode = overlayExpanded
		o.tl = timeline{from: 1, to: 1, start: now}
		return false
	}
	o.mode = overlayExpanding
	o.tl = timeline{from: from, to: 1, start: now, dur: overlayZoomDuration}
	return true
}

// requestClose starts the collapse transition. A close while already
// collapsing (or with nothing open) is a no-op, which keeps double-triggered
// close requests idempotent. When needsTimer is true the caller must
// schedule finalize(cardID, seq) after overlayZoomDuration.
func (o *overlayState) requestClose(now time.Time) (needsTimer bool, cardID, seq int) {
	switch o.mode {
	case overlayCollapsed, overlayCollapsing:
		return false, o.cardID, o.seq
	}
	o.seq++
	if o.style == overlayStatic {
		o.mode = overlayCollapsed
		o.cardID = -1
		o.tl = timeline{}
		return false, -1, o.seq
	}
	from := o.scaleAt(now)
	o.mode = overlayCollapsing
	o.tl = timeline{from: from, to: overlayCollapsedScale, start: now, dur: overlayZoomDuration}
	return true, o.cardID, o.seq
}

// finalize clears the focused card once a close transition has run its
// course. The state is re-validated: a timer from a close that was
// interrupted by a newer open (different card or stale seq) fires as a
// no-op instead of clobbering the new overlay.
func (o *overlayState) finalize(cardID, seq int) bool {
	if o.mode != overlayCollapsing || o.cardID != cardID || o.seq != seq {
		return false
	}
	o.mode = overlayCollapsed
	o.cardID = -1
	o.tl = timeline{}
	return true
}

// step advances the state on a frame tick and reports whether more ticks are
// needed. Expanding promotes to Expanded when the timeline settles;
// collapsing keeps ticking until the finalize timer lands.
func (o *overlayState) step(now time.Time) bool {
	switch o.mode {
	case overlayExpanding:
		if o.tl.doneAt(now) {
			o.mode = overlayExpanded
			return false
		}
		return true
	case overlayCollapsing:
		return !o.tl.doneAt(now)
	default:
		return false
	}
}

// scaleAt samples the current overlay scale.
func (o *overlayState) scaleAt(now time.Time) float64 {
	switch o.mode {
	case overlayCollapsed:
		return overlayCollapsedScale
	case overlayExpanded:
		return 1
	default:
		return o.tl.valueAt(now)
	}
}

// mounted reports whether the overlay occupies the screen at all.
func (o *overlayState) mounted() bool {
	return o.mode != overlayCollapsed
}

// interactive reports whether the overlay accepts clicks and text input,
// which it does only once fully expanded.
func (o *overlayState) interactive() bool {
	return o.mode == overlayExpanded
}

// current returns the focused card, valid while mounted (including the
// shrinking phase of a close).
func (o *overlayState) current() (int, bool) {
	if o.cardID < 0 {
		return 0, false
	}
	return o.cardID, true
}

// animating reports whether a timeline is mid-transition.
func (o *overlayState) animating() bool {
	return o.mode == overlayExpanding || o.mode == overlayCollapsing
}
