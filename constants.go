package main

import "time"

// focusRegion identifies where keyboard input routes. The overlay's open
// shortcut is gated off while an editable field has focus.
type focusRegion int

const (
	focusBoard focusRegion = iota
	focusComment
	focusEmail
)

const (
	// Movement thresholds (screen cells) separating a click from a drag.
	// The absolute drop style resolves at release and tolerates less travel
	// than the continuous tracking style.
	defaultAbsoluteThreshold   = 4.0
	defaultContinuousThreshold = 10.0

	// Overlay zoom transition: collapsed scale and eased duration.
	overlayCollapsedScale = 0.18
	overlayZoomDuration   = 220 * time.Millisecond
	frameInterval         = 16 * time.Millisecond

	// Board rect measurement delays: first layout settle after startup, and
	// the resize debounce that waits for reflow to finish.
	initSettleDelay    = 60 * time.Millisecond
	resizeSettleDelay  = 24 * time.Millisecond
	mathRenderDebounce = 20 * time.Millisecond

	// Below this many columns the side panel collapses (the terminal analog
	// of the 980px responsive breakpoint).
	defaultCollapseWidth = 100

	// Rendered footprint of a mini card on the board, in cells.
	cardCellW = 18
	cardCellH = 3

	panelWidth = 32

	statusFadeDelay = 2 * time.Second
)
