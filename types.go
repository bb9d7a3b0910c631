package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	width  int
	height int

	cfg   *Config
	board *Board

	// boardRect is the cached measurement of the board's rendered bounding
	// box. Nil until the first measurement lands; geometry-dependent
	// operations no-op while it is nil.
	boardRect *Rect
	// rectSeq invalidates superseded resize-settle timers so a resize burst
	// produces exactly one re-measure.
	rectSeq      int
	measureCount int

	drag    dragMachine
	overlay overlayState

	panelOpen bool
	compact   bool

	focus   focusRegion
	comment textarea.Model
	email   textinput.Model

	// mdCache holds typeset card bodies, rebuilt by the debounced math
	// re-render pass. Missing entries fall back to raw text.
	mdCache map[int]string
	mdWidth int
	mathSeq int

	help      bool
	statusMsg string
	errorMsg  string
	statusSeq int
}

// rectSettleMsg fires after a layout settle delay to trigger one board-rect
// measurement. Stale sequences are dropped.
type rectSettleMsg struct {
	seq int
}

// frameMsg drives the overlay zoom timeline while it is mid-transition.
type frameMsg time.Time

// overlayDoneMsg finalizes a close transition. Carries the card identity and
// sequence captured when the close started, so an interrupted close fires as
// a no-op.
type overlayDoneMsg struct {
	cardID int
	seq    int
}

// mathRenderMsg is the debounced request to re-typeset visible formula text.
type mathRenderMsg struct {
	seq int
}

// statusFadeMsg clears a transient status notice.
type statusFadeMsg struct {
	seq int
}

func settleCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return rectSettleMsg{seq: seq}
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func overlayDoneCmd(cardID, seq int) tea.Cmd {
	return tea.Tick(overlayZoomDuration, func(time.Time) tea.Msg {
		return overlayDoneMsg{cardID: cardID, seq: seq}
	})
}

func mathCmd(seq int) tea.Cmd {
	return tea.Tick(mathRenderDebounce, func(time.Time) tea.Msg {
		return mathRenderMsg{seq: seq}
	})
}

func statusFadeCmd(seq int) tea.Cmd {
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{seq: seq}
	})
}
