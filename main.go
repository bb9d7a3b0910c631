package main

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func main() {
	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(
		initialModel(loadConfig()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(cfg *Config) model {
	ta := textarea.New()
	ta.Placeholder = "Comment for the student..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false

	ti := textinput.New()
	ti.Placeholder = "teacher@example.org (optional)"
	ti.CharLimit = 120

	return model{
		cfg:   cfg,
		board: NewBoard(seedCards()),
		drag: dragMachine{
			style:     cfg.DropStyle,
			policy:    cfg.ClampPolicy,
			threshold: cfg.DragThreshold,
		},
		overlay:   newOverlayState(cfg.OverlayStyle),
		panelOpen: cfg.StartPanel,
		comment:   ta,
		email:     ti,
		mdCache:   map[int]string{},
	}
}

func (m model) Init() tea.Cmd {
	// First measurement waits for the initial layout to settle.
	return tea.Batch(settleCmd(0, initSettleDelay), mathCmd(0))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case rectSettleMsg:
		if msg.seq != m.rectSeq {
			return m, nil
		}
		m.measureCount++
		if r, ok := m.measureBoardRect(); ok {
			m.boardRect = &r
		}
		return m, nil

	case frameMsg:
		if m.overlay.step(time.Time(msg)) {
			return m, frameCmd()
		}
		return m, nil

	case overlayDoneMsg:
		// No-op unless the overlay is still collapsing the same card.
		m.overlay.finalize(msg.cardID, msg.seq)
		return m, nil

	case mathRenderMsg:
		return m.handleMathRender(msg)

	case statusFadeMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.errorMsg = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.compact = msg.Width < m.cfg.CollapseWidth && msg.Width > 0
	m.sizeEditors()
	// Debounced re-measure: a resize burst bumps the sequence each time, so
	// only the last settle timer does the work.
	m.rectSeq++
	return m, settleCmd(m.rectSeq, resizeSettleDelay)
}

func (m model) handleMathRender(msg mathRenderMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.mathSeq {
		return m, nil
	}
	c := m.board.Selected()
	if id, ok := m.overlay.current(); ok {
		c = m.board.Card(id)
	}
	if c == nil {
		return m, nil
	}
	// Best effort: a failed render falls back to raw text inside
	// renderMarkdown, so there is nothing to surface here.
	w := m.overlayBodyWidth()
	m.mdCache[c.ID] = renderMarkdown(cardBody(c), w)
	m.mdWidth = w
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := pointerFromMouse(msg)
	if !ok {
		return m, nil
	}
	switch ev.Kind {
	case pointerPress:
		return m.handlePress(ev, msg)
	case pointerMove:
		return m.handleMove(ev)
	case pointerRelease:
		return m.handleRelease(ev)
	case pointerCancel:
		m.cancelDrag()
	}
	return m, nil
}

// cancelDrag abandons the session and rewinds any live position writes.
func (m *model) cancelDrag() {
	s := m.drag.cancel()
	if s == nil {
		return
	}
	m.board.Restore(s.cardID, s.startPos)
}

func (m model) handlePress(ev pointerEvent, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// A fully expanded overlay owns the pointer: clicks route to its
	// controls, and anything on the scrim closes it.
	if m.overlay.interactive() {
		switch {
		case zone.Get("overlay-close").InBounds(msg):
			return m, m.closeOverlay()
		case zone.Get("overlay-comment").InBounds(msg):
			return m, m.setFocus(focusComment)
		case zone.Get("overlay-email").InBounds(msg):
			return m, m.setFocus(focusEmail)
		case zone.Get("overlay-box").InBounds(msg):
			return m, nil
		default:
			return m, m.closeOverlay()
		}
	}
	if m.overlay.animating() {
		return m, nil
	}

	// Panel entries: placed and unplaced cards alike can be picked up.
	for _, c := range m.board.Cards() {
		if zone.Get(panelZone(c.ID)).InBounds(msg) {
			return m, m.startDrag(c.ID, ev, 0, 0)
		}
	}

	// Board minis are drawn in creation order, so the topmost hit is the
	// last one in the slice.
	if m.boardRect != nil {
		cards := m.board.Cards()
		for i := len(cards) - 1; i >= 0; i-- {
			c := &cards[i]
			if !c.placed() {
				continue
			}
			r := cardMiniRect(c, *m.boardRect)
			if r.contains(ev.X, ev.Y) {
				cx := r.X + r.W/2
				cy := r.Y + r.H/2
				return m, m.startDrag(c.ID, ev, ev.X-cx, ev.Y-cy)
			}
		}
	}
	return m, nil
}

func (m *model) startDrag(cardID int, ev pointerEvent, grabDX, grabDY float64) tea.Cmd {
	c := m.board.Card(cardID)
	if c == nil {
		return nil
	}
	// Refresh geometry before the session uses it.
	m.measureCount++
	if r, ok := m.measureBoardRect(); ok {
		m.boardRect = &r
	}
	var cmds []tea.Cmd
	// An open overlay drops back to its miniature while a drag is live.
	if m.overlay.mounted() {
		cmds = append(cmds, m.closeOverlay())
	}
	m.board.Select(cardID)
	m.drag.start(cardID, ev.X, ev.Y, c.Pos, grabDX, grabDY)
	cmds = append(cmds, m.scheduleMath())
	return tea.Batch(cmds...)
}

func (m model) handleMove(ev pointerEvent) (tea.Model, tea.Cmd) {
	if !m.drag.dragging() {
		return m, nil
	}
	mx, my := m.clampMargins()
	pos, ok := m.drag.move(ev, m.boardRect, mx, my)
	if !ok {
		return m, nil
	}
	// Live feedback: write the candidate position straight through. A card
	// deleted mid-drag makes this a silent no-op.
	if id, active := m.drag.draggingCard(); active {
		m.board.Place(id, pos)
	}
	return m, nil
}

func (m model) handleRelease(ev pointerEvent) (tea.Model, tea.Cmd) {
	if !m.drag.dragging() {
		return m, nil
	}
	mx, my := m.clampMargins()
	out := m.drag.release(ev, m.boardRect, mx, my)
	if out.Clicked {
		if m.drag.consumeSuppress() {
			return m, nil
		}
		return m, m.openOverlay(out.CardID)
	}
	if out.Placed {
		wasPlaced, ok := m.board.Place(out.CardID, out.Pos)
		if !ok {
			return m, nil
		}
		if m.drag.style == dropAbsolute {
			m.board.AdvanceAfterPlacement(out.CardID, wasPlaced)
		}
		return m, m.scheduleMath()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}
	switch m.focus {
	case focusComment:
		return m.handleCommentKey(msg)
	case focusEmail:
		return m.handleEmailKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a", "A", "enter":
		// The shortcut opens the selected card. It only reaches here when
		// focus is not inside an editable field.
		return m, m.openOverlay(m.board.SelectedID())
	case "esc":
		if m.drag.dragging() {
			m.cancelDrag()
			return m, nil
		}
		if m.overlay.mounted() {
			return m, m.closeOverlay()
		}
		return m, nil
	case "tab", "j", "down":
		m.board.SelectStep(1)
		return m, m.scheduleMath()
	case "shift+tab", "k", "up":
		m.board.SelectStep(-1)
		return m, m.scheduleMath()
	case "p":
		m.panelOpen = !m.panelOpen
		m.rectSeq++
		return m, tea.Batch(settleCmd(m.rectSeq, resizeSettleDelay), m.scheduleMath())
	case "c":
		if m.overlay.interactive() {
			return m, m.setFocus(focusComment)
		}
	case "e":
		if m.overlay.interactive() {
			return m, m.setFocus(focusEmail)
		}
	case "S":
		return m, m.exportBoardPNG()
	case "T":
		return m, m.exportBoardTXT()
	case "?":
		m.help = true
	}
	return m, nil
}

func (m model) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commitComment()
		return m, m.setFocus(focusBoard)
	case "tab":
		m.commitComment()
		return m, m.setFocus(focusEmail)
	case "ctrl+y":
		return m, m.copyCommentToClipboard()
	case "ctrl+p":
		return m, m.pasteIntoComment()
	}
	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	m.commitComment()
	return m, cmd
}

func (m model) handleEmailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.setFocus(focusBoard)
	case "tab", "shift+tab":
		return m, m.setFocus(focusComment)
	}
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

// commitComment writes the editor buffer through to the focused card; the
// board stays the single owner of comment state.
func (m *model) commitComment() {
	if id, ok := m.overlay.current(); ok {
		m.board.SetComment(id, m.comment.Value())
	}
}

func (m *model) openOverlay(id int) tea.Cmd {
	c := m.board.Card(id)
	if c == nil {
		return nil
	}
	m.board.Select(id)
	if cur, ok := m.overlay.current(); ok && cur == id && m.overlay.interactive() {
		return nil
	}
	m.syncEditors(c)
	needTicks := m.overlay.open(id, time.Now())
	cmds := []tea.Cmd{m.scheduleMath()}
	if needTicks {
		cmds = append(cmds, frameCmd())
	}
	return tea.Batch(cmds...)
}

func (m *model) closeOverlay() tea.Cmd {
	m.commitComment()
	m.focus = focusBoard
	m.comment.Blur()
	m.email.Blur()
	needsTimer, id, seq := m.overlay.requestClose(time.Now())
	cmds := []tea.Cmd{m.scheduleMath()}
	if needsTimer {
		cmds = append(cmds, overlayDoneCmd(id, seq), frameCmd())
	}
	return tea.Batch(cmds...)
}

func (m *model) setFocus(f focusRegion) tea.Cmd {
	m.focus = f
	m.comment.Blur()
	m.email.Blur()
	switch f {
	case focusComment:
		return m.comment.Focus()
	case focusEmail:
		return m.email.Focus()
	}
	return nil
}

func (m *model) scheduleMath() tea.Cmd {
	m.mathSeq++
	return mathCmd(m.mathSeq)
}

func (m *model) setStatus(s string) tea.Cmd {
	m.statusMsg = s
	m.errorMsg = ""
	m.statusSeq++
	return statusFadeCmd(m.statusSeq)
}

func (m *model) setError(s string) tea.Cmd {
	m.errorMsg = s
	m.statusMsg = ""
	m.statusSeq++
	return statusFadeCmd(m.statusSeq)
}

// Layout geometry. The board rect is measured, never incrementally
// maintained; callers tolerate measurement failing while the terminal has
// no usable size yet.

func (m *model) panelVisible() bool {
	return m.panelOpen && !m.compact
}

func (m *model) boardOriginX() int {
	if m.panelVisible() {
		return panelWidth
	}
	return 0
}

func (m *model) measureBoardRect() (Rect, bool) {
	if m.width <= 0 || m.height <= 0 {
		return Rect{}, false
	}
	x := m.boardOriginX()
	w := m.width - x
	h := m.height - 2
	if w < cardCellW || h < cardCellH {
		return Rect{}, false
	}
	return cellRect(x, 1, w, h), true
}

// clampMargins derives the margin-policy bounds from the mini card's
// rendered half-footprint in normalized units.
func (m *model) clampMargins() (float64, float64) {
	if m.cfg.ClampPolicy != clampMargin || m.boardRect == nil {
		return 0, 0
	}
	w := m.boardRect.W
	if w <= 0 {
		w = 1
	}
	h := m.boardRect.H
	if h <= 0 {
		h = 1
	}
	return (cardCellW / 2.0) / w, (cardCellH / 2.0) / h
}

func (m *model) syncEditors(c *Card) {
	m.comment.SetValue(c.Comment)
	m.sizeEditors()
}

func (m *model) sizeEditors() {
	w := m.overlayBodyWidth()
	if w < 20 {
		w = 20
	}
	m.comment.SetWidth(w)
	m.comment.SetHeight(3)
	m.email.Width = w - 2
}
