package main

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	code := m.Run()
	zone.Close()
	os.Exit(code)
}

func drive(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		mm, ok := next.(model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = mm
	}
	return m
}

func sizedModel(t *testing.T, width, height int) model {
	t.Helper()
	m := initialModel(defaultConfig())
	m = drive(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return drive(t, m, rectSettleMsg{seq: m.rectSeq})
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x, Y: y}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionMotion, X: x, Y: y}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: x, Y: y}
}

func TestResizeBurstMeasuresOnce(t *testing.T) {
	m := initialModel(defaultConfig())
	m = drive(t, m,
		tea.WindowSizeMsg{Width: 120, Height: 40},
		tea.WindowSizeMsg{Width: 118, Height: 40},
		tea.WindowSizeMsg{Width: 110, Height: 40},
	)
	if m.rectSeq != 3 {
		t.Fatalf("three resizes must bump the sequence three times, got %d", m.rectSeq)
	}

	// Settle timers from the superseded resizes fire as no-ops.
	m = drive(t, m, rectSettleMsg{seq: 1}, rectSettleMsg{seq: 2})
	if m.measureCount != 0 || m.boardRect != nil {
		t.Fatalf("stale settle timers must not measure: count=%d rect=%v", m.measureCount, m.boardRect)
	}

	m = drive(t, m, rectSettleMsg{seq: 3})
	if m.measureCount != 1 {
		t.Fatalf("expected exactly one measurement, got %d", m.measureCount)
	}
	if m.boardRect == nil {
		t.Fatal("measurement must produce a board rect")
	}
}

func TestCompactModeHidesPanel(t *testing.T) {
	m := sizedModel(t, 120, 40)
	if m.compact || !m.panelVisible() {
		t.Fatalf("wide terminal: expected visible panel, compact=%v", m.compact)
	}
	if m.boardRect.X != panelWidth {
		t.Fatalf("board must start after the panel, got x=%v", m.boardRect.X)
	}

	m = drive(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	m = drive(t, m, rectSettleMsg{seq: m.rectSeq})
	if !m.compact || m.panelVisible() {
		t.Fatalf("narrow terminal: expected collapsed panel, compact=%v", m.compact)
	}
	if m.boardRect == nil || m.boardRect.X != 0 {
		t.Fatalf("board must reclaim the panel columns, got %v", m.boardRect)
	}
}

func TestClickOnPlacedCardOpensOverlay(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.board.Place(1, Position{X: 0.5, Y: 0.5})
	r := cardMiniRect(m.board.Card(1), *m.boardRect)
	cx, cy := int(r.X+r.W/2), int(r.Y+r.H/2)

	m = drive(t, m, press(cx, cy), release(cx, cy))
	if !m.overlay.mounted() {
		t.Fatal("click on a placed card must open the overlay")
	}
	if id, _ := m.overlay.current(); id != 1 {
		t.Fatalf("expected card 1 in the overlay, got %d", id)
	}
	if m.overlay.interactive() {
		t.Fatal("animated overlay must not be interactive before the zoom finishes")
	}

	m = drive(t, m, frameMsg(time.Now().Add(time.Second)))
	if !m.overlay.interactive() {
		t.Fatal("overlay must be interactive once the zoom settles")
	}
}

func TestDragMovesCardWithoutOpening(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.board.Place(1, Position{X: 0.5, Y: 0.5})
	r := cardMiniRect(m.board.Card(1), *m.boardRect)
	cx, cy := int(r.X+r.W/2), int(r.Y+r.H/2)
	before := *m.board.Card(1).Pos

	m = drive(t, m, press(cx, cy), motion(cx+20, cy+8), release(cx+20, cy+8))
	if m.overlay.mounted() {
		t.Fatal("a drag must not open the overlay")
	}
	after := m.board.Card(1).Pos
	if after == nil || (after.X == before.X && after.Y == before.Y) {
		t.Fatalf("drag must move the card, got %+v", after)
	}
	if after.X <= before.X || after.Y <= before.Y {
		t.Fatalf("card must follow the pointer down-right, before=%+v after=%+v", before, after)
	}
}

func TestEscapeCancelsDragAndRestoresPosition(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.board.Place(1, Position{X: 0.5, Y: 0.5})
	r := cardMiniRect(m.board.Card(1), *m.boardRect)
	cx, cy := int(r.X+r.W/2), int(r.Y+r.H/2)

	// Live updates have moved the card before the cancel.
	m = drive(t, m, press(cx, cy), motion(cx+25, cy+10))
	if p := m.board.Card(1).Pos; p == nil || p.X == 0.5 {
		t.Fatalf("expected a live update before cancel, got %+v", p)
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.drag.dragging() {
		t.Fatal("escape must end the drag session")
	}
	p := m.board.Card(1).Pos
	if p == nil || p.X != 0.5 || p.Y != 0.5 {
		t.Fatalf("cancel must restore the pre-drag position, got %+v", p)
	}
}

func TestPressOutsideAnyCardDoesNothing(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m = drive(t, m, press(110, 38), release(110, 38))
	if m.overlay.mounted() || m.drag.dragging() {
		t.Fatal("empty board space must ignore clicks")
	}
}

func TestPressIgnoredWhileOverlayAnimates(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.board.Place(1, Position{X: 0.3, Y: 0.3})
	m.board.Place(2, Position{X: 0.8, Y: 0.8})
	r1 := cardMiniRect(m.board.Card(1), *m.boardRect)
	m = drive(t, m, press(int(r1.X+2), int(r1.Y+1)), release(int(r1.X+2), int(r1.Y+1)))
	if !m.overlay.animating() {
		t.Fatal("expected the overlay mid-zoom")
	}

	r2 := cardMiniRect(m.board.Card(2), *m.boardRect)
	m = drive(t, m, press(int(r2.X+2), int(r2.Y+1)))
	if m.drag.dragging() {
		t.Fatal("presses must be ignored while the overlay animates")
	}
}

func TestEscapeClosesOverlayAndFinalizeClears(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.board.Place(1, Position{X: 0.5, Y: 0.5})
	r := cardMiniRect(m.board.Card(1), *m.boardRect)
	cx, cy := int(r.X+r.W/2), int(r.Y+r.H/2)
	m = drive(t, m, press(cx, cy), release(cx, cy), frameMsg(time.Now().Add(time.Second)))

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.overlay.mounted() || m.overlay.interactive() {
		t.Fatal("escape must start the collapse, not teleport to closed")
	}

	id, _ := m.overlay.current()
	m = drive(t, m, overlayDoneMsg{cardID: id, seq: m.overlay.seq})
	if m.overlay.mounted() {
		t.Fatal("finalize after the collapse must unmount the overlay")
	}
}

func TestStaleMathRenderIsDropped(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.mathSeq = 5
	m = drive(t, m, mathRenderMsg{seq: 3})
	if len(m.mdCache) != 0 {
		t.Fatal("stale typeset request must not render")
	}
	m = drive(t, m, mathRenderMsg{seq: 5})
	if len(m.mdCache) != 1 {
		t.Fatalf("current typeset request must render the selected card, cache=%d", len(m.mdCache))
	}
}

func TestStatusFadeSeqGuard(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m.setStatus("first")
	m.setStatus("second")
	m = drive(t, m, statusFadeMsg{seq: 1})
	if m.statusMsg != "second" {
		t.Fatalf("stale fade must not clear a newer status, got %q", m.statusMsg)
	}
	m = drive(t, m, statusFadeMsg{seq: 2})
	if m.statusMsg != "" {
		t.Fatalf("matching fade must clear the status, got %q", m.statusMsg)
	}
}
