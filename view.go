package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var out string
	switch {
	case m.help:
		out = m.renderHelp()
	case m.overlay.interactive():
		out = m.renderOverlayScreen()
	default:
		boardView := m.renderBoard()
		main := boardView
		if m.panelVisible() {
			main = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(), boardView)
		}
		out = lipgloss.JoinVertical(lipgloss.Left, m.renderTitle(), main, m.renderStatus())
	}
	return zone.Scan(out)
}

func (m model) renderTitle() string {
	left := titleStyle.Render(" proofboard ") +
		mutedStyle.Render("rate each solution by precision and rigor")
	right := mutedStyle.Render(fmt.Sprintf("%d/%d placed ", m.board.PlacedCount(), len(m.board.Cards())))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m model) renderStatus() string {
	var s string
	switch {
	case m.errorMsg != "":
		s = errorStyle.Render(" " + m.errorMsg)
	case m.statusMsg != "":
		s = statusStyle.Render(" " + m.statusMsg)
	default:
		s = mutedStyle.Render(" drag: place  click: open  tab: next  p: panel  S: png  T: txt  ?: help  q: quit")
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}

// renderBoard draws the precision/rigor plane as a rune grid. Geometry is
// recomputed here rather than read from the cached rect so the picture is
// always consistent with the current frame, even mid-settle.
func (m model) renderBoard() string {
	rect, ok := m.measureBoardRect()
	if !ok {
		return ""
	}
	w := int(rect.W)
	h := int(rect.H)

	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	drawAxes(grid)

	// Draw in creation order so hit-testing in reverse matches the visual
	// stacking.
	cards := m.board.Cards()
	for i := range cards {
		c := &cards[i]
		if !c.placed() {
			continue
		}
		r := cardMiniRect(c, rect)
		drawGridBox(grid,
			int(r.X-rect.X), int(r.Y-rect.Y), int(r.W), int(r.H),
			m.board.SelectedID() == c.ID,
			miniLines(c, int(r.W)))
	}

	if m.overlay.mounted() && !m.overlay.interactive() {
		m.drawOverlayFrame(grid, rect)
	}

	lines := make([]string, h)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// drawAxes writes the axis labels straight into the grid, corners first so
// card boxes drawn later sit on top of them.
func drawAxes(grid [][]rune) {
	h := len(grid)
	if h == 0 {
		return
	}
	w := len(grid[0])
	writeString(grid, 1, 0, "high rigor")
	writeString(grid, 1, h-1, "low rigor")
	writeString(grid, w-len("high precision")-1, h-1, "high precision")
	writeString(grid, w-len("low precision")-1, 0, "low precision")
}

func writeString(grid [][]rune, x, y int, s string) {
	if y < 0 || y >= len(grid) {
		return
	}
	for i, r := range s {
		if x+i >= 0 && x+i < len(grid[y]) {
			grid[y][x+i] = r
		}
	}
}

// drawGridBox draws a bordered box into the rune grid. The selected border
// uses '#', matching the rest of the board chrome.
func drawGridBox(grid [][]rune, boxX, boxY, boxW, boxH int, selected bool, lines []string) {
	corner, horizontal, vertical := '+', '-', '|'
	if selected {
		corner, horizontal, vertical = '#', '#', '#'
	}

	for y := boxY; y < boxY+boxH && y < len(grid); y++ {
		if y < 0 {
			continue
		}
		for x := boxX; x < boxX+boxW && x < len(grid[y]); x++ {
			if x < 0 {
				continue
			}
			if y == boxY || y == boxY+boxH-1 {
				if x == boxX || x == boxX+boxW-1 {
					grid[y][x] = corner
				} else {
					grid[y][x] = horizontal
				}
			} else if x == boxX || x == boxX+boxW-1 {
				grid[y][x] = vertical
			} else {
				grid[y][x] = ' '
			}
		}
	}

	for lineIdx, line := range lines {
		textY := boxY + 1 + lineIdx
		if textY <= boxY || textY >= boxY+boxH-1 {
			continue
		}
		maxWidth := boxW - 2
		if maxWidth < 0 {
			maxWidth = 0
		}
		display := []rune(line)
		if len(display) > maxWidth {
			display = display[:maxWidth]
		}
		writeString(grid, boxX+1, textY, string(display))
	}
}

func miniLines(c *Card, boxW int) []string {
	label := c.Badge + " " + c.Title
	if runes := []rune(label); len(runes) > boxW-2 && boxW > 2 {
		label = string(runes[:boxW-2])
	}
	return []string{label}
}

// drawOverlayFrame draws the zoom transition: a plain box interpolated
// between the card's miniature footprint and the fully expanded rect.
func (m model) drawOverlayFrame(grid [][]rune, rect Rect) {
	id, ok := m.overlay.current()
	if !ok {
		return
	}
	c := m.board.Card(id)
	if c == nil {
		return
	}

	mini := overlayOriginRect(c, rect)
	full := overlayFullRect(rect)
	fr := lerpRect(mini, full, overlayFraction(m.overlay.scaleAt(time.Now())))

	x := int(math.Round(fr.X - rect.X))
	y := int(math.Round(fr.Y - rect.Y))
	w := int(math.Round(fr.W))
	h := int(math.Round(fr.H))
	drawGridBox(grid, x, y, w, h, true, miniLines(c, w))
}

// overlayOriginRect is where the zoom starts and ends: the card's mini box,
// or the board center for a card still in the tray.
func overlayOriginRect(c *Card, rect Rect) Rect {
	if c.placed() {
		return cardMiniRect(c, rect)
	}
	return Rect{
		X: rect.X + rect.W/2 - cardCellW/2,
		Y: rect.Y + rect.H/2 - cardCellH/2,
		W: cardCellW,
		H: cardCellH,
	}
}

func overlayFullRect(rect Rect) Rect {
	w := rect.W - 4
	if w > 64 {
		w = 64
	}
	h := rect.H - 2
	if h > 18 {
		h = 18
	}
	return Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	}
}

// overlayFraction maps the timeline's scale onto interpolation progress.
func overlayFraction(scale float64) float64 {
	f := (scale - overlayCollapsedScale) / (1 - overlayCollapsedScale)
	return clampFloat(f, 0, 1)
}

func lerpRect(a, b Rect, f float64) Rect {
	return Rect{
		X: a.X + (b.X-a.X)*f,
		Y: a.Y + (b.Y-a.Y)*f,
		W: a.W + (b.W-a.W)*f,
		H: a.H + (b.H-a.H)*f,
	}
}

func (m model) renderPanel() string {
	var sb strings.Builder
	sb.WriteString(fieldLabelStyle.Render("Solutions") + "\n\n")
	cards := m.board.Cards()
	for i := range cards {
		c := &cards[i]
		style := panelItemStyle
		if c.ID == m.board.SelectedID() {
			style = panelSelectedStyle
		}
		var where string
		if c.placed() {
			where = fmt.Sprintf("placed (%.2f, %.2f)", c.Pos.X, c.Pos.Y)
		} else {
			where = "in tray"
		}
		item := style.Render(c.Badge+" "+c.Title) + "\n" +
			mutedStyle.Render("   "+where)
		sb.WriteString(zone.Mark(panelZone(c.ID), item) + "\n\n")
	}
	sb.WriteString(mutedStyle.Render("drag a card onto the board"))
	return panelStyle.Height(m.height - 2).Render(sb.String())
}

// renderOverlayScreen is the fully expanded overlay: typeset card body plus
// the comment and email fields, centered over a blank scrim.
func (m model) renderOverlayScreen() string {
	id, ok := m.overlay.current()
	if !ok {
		return ""
	}
	c := m.board.Card(id)
	if c == nil {
		return ""
	}

	bodyW := m.overlayBodyWidth()
	body, cached := m.mdCache[c.ID]
	if !cached || m.mdWidth != bodyW {
		// Typeset pass has not landed for this width yet; show raw text.
		body = cardBody(c)
	}

	header := titleStyle.Render(c.Badge + " " + c.Title)
	closeBtn := zone.Mark("overlay-close", overlayCloseStyle.Render(" [x] "))
	gap := bodyW - lipgloss.Width(header) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	headerLine := header + strings.Repeat(" ", gap) + closeBtn

	comment := zone.Mark("overlay-comment",
		fieldLabelStyle.Render("Comment")+"\n"+m.comment.View())
	email := zone.Mark("overlay-email",
		fieldLabelStyle.Render("Email (optional, not sent)")+"\n"+m.email.View())

	hint := mutedStyle.Render("esc: close  tab: next field  ctrl+y: copy comment  ctrl+p: paste")

	box := overlayStyleBox.Width(m.overlayTargetWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, headerLine, "", body, "", comment, "", email, "", hint))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		zone.Mark("overlay-box", box))
}

func (m model) renderHelp() string {
	help := strings.Join([]string{
		titleStyle.Render("proofboard"),
		"",
		"Drag a solution card from the panel onto the board to rate it.",
		"Horizontal position records precision, vertical records rigor.",
		"Click a placed card (or press enter) to read the full worked",
		"solution and leave a comment.",
		"",
		"  click / enter   open the magnified card",
		"  drag            place or move a card",
		"  tab, j/k        select next / previous card",
		"  p               toggle the solution panel",
		"  S / T           export the board as PNG / text",
		"  esc             close the overlay",
		"  q, ctrl+c       quit",
		"",
		mutedStyle.Render("press any key to return"),
	}, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		helpBoxStyle.Render(help))
}

// cardMiniRect is the rendered footprint of a placed card, shared by the
// draw pass and pointer hit-testing so they can never disagree.
func cardMiniRect(c *Card, rect Rect) Rect {
	cx := rect.X + c.Pos.X*rect.W
	cy := rect.Y + c.Pos.Y*rect.H
	x := clampFloat(cx-cardCellW/2, rect.X, rect.X+rect.W-cardCellW)
	y := clampFloat(cy-cardCellH/2, rect.Y, rect.Y+rect.H-cardCellH)
	return Rect{X: math.Round(x), Y: math.Round(y), W: cardCellW, H: cardCellH}
}

func panelZone(id int) string {
	return fmt.Sprintf("panel-%d", id)
}

func (m *model) overlayTargetWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *model) overlayBodyWidth() int {
	return m.overlayTargetWidth() - 6
}
