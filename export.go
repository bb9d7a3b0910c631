package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	pngWidth  = 800
	pngHeight = 600
	pngMargin = 40.0
)

// exportBoardPNG renders the current placements to an image so a board can
// be kept after the session ends.
func (m *model) exportBoardPNG() tea.Cmd {
	filename := m.cfg.GetSavePath(exportFilename("png"))
	if err := writeBoardPNG(m.board, filename); err != nil {
		return m.setError(fmt.Sprintf("png export failed: %v", err))
	}
	return m.setStatus("saved " + filename)
}

func writeBoardPNG(b *Board, filename string) error {
	dc := gg.NewContext(pngWidth, pngHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Plane frame and axis labels.
	planeW := float64(pngWidth) - 2*pngMargin
	planeH := float64(pngHeight) - 2*pngMargin
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.0)
	dc.DrawRectangle(pngMargin, pngMargin, planeW, planeH)
	dc.Stroke()
	dc.DrawString("low precision", pngMargin, pngMargin-10)
	dc.DrawStringAnchored("high precision", pngMargin+planeW, pngMargin-10, 1, 0)
	dc.DrawString("high rigor", pngMargin, pngMargin+planeH+24)
	dc.Push()
	dc.RotateAbout(-gg.Radians(90), pngMargin-14, pngMargin+planeH)
	dc.DrawString("rigor", pngMargin-14, pngMargin+planeH)
	dc.Pop()

	cards := b.Cards()
	for i := range cards {
		c := &cards[i]
		if c.Pos == nil {
			continue
		}
		cx := pngMargin + c.Pos.X*planeW
		cy := pngMargin + c.Pos.Y*planeH
		boxW, boxH := 150.0, 44.0
		x := clampFloat(cx-boxW/2, pngMargin, pngMargin+planeW-boxW)
		y := clampFloat(cy-boxH/2, pngMargin, pngMargin+planeH-boxH)

		dc.SetColor(color.White)
		dc.DrawRectangle(x, y, boxW, boxH)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawRectangle(x, y, boxW, boxH)
		dc.Stroke()
		dc.DrawString(c.Badge+" "+c.Title, x+6, y+18)
		dc.DrawString(fmt.Sprintf("(%.2f, %.2f)", c.Pos.X, c.Pos.Y), x+6, y+36)
		if c.Comment != "" {
			dc.DrawString("*", x+boxW-12, y+18)
		}
	}

	return dc.SavePNG(filename)
}

// exportBoardTXT writes the board frame exactly as it renders on screen
// (the grid is plain runes, so no escape-sequence scrubbing is needed),
// followed by the per-card ratings and comments.
func (m *model) exportBoardTXT() tea.Cmd {
	filename := m.cfg.GetSavePath(exportFilename("txt"))

	file, err := os.Create(filename)
	if err != nil {
		return m.setError(fmt.Sprintf("txt export failed: %v", err))
	}
	defer file.Close()

	if frame := m.renderBoard(); frame != "" {
		fmt.Fprintln(file, frame)
		fmt.Fprintln(file)
	}
	writeBoardListing(m.board, file)
	return m.setStatus("saved " + filename)
}

func writeBoardListing(b *Board, file *os.File) {
	cards := b.Cards()
	for i := range cards {
		c := &cards[i]
		if !c.placed() {
			continue
		}
		fmt.Fprintf(file, "%s %s\n", c.Badge, c.Title)
		fmt.Fprintf(file, "  precision %.2f  rigor %.2f\n", c.Pos.X, 1-c.Pos.Y)
		if c.Comment != "" {
			fmt.Fprintf(file, "  comment: %s\n", c.Comment)
		}
		fmt.Fprintln(file)
	}

	unplaced := false
	for i := range cards {
		if !cards[i].placed() {
			if !unplaced {
				fmt.Fprintln(file, "not yet rated:")
				unplaced = true
			}
			fmt.Fprintf(file, "  %s %s\n", cards[i].Badge, cards[i].Title)
		}
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("proofboard-%s.%s", time.Now().Format("20060102-150405"), ext)
}
