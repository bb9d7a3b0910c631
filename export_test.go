package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteBoardPNG(t *testing.T) {
	b := testBoard()
	b.Place(1, Position{X: 0.2, Y: 0.8})
	b.Place(3, Position{X: 0.9, Y: 0.1})
	b.SetComment(1, "good factoring")

	path := filepath.Join(t.TempDir(), "board.png")
	if err := writeBoardPNG(b, path); err != nil {
		t.Fatalf("png export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported png: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatal("exported file is not a png")
	}
}

func TestWriteBoardListing(t *testing.T) {
	b := testBoard()
	b.Place(2, Position{X: 0.25, Y: 0.75})
	b.SetComment(2, "check the second root")

	path := filepath.Join(t.TempDir(), "board.txt")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	writeBoardListing(b, file)
	file.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading listing: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "P2 two") {
		t.Fatalf("placed card missing from listing:\n%s", out)
	}
	if !strings.Contains(out, "precision 0.25") {
		t.Fatalf("precision value missing from listing:\n%s", out)
	}
	// Rigor is reported with the axis pointing up.
	if !strings.Contains(out, "rigor 0.25") {
		t.Fatalf("rigor value missing or unflipped:\n%s", out)
	}
	if !strings.Contains(out, "check the second root") {
		t.Fatalf("comment missing from listing:\n%s", out)
	}
	if !strings.Contains(out, "not yet rated:") || !strings.Contains(out, "P1 one") {
		t.Fatalf("unplaced tray missing from listing:\n%s", out)
	}
}

func TestExportFilename(t *testing.T) {
	name := exportFilename("png")
	if !strings.HasPrefix(name, "proofboard-") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("unexpected export filename %q", name)
	}
}

func TestGetSavePathResolvesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	c := &Config{SaveDirectory: dir}
	got := c.GetSavePath("a.png")
	if got != filepath.Join(dir, "a.png") {
		t.Fatalf("expected path under the save directory, got %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("save directory must be created: %v", err)
	}

	c = &Config{}
	if got := c.GetSavePath("a.png"); got != "a.png" {
		t.Fatalf("empty save directory must leave the name untouched, got %q", got)
	}
}
