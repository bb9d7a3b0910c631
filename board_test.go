package main

import "testing"

func testBoard() *Board {
	return NewBoard([]Card{
		{ID: 1, Badge: "P1", Title: "one"},
		{ID: 2, Badge: "P2", Title: "two"},
		{ID: 3, Badge: "P3", Title: "three"},
		{ID: 4, Badge: "P4", Title: "four"},
	})
}

func TestPlaceAndLookup(t *testing.T) {
	b := testBoard()
	wasPlaced, ok := b.Place(2, Position{X: 0.3, Y: 0.7})
	if !ok || wasPlaced {
		t.Fatalf("first placement: expected ok and not previously placed, got ok=%v wasPlaced=%v", ok, wasPlaced)
	}
	wasPlaced, ok = b.Place(2, Position{X: 0.4, Y: 0.6})
	if !ok || !wasPlaced {
		t.Fatalf("re-placement: expected wasPlaced, got ok=%v wasPlaced=%v", ok, wasPlaced)
	}
	if c := b.Card(2); c.Pos == nil || c.Pos.X != 0.4 {
		t.Fatalf("expected updated position, got %+v", c.Pos)
	}
	if _, ok := b.Place(99, Position{}); ok {
		t.Fatal("placing an unknown card must be rejected")
	}
	if b.PlacedCount() != 1 {
		t.Fatalf("expected 1 placed card, got %d", b.PlacedCount())
	}
}

func TestCommentsAreIndependentPerCard(t *testing.T) {
	b := testBoard()
	b.SetComment(1, "solid factoring")
	b.SetComment(3, "missing the uniqueness argument")
	if b.Card(1).Comment != "solid factoring" {
		t.Fatalf("card 1 comment lost: %q", b.Card(1).Comment)
	}
	if b.Card(2).Comment != "" {
		t.Fatalf("card 2 comment must be untouched, got %q", b.Card(2).Comment)
	}
	if b.Card(3).Comment != "missing the uniqueness argument" {
		t.Fatalf("card 3 comment lost: %q", b.Card(3).Comment)
	}
	b.SetComment(99, "dropped")
}

func TestSelectStepWraps(t *testing.T) {
	b := testBoard()
	if b.SelectedID() != 1 {
		t.Fatalf("initial selection must be the first card, got %d", b.SelectedID())
	}
	b.SelectStep(1)
	b.SelectStep(1)
	b.SelectStep(1)
	b.SelectStep(1)
	if b.SelectedID() != 1 {
		t.Fatalf("four forward steps over four cards must wrap to 1, got %d", b.SelectedID())
	}
	b.SelectStep(-1)
	if b.SelectedID() != 4 {
		t.Fatalf("backward step from 1 must wrap to 4, got %d", b.SelectedID())
	}
}

func TestAdvanceAfterPlacement(t *testing.T) {
	b := testBoard()
	// Drop card 2 first: selection must advance to the next unplaced card.
	wasPlaced, _ := b.Place(2, Position{X: 0.5, Y: 0.5})
	b.AdvanceAfterPlacement(2, wasPlaced)
	if b.SelectedID() != 3 {
		t.Fatalf("expected selection to advance to 3, got %d", b.SelectedID())
	}

	// Re-dropping a placed card keeps it selected.
	wasPlaced, _ = b.Place(2, Position{X: 0.6, Y: 0.5})
	b.AdvanceAfterPlacement(2, wasPlaced)
	if b.SelectedID() != 2 {
		t.Fatalf("re-drop must keep the card selected, got %d", b.SelectedID())
	}

	// Place the rest; the last placement has nowhere to advance to.
	for _, id := range []int{3, 4, 1} {
		wasPlaced, _ = b.Place(id, Position{X: 0.1, Y: 0.1})
		b.AdvanceAfterPlacement(id, wasPlaced)
	}
	if b.SelectedID() != 1 {
		t.Fatalf("last placement must keep its own card selected, got %d", b.SelectedID())
	}
}

func TestNextUnplacedWrapsAround(t *testing.T) {
	b := testBoard()
	b.Place(1, Position{})
	b.Place(4, Position{})
	if got := b.NextUnplaced(4); got != 2 {
		t.Fatalf("expected wrap to 2, got %d", got)
	}
	b.Place(2, Position{})
	b.Place(3, Position{})
	if got := b.NextUnplaced(3); got != -1 {
		t.Fatalf("all placed: expected -1, got %d", got)
	}
}

func TestSelectIgnoresUnknownCard(t *testing.T) {
	b := testBoard()
	b.Select(3)
	b.Select(42)
	if b.SelectedID() != 3 {
		t.Fatalf("unknown selection must be ignored, got %d", b.SelectedID())
	}
}
