package main

// Card is one proposition: a worked solution with stable identity, static
// display content, an optional normalized board position and a free-text
// comment. Unplaced cards live only in the side panel.
type Card struct {
	ID      int
	Badge   string
	Title   string
	Summary string
	Steps   []string
	Pos     *Position
	Comment string
}

func (c *Card) placed() bool {
	return c.Pos != nil
}

// Board owns the card collection and the active selection. It is the single
// owner of position and comment state; the interaction layer mutates it only
// through these methods.
type Board struct {
	cards    []Card
	selected int
}

func NewBoard(cards []Card) *Board {
	b := &Board{cards: cards, selected: -1}
	if len(cards) > 0 {
		b.selected = cards[0].ID
	}
	return b
}

// Cards returns the collection in creation order.
func (b *Board) Cards() []Card {
	return b.cards
}

// Card looks a card up by identity. Nil for unknown or removed IDs, which
// callers treat as "ignore the event".
func (b *Board) Card(id int) *Card {
	for i := range b.cards {
		if b.cards[i].ID == id {
			return &b.cards[i]
		}
	}
	return nil
}

// Place commits a normalized position. The caller clamps; Place only guards
// against unknown cards. Reports whether the card was already placed before.
func (b *Board) Place(id int, pos Position) (wasPlaced, ok bool) {
	c := b.Card(id)
	if c == nil {
		return false, false
	}
	wasPlaced = c.Pos != nil
	p := pos
	c.Pos = &p
	return wasPlaced, true
}

// Restore rewinds a card to a pre-drag position, including back to the tray
// when pos is nil. Used by drag cancellation.
func (b *Board) Restore(id int, pos *Position) {
	c := b.Card(id)
	if c == nil {
		return
	}
	if pos == nil {
		c.Pos = nil
		return
	}
	p := *pos
	c.Pos = &p
}

// SetComment writes a card's comment. Comments are independent per card.
func (b *Board) SetComment(id int, text string) {
	if c := b.Card(id); c != nil {
		c.Comment = text
	}
}

// Selected returns the active card, or nil when the collection is empty.
func (b *Board) Selected() *Card {
	return b.Card(b.selected)
}

func (b *Board) SelectedID() int {
	return b.selected
}

// Select makes a card active. Selection is tracked independently of the
// overlay: it updates on drag start, click and explicit selection whether or
// not the overlay opens.
func (b *Board) Select(id int) {
	if b.Card(id) != nil {
		b.selected = id
	}
}

// SelectStep moves the selection by delta through creation order, wrapping.
func (b *Board) SelectStep(delta int) {
	if len(b.cards) == 0 {
		return
	}
	idx := 0
	for i := range b.cards {
		if b.cards[i].ID == b.selected {
			idx = i
			break
		}
	}
	idx = (idx + delta%len(b.cards) + len(b.cards)) % len(b.cards)
	b.selected = b.cards[idx].ID
}

// NextUnplaced returns the first unplaced card after the given one in
// creation order, wrapping around; -1 when every card is placed.
func (b *Board) NextUnplaced(afterID int) int {
	if len(b.cards) == 0 {
		return -1
	}
	start := 0
	for i := range b.cards {
		if b.cards[i].ID == afterID {
			start = i + 1
			break
		}
	}
	for off := 0; off < len(b.cards); off++ {
		c := &b.cards[(start+off)%len(b.cards)]
		if c.Pos == nil && c.ID != afterID {
			return c.ID
		}
	}
	return -1
}

// AdvanceAfterPlacement applies the drop-style selection rule: placing a
// previously unplaced card advances the selection to the next unplaced one;
// re-dropping an already placed card keeps it selected.
func (b *Board) AdvanceAfterPlacement(id int, wasPlaced bool) {
	if wasPlaced {
		b.Select(id)
		return
	}
	if next := b.NextUnplaced(id); next != -1 {
		b.Select(next)
		return
	}
	b.Select(id)
}

// PlacedCount reports how many cards sit on the board.
func (b *Board) PlacedCount() int {
	n := 0
	for i := range b.cards {
		if b.cards[i].Pos != nil {
			n++
		}
	}
	return n
}
