package main

import tea "github.com/charmbracelet/bubbletea"

// All input sources (terminal mouse, and the page/touch shapes used by
// replayed event logs in tests) are normalized into one pointerEvent before
// they reach the drag machine, so the transition logic exists exactly once.

type pointerKind int

const (
	pointerPress pointerKind = iota
	pointerMove
	pointerRelease
	pointerCancel
)

// pointerEvent is the single internal event shape the drag machine consumes.
type pointerEvent struct {
	Kind pointerKind
	X    float64
	Y    float64
}

// touchPoint mirrors the coordinate pairs a touch-style source may carry.
// Either pair may be absent.
type touchPoint struct {
	PageX, PageY     *float64
	ClientX, ClientY *float64
}

// rawPointer is an undecoded event from an arbitrary source. Coordinate
// fields are optional; decodePointer picks the first usable pair.
type rawPointer struct {
	Kind           pointerKind
	PageX, PageY   *float64
	ClientX        *float64
	ClientY        *float64
	Touches        []touchPoint
	ChangedTouches []touchPoint
}

// decodePointer resolves a raw event's coordinates, trying page coordinates,
// then client coordinates, then the first touch point of touches and
// changedTouches (page before client within each). If nothing decodes the
// event is dropped: the second return is false and no state may change.
func decodePointer(raw rawPointer) (pointerEvent, bool) {
	if raw.PageX != nil && raw.PageY != nil {
		return pointerEvent{Kind: raw.Kind, X: *raw.PageX, Y: *raw.PageY}, true
	}
	if raw.ClientX != nil && raw.ClientY != nil {
		return pointerEvent{Kind: raw.Kind, X: *raw.ClientX, Y: *raw.ClientY}, true
	}
	for _, list := range [][]touchPoint{raw.Touches, raw.ChangedTouches} {
		if len(list) == 0 {
			continue
		}
		tp := list[0]
		if tp.PageX != nil && tp.PageY != nil {
			return pointerEvent{Kind: raw.Kind, X: *tp.PageX, Y: *tp.PageY}, true
		}
		if tp.ClientX != nil && tp.ClientY != nil {
			return pointerEvent{Kind: raw.Kind, X: *tp.ClientX, Y: *tp.ClientY}, true
		}
	}
	return pointerEvent{}, false
}

// pointerFromMouse adapts a Bubble Tea mouse message into the unified event
// stream. Only the left button participates in drag interactions; everything
// else is ignored.
func pointerFromMouse(msg tea.MouseMsg) (pointerEvent, bool) {
	var kind pointerKind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return pointerEvent{}, false
		}
		kind = pointerPress
	case tea.MouseActionMotion:
		kind = pointerMove
	case tea.MouseActionRelease:
		kind = pointerRelease
	default:
		return pointerEvent{}, false
	}
	x := float64(msg.X)
	y := float64(msg.Y)
	return decodePointer(rawPointer{Kind: kind, ClientX: &x, ClientY: &y})
}

func floatPtr(v float64) *float64 {
	return &v
}
