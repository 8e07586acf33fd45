// Package input turns polled mouse state into the discrete events a level
// reacts to.
package input

import (
	"time"

	"squircles/internal/geom"
)

// Kind is the type of a routed event.
type Kind int

const (
	Click Kind = iota
	MouseMove
	MouseDown
	MouseUp
	DoubleClick
	ContextMenu
	Wheel
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case MouseMove:
		return "mousemove"
	case MouseDown:
		return "mousedown"
	case MouseUp:
		return "mouseup"
	case DoubleClick:
		return "dblclick"
	case ContextMenu:
		return "contextmenu"
	case Wheel:
		return "wheel"
	}
	return "unknown"
}

// Event carries surface-local coordinates. DeltaY is only set for Wheel and
// follows the browser convention: negative scrolls up.
type Event struct {
	Kind   Kind
	X, Y   float64
	DeltaY float64
}

// Poll is one sample of the pointer. Left and Right are the button levels
// at sampling time. The *Pressed and *Released flags report edges seen since
// the previous poll, so a tap that starts and ends between two polls is not
// lost.
type Poll struct {
	X, Y          float64
	Left          bool
	LeftPressed   bool
	LeftReleased  bool
	Right         bool
	RightPressed  bool
	RightReleased bool
	WheelY        float64
	At            time.Time
}

const (
	DoubleClickWindow = 500 * time.Millisecond
	doubleClickSlop   = 4
	wheelScale        = 100
)

// Translator is the edge detector between two polls.
type Translator struct {
	primed    bool
	lastX     float64
	lastY     float64
	left      bool
	right     bool
	lastClick time.Time
	clickX    float64
	clickY    float64
	clicked   bool
}

// Feed compares p with the previous poll and appends the resulting events
// to dst in browser order.
func (t *Translator) Feed(dst []Event, p Poll) []Event {
	if !geom.Finite(p.X, p.Y) {
		return dst
	}
	if !t.primed || p.X != t.lastX || p.Y != t.lastY {
		if t.primed {
			dst = append(dst, Event{Kind: MouseMove, X: p.X, Y: p.Y})
		}
		t.lastX, t.lastY = p.X, p.Y
		t.primed = true
	}

	down := t.left
	// Released and pressed again since the last poll.
	if down && p.Left && p.LeftReleased {
		dst = t.release(dst, p)
		down = false
	}
	if !down && (p.Left || p.LeftPressed) {
		dst = append(dst, Event{Kind: MouseDown, X: p.X, Y: p.Y})
		down = true
	}
	if down && !p.Left {
		dst = t.release(dst, p)
		down = false
	}
	t.left = down

	fresh := !t.right || (p.Right && p.RightReleased)
	if fresh && (p.Right || p.RightPressed) {
		dst = append(dst, Event{Kind: ContextMenu, X: p.X, Y: p.Y})
	}
	t.right = p.Right

	if p.WheelY != 0 {
		dst = append(dst, Event{Kind: Wheel, X: p.X, Y: p.Y, DeltaY: -p.WheelY * wheelScale})
	}
	return dst
}

// release emits mouseup and click, plus dblclick when it pairs with the
// previous click.
func (t *Translator) release(dst []Event, p Poll) []Event {
	dst = append(dst,
		Event{Kind: MouseUp, X: p.X, Y: p.Y},
		Event{Kind: Click, X: p.X, Y: p.Y},
	)
	if t.clicked && p.At.Sub(t.lastClick) <= DoubleClickWindow &&
		geom.Dist(p.X, p.Y, t.clickX, t.clickY) <= doubleClickSlop {
		t.clicked = false
		return append(dst, Event{Kind: DoubleClick, X: p.X, Y: p.Y})
	}
	t.clicked = true
	t.lastClick = p.At
	t.clickX, t.clickY = p.X, p.Y
	return dst
}
