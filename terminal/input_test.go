package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wildlands/engine"
)

const testHold = 150 * time.Millisecond

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputHoldWindow(t *testing.T) {
	in := NewInput(testHold, 8, 16)
	t0 := time.Unix(1000, 0)

	in.HandleEvent(runeKey('w'), t0)

	s := in.Frame(t0)
	if !s.KeyDown(engine.KeyW) || !s.KeyPressed(engine.KeyW) {
		t.Fatal("Expected W down and pressed on the first frame")
	}

	s = in.Frame(t0.Add(100 * time.Millisecond))
	if !s.KeyDown(engine.KeyW) {
		t.Error("Expected W still held inside the window")
	}
	if s.KeyPressed(engine.KeyW) {
		t.Error("Expected press edge consumed")
	}

	s = in.Frame(t0.Add(testHold))
	if s.KeyDown(engine.KeyW) {
		t.Error("Expected W released once the window expired")
	}
}

func TestInputRepeatExtendsHold(t *testing.T) {
	in := NewInput(testHold, 8, 16)
	t0 := time.Unix(1000, 0)

	in.HandleEvent(runeKey('d'), t0)
	in.Frame(t0)

	in.HandleEvent(runeKey('d'), t0.Add(100*time.Millisecond))
	s := in.Frame(t0.Add(200 * time.Millisecond))
	if !s.KeyDown(engine.KeyD) {
		t.Error("Expected repeat to keep D held")
	}
	if s.KeyPressed(engine.KeyD) {
		t.Error("Expected repeat not to count as a new press")
	}

	// After release a new event is a fresh press
	t1 := t0.Add(time.Second)
	in.HandleEvent(runeKey('d'), t1)
	if s := in.Frame(t1); !s.KeyPressed(engine.KeyD) {
		t.Error("Expected new press after the hold expired")
	}
}

func TestInputKeyMapping(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want engine.Key
	}{
		{runeKey('W'), engine.KeyW},
		{runeKey('a'), engine.KeyA},
		{runeKey('i'), engine.KeyI},
		{runeKey(' '), engine.KeySpace},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.KeyUp},
		{tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), engine.KeyEnter},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.KeyEscape},
		{tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), engine.KeyF3},
	}

	for _, tt := range tests {
		got, ok := mapKey(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("Expected %v for %s, got %v (ok=%v)", tt.want, tt.ev.Name(), got, ok)
		}
	}

	if _, ok := mapKey(runeKey('z')); ok {
		t.Error("Expected unmapped rune ignored")
	}
}

func TestInputMouseEdges(t *testing.T) {
	in := NewInput(testHold, 8, 16)
	t0 := time.Unix(1000, 0)

	in.HandleEvent(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone), t0)
	s := in.Frame(t0)
	if !s.MousePressed(engine.MouseLeft) {
		t.Error("Expected left click")
	}
	if x, y := s.MousePosition(); x != 28 || y != 40 {
		t.Errorf("Expected mouse at cell center (28,40), got (%.0f,%.0f)", x, y)
	}

	// Drag with the button still held is not a new click
	in.HandleEvent(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone), t0)
	if s := in.Frame(t0); s.MousePressed(engine.MouseLeft) {
		t.Error("Expected no click while held")
	}

	in.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone), t0)
	in.HandleEvent(tcell.NewEventMouse(4, 2, tcell.Button2, tcell.ModNone), t0)
	s = in.Frame(t0)
	if s.MousePressed(engine.MouseLeft) || !s.MousePressed(engine.MouseRight) {
		t.Error("Expected right click only")
	}
}
