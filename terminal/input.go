package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wildlands/engine"
)

// Input turns the tcell event stream into per-frame input
// Terminals report presses and auto-repeats but never releases, so a key stays
// down for the hold window after its last event
type Input struct {
	hold time.Duration

	lastSeen [engine.KeyCount]time.Time
	pressed  [engine.KeyCount]bool

	// Mouse position in virtual pixels
	mouseX, mouseY float64
	buttons        tcell.ButtonMask
	clicked        [engine.MouseButtonCount]bool

	cellW, cellH float64
}

func NewInput(hold time.Duration, cellW, cellH float64) *Input {
	return &Input{hold: hold, cellW: cellW, cellH: cellH}
}

// HandleEvent records one tcell event observed at now
func (in *Input) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := mapKey(ev)
		if !ok {
			return
		}
		if !in.down(k, now) {
			in.pressed[k] = true
		}
		in.lastSeen[k] = now

	case *tcell.EventMouse:
		col, row := ev.Position()
		in.mouseX = (float64(col) + 0.5) * in.cellW
		in.mouseY = (float64(row) + 0.5) * in.cellH

		btn := ev.Buttons()
		if btn&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0 {
			in.clicked[engine.MouseLeft] = true
		}
		if btn&tcell.Button2 != 0 && in.buttons&tcell.Button2 == 0 {
			in.clicked[engine.MouseRight] = true
		}
		in.buttons = btn
	}
}

// Frame snapshots the input for the frame at now and clears the press edges
func (in *Input) Frame(now time.Time) engine.InputSnapshot {
	var s engine.InputSnapshot
	for k := engine.Key(0); k < engine.KeyCount; k++ {
		s.Down[k] = in.down(k, now)
		s.Pressed[k] = in.pressed[k]
	}
	s.MouseX, s.MouseY = in.mouseX, in.mouseY
	s.Clicked = in.clicked

	in.pressed = [engine.KeyCount]bool{}
	in.clicked = [engine.MouseButtonCount]bool{}
	return s
}

func (in *Input) down(k engine.Key, now time.Time) bool {
	seen := in.lastSeen[k]
	return !seen.IsZero() && now.Sub(seen) < in.hold
}

// mapKey translates a tcell key event to a logical key
func mapKey(ev *tcell.EventKey) (engine.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.KeyUp, true
	case tcell.KeyDown:
		return engine.KeyDown, true
	case tcell.KeyLeft:
		return engine.KeyLeft, true
	case tcell.KeyRight:
		return engine.KeyRight, true
	case tcell.KeyEnter:
		return engine.KeyEnter, true
	case tcell.KeyEscape:
		return engine.KeyEscape, true
	case tcell.KeyF3:
		return engine.KeyF3, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return engine.KeyW, true
		case 'a', 'A':
			return engine.KeyA, true
		case 's', 'S':
			return engine.KeyS, true
		case 'd', 'D':
			return engine.KeyD, true
		case 'i', 'I':
			return engine.KeyI, true
		case ' ':
			return engine.KeySpace, true
		}
	}
	return 0, false
}

// isQuit reports the keys that end the terminal session
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	}
	return false
}
