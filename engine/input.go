package engine

// Key is a logical key the game reacts to; backends map their native codes onto it
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyI
	KeyF3
	KeyCount // Sentinel for array sizing
)

// MouseButton is a logical mouse button
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseButtonCount
)

// InputSource is live input polled once per frame
// KeyPressed and MousePressed are edges: true only on the frame the press began
type InputSource interface {
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	MousePosition() (float64, float64)
	MousePressed(b MouseButton) bool
}

// InputSnapshot is a frozen copy of one frame of input
// It satisfies InputSource so tests can script frames directly
type InputSnapshot struct {
	Down    [KeyCount]bool
	Pressed [KeyCount]bool
	MouseX  float64
	MouseY  float64
	Clicked [MouseButtonCount]bool
}

// Sample copies the current state of src
func Sample(src InputSource) InputSnapshot {
	var s InputSnapshot
	for k := Key(0); k < KeyCount; k++ {
		s.Down[k] = src.KeyDown(k)
		s.Pressed[k] = src.KeyPressed(k)
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		s.Clicked[b] = src.MousePressed(b)
	}
	s.MouseX, s.MouseY = src.MousePosition()
	return s
}

func (s InputSnapshot) KeyDown(k Key) bool {
	return k < KeyCount && s.Down[k]
}

func (s InputSnapshot) KeyPressed(k Key) bool {
	return k < KeyCount && s.Pressed[k]
}

func (s InputSnapshot) MousePosition() (float64, float64) {
	return s.MouseX, s.MouseY
}

func (s InputSnapshot) MousePressed(b MouseButton) bool {
	return b < MouseButtonCount && s.Clicked[b]
}
