package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/wildlands/engine"
)

// keyBindings maps each logical key to the physical keys that produce it
var keyBindings = [engine.KeyCount][]ebiten.Key{
	engine.KeyW:      {ebiten.KeyW},
	engine.KeyA:      {ebiten.KeyA},
	engine.KeyS:      {ebiten.KeyS},
	engine.KeyD:      {ebiten.KeyD},
	engine.KeyUp:     {ebiten.KeyArrowUp},
	engine.KeyDown:   {ebiten.KeyArrowDown},
	engine.KeyLeft:   {ebiten.KeyArrowLeft},
	engine.KeyRight:  {ebiten.KeyArrowRight},
	engine.KeySpace:  {ebiten.KeySpace},
	engine.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	engine.KeyEscape: {ebiten.KeyEscape},
	engine.KeyI:      {ebiten.KeyI},
	engine.KeyF3:     {ebiten.KeyF3},
}

var mouseBindings = [engine.MouseButtonCount]ebiten.MouseButton{
	engine.MouseLeft:  ebiten.MouseButtonLeft,
	engine.MouseRight: ebiten.MouseButtonRight,
}

// Input reads live ebiten state; valid only inside the ebiten Update call
type Input struct{}

var _ engine.InputSource = Input{}

func (Input) KeyDown(k engine.Key) bool {
	if k >= engine.KeyCount {
		return false
	}
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (Input) KeyPressed(k engine.Key) bool {
	if k >= engine.KeyCount {
		return false
	}
	for _, key := range keyBindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func (Input) MousePosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (Input) MousePressed(b engine.MouseButton) bool {
	if b >= engine.MouseButtonCount {
		return false
	}
	return inpututil.IsMouseButtonJustPressed(mouseBindings[b])
}

// quitRequested reports Ctrl+Q
func quitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
