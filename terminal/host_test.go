package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wildlands/config"
	"github.com/lixenwraith/wildlands/engine"
	"github.com/lixenwraith/wildlands/logger"
)

func newTestHost(t *testing.T) (*Host, *engine.Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	game := engine.NewGame(engine.Config{Seed: 12345})
	return NewHost(screen, game, config.Default().Terminal, logger.Discard()), game, screen
}

func TestHostFrameDrawsAndSteps(t *testing.T) {
	h, game, screen := newTestHost(t)
	t0 := time.Unix(1000, 0)

	h.Frame(t0)
	if cols, rows := h.canvas.Size(); cols != 80 || rows != 24 {
		t.Fatalf("Expected canvas sized to screen, got %dx%d", cols, rows)
	}

	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg == tcell.ColorDefault {
		t.Error("Expected painted background")
	}

	h.HandleEvent(runeKey('i'), t0.Add(10*time.Millisecond))
	h.Frame(t0.Add(16 * time.Millisecond))
	if game.State() != engine.StateInventory {
		t.Errorf("Expected inventory after I, got %s", game.State())
	}
}

func TestHostQuitKeys(t *testing.T) {
	h, _, _ := newTestHost(t)
	now := time.Unix(1000, 0)

	if h.HandleEvent(runeKey('q'), now) {
		t.Error("Expected plain q not to quit")
	}
	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now) {
		t.Error("Expected Ctrl+C to quit")
	}
}
