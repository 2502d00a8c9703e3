package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/wildlands/config"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/engine"
	"github.com/lixenwraith/wildlands/parameter"
)

// Host drives a game on a tcell screen
type Host struct {
	screen tcell.Screen
	game   *engine.Game
	canvas *Canvas
	input  *Input
	log    *logrus.Logger

	last time.Time
}

// NewHost wraps an initialized screen
func NewHost(screen tcell.Screen, game *engine.Game, cfg config.TerminalConfig, log *logrus.Logger) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen: screen,
		game:   game,
		canvas: NewCanvas(cols, rows, cfg.CellWidth, cfg.CellHeight),
		input:  NewInput(cfg.HoldWindow, cfg.CellWidth, cfg.CellHeight),
		log:    log,
	}
}

// Frame advances the game to now and presents it
func (h *Host) Frame(now time.Time) {
	dt := 0.0
	if !h.last.IsZero() {
		dt = now.Sub(h.last).Seconds()
	}
	h.last = now

	h.canvas.Resize(h.screen.Size())
	h.game.Step(h.input.Frame(now), dt)
	h.game.Draw(h.canvas)
	h.canvas.Flush(h.screen)
	h.screen.Show()
}

// HandleEvent routes one event and reports whether the session should end
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := h.screen.Size()
		h.log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
		return false
	}
	h.input.HandleEvent(ev, now)
	return false
}

// Run polls events on a separate goroutine and steps the game on a fixed ticker until quit
func (h *Host) Run() error {
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev, time.Now()) {
				h.log.Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			h.Frame(now)
		}
	}
}

// Run opens the terminal, plays until quit and restores the terminal
func Run(game *engine.Game, cfg *config.Config, log *logrus.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		screen.Fini()
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Info("terminal host started")

	return NewHost(screen, game, cfg.Terminal, log).Run()
}
