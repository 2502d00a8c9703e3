package desktop

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/wildlands/config"
	"github.com/lixenwraith/wildlands/engine"
)

// host adapts the game to ebiten.Game
type host struct {
	game     *engine.Game
	renderer *Renderer
	log      *logrus.Logger
}

func (h *host) Update() error {
	if quitRequested() {
		h.log.Info("quit requested")
		return ebiten.Termination
	}
	// Update runs at a fixed tick rate
	h.game.Step(engine.Sample(Input{}), 1/float64(ebiten.TPS()))
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	h.renderer.Target(screen)
	h.game.Draw(h.renderer)
}

// Layout keeps one screen pixel per window pixel so the viewport follows resizes
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and plays until it closes
func Run(game *engine.Game, cfg *config.Config, log *logrus.Logger) error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	log.WithFields(logrus.Fields{
		"width":  cfg.Window.Width,
		"height": cfg.Window.Height,
	}).Info("desktop host started")

	err = ebiten.RunGame(&host{game: game, renderer: renderer, log: log})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
