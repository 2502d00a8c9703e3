// Package engine runs the game: it owns every entity collection and advances
// them one frame at a time through the Playing, Inventory and GameOver states.
package engine

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/wildlands/actor"
	"github.com/lixenwraith/wildlands/camera"
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/inventory"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/spawn"
	"github.com/lixenwraith/wildlands/status"
	"github.com/lixenwraith/wildlands/vmath"
	"github.com/lixenwraith/wildlands/world"
)

// Config wires a Game to its collaborators; zero fields get silent defaults
type Config struct {
	Seed    int64
	Logger  *logrus.Logger   // nil discards
	Cues    CueSink          // nil plays nothing
	Metrics *status.Registry // nil uses a private registry
	RNG     combat.RNG       // nil seeds a FastRand from the clock
	Debug   bool             // Start with the metric overlay visible
}

// Game is the single-goroutine simulation state
type Game struct {
	// ===== Immutable After Init =====
	seed    int64
	log     *logrus.Logger
	cues    CueSink
	rng     combat.RNG
	metrics gameMetrics

	// ===== Per Run =====
	// Replaced wholesale by Reset
	runID    uuid.UUID
	state    State
	player   *actor.Player
	world    *world.World
	camera   *camera.Camera
	spawner  *spawn.Spawner
	monsters []actor.Monster
	items    []inventory.GroundItem
	texts    []FloatingText

	// ===== Host Facing =====
	viewW, viewH   float64 // Last viewport seen, used to hit-test clicks
	mouseX, mouseY float64
	debug          bool
}

// NewGame creates a game and starts its first run
func NewGame(cfg Config) *Game {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	reg := cfg.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}
	rng := cfg.RNG
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}

	g := &Game{
		seed:    cfg.Seed,
		log:     log,
		cues:    cfg.Cues,
		rng:     rng,
		metrics: newGameMetrics(reg),
		viewW:   parameter.WindowWidth,
		viewH:   parameter.WindowHeight,
		debug:   cfg.Debug,
	}
	g.Reset()
	return g
}

// Reset discards the current run and starts a fresh one on the same seed
func (g *Game) Reset() {
	g.runID = uuid.New()
	g.state = StatePlaying
	g.player = actor.NewPlayer(0, 0)
	g.world = world.New(g.seed)
	g.camera = camera.New()
	g.camera.CenterOn(g.player.X, g.player.Y)
	g.spawner = spawn.New(g.world)
	g.monsters = nil
	g.items = nil
	g.texts = nil
	g.metrics.resetRun()

	g.spawnFrontier()
	g.runLog().WithField("monsters", len(g.monsters)).Info("run started")
}

func (g *Game) runLog() *logrus.Entry {
	return g.log.WithFields(logrus.Fields{
		"run":   g.runID.String(),
		"state": g.state.String(),
	})
}

func (g *Game) play(cue core.Cue) {
	if g.cues != nil {
		g.cues.Play(cue)
	}
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	from := g.state
	g.state = s
	g.runLog().WithField("from", from.String()).Info("state changed")
}

func (g *Game) RunID() uuid.UUID {
	return g.runID
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Player() *actor.Player {
	return g.player
}

func (g *Game) World() *world.World {
	return g.world
}

func (g *Game) Camera() *camera.Camera {
	return g.camera
}

func (g *Game) Spawner() *spawn.Spawner {
	return g.spawner
}

func (g *Game) Monsters() []actor.Monster {
	return g.monsters
}

func (g *Game) GroundItems() []inventory.GroundItem {
	return g.items
}

func (g *Game) FloatingTexts() []FloatingText {
	return g.texts
}

func (g *Game) Metrics() *status.Registry {
	return g.metrics.registry
}

func (g *Game) Debug() bool {
	return g.debug
}
