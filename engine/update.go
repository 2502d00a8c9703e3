package engine

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/wildlands/actor"
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/inventory"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/render"
	"github.com/lixenwraith/wildlands/spawn"
	"github.com/lixenwraith/wildlands/vmath"
)

// Frame is everything one simulation step consumes
type Frame struct {
	DT           float64 // Seconds since the previous frame
	Input        InputSnapshot
	ViewW, ViewH float64 // Viewport in pixels; zero keeps the last known size
}

// Step samples live input and advances one frame at the last viewport size seen by Draw
func (g *Game) Step(src InputSource, dt float64) {
	g.Update(Frame{DT: dt, Input: Sample(src), ViewW: g.viewW, ViewH: g.viewH})
}

// Update advances the simulation by one frame
func (g *Game) Update(f Frame) {
	dt := vmath.Clamp(f.DT, 0, parameter.MaxFrameDelta)
	if f.ViewW > 0 && f.ViewH > 0 {
		g.viewW, g.viewH = f.ViewW, f.ViewH
	}
	in := f.Input
	g.mouseX, g.mouseY = in.MousePosition()

	if in.KeyPressed(KeyF3) {
		g.debug = !g.debug
	}

	switch g.state {
	case StatePlaying:
		g.updatePlaying(dt, in)
	case StateInventory:
		g.updateInventory(in)
	case StateGameOver:
		if in.KeyPressed(KeySpace) || in.KeyPressed(KeyEnter) {
			g.Reset()
		}
	}

	g.publish(dt)
}

func (g *Game) updatePlaying(dt float64, in InputSnapshot) {
	if in.KeyPressed(KeyI) {
		g.setState(StateInventory)
		return
	}

	g.player.Update(dt, moveIntent(in))
	g.camera.Follow(g.player.X, g.player.Y, dt)
	g.spawnFrontier()

	for i := range g.monsters {
		g.monsters[i].Update(dt, g.player.X, g.player.Y)
	}

	if in.MousePressed(MouseLeft) || in.KeyPressed(KeySpace) {
		g.playerAttack()
	}
	g.monsterAttacks()
	g.collectPickups()
	g.updateTexts(dt)

	if g.player.Dead() {
		g.setState(StateGameOver)
		g.play(core.CueGameOver)
	}
}

func moveIntent(in InputSnapshot) actor.MoveIntent {
	return actor.MoveIntent{
		Up:    in.KeyDown(KeyW) || in.KeyDown(KeyUp),
		Down:  in.KeyDown(KeyS) || in.KeyDown(KeyDown),
		Left:  in.KeyDown(KeyA) || in.KeyDown(KeyLeft),
		Right: in.KeyDown(KeyD) || in.KeyDown(KeyRight),
	}
}

// spawnFrontier evaluates the chunks around the player and adopts any new monsters
func (g *Game) spawnFrontier() {
	for _, m := range g.spawner.SpawnAround(g.player.X, g.player.Y) {
		g.log.WithFields(logrus.Fields{
			"run":     g.runID.String(),
			"chunk":   spawn.ChunkOf(m.X, m.Y),
			"monster": m.Type.String(),
		}).Debug("monster spawned")
		g.monsters = append(g.monsters, m)
	}
}

// playerAttack swings at every monster in range, each hit rolled separately
// Kills are removed after the sweep so indices stay valid during it
func (g *Game) playerAttack() {
	if !g.player.CanAttack() {
		return
	}
	g.player.Attack()

	var dead []int
	for i := range g.monsters {
		m := &g.monsters[i]
		if vmath.Distance(m.X, m.Y, g.player.X, g.player.Y) > parameter.CombatAttackRange {
			continue
		}
		m.TakeDamage(g.player.RollDamage(g.rng))
		g.play(core.CueHit)
		if m.Dead() {
			dead = append(dead, i)
		}
	}

	for _, i := range slices.Backward(dead) {
		m := g.monsters[i]
		g.monsters = slices.Delete(g.monsters, i, i+1)
		g.metrics.kills.Add(1)
		g.play(core.CueKill)

		entry := g.log.WithFields(logrus.Fields{"run": g.runID.String(), "monster": m.Type.String()})
		if item, ok := combat.RollLoot(g.rng); ok {
			g.items = append(g.items, inventory.GroundItem{X: m.X, Y: m.Y, Item: item})
			g.metrics.lootDrops.Add(1)
			g.play(core.CueLoot)
			entry = entry.WithField("item", item.Name())
		}
		entry.Debug("monster killed")
	}
}

// monsterAttacks lets every ready monster in range hit the player
func (g *Game) monsterAttacks() {
	for i := range g.monsters {
		m := &g.monsters[i]
		if !m.CanAttack() {
			continue
		}
		if vmath.Distance(m.X, m.Y, g.player.X, g.player.Y) > parameter.CombatAttackRange {
			continue
		}
		m.Attack()
		dmg := g.player.TakeDamage(m.Damage())
		g.metrics.damageTaken.Add(int64(dmg))
		g.play(core.CueHurt)
	}
}

// collectPickups moves nearby items into the backpack; items that do not fit stay on the ground
func (g *Game) collectPickups() {
	var picked []int
	for i, it := range g.items {
		if vmath.Distance(it.X, it.Y, g.player.X, g.player.Y) > parameter.PickupRange {
			continue
		}
		if g.player.Inventory.Add(it.Item) {
			picked = append(picked, i)
		}
	}

	for _, i := range slices.Backward(picked) {
		item := g.items[i].Item
		g.items = slices.Delete(g.items, i, i+1)
		g.texts = append(g.texts, NewFloatingText(fmt.Sprintf("Picked up %s!", item.Name()), g.player.X, g.player.Y))
		g.metrics.pickups.Add(1)
		g.play(core.CuePickup)
		g.log.WithFields(logrus.Fields{"run": g.runID.String(), "item": item.Name()}).Debug("item picked up")
	}
}

func (g *Game) updateTexts(dt float64) {
	for i := range g.texts {
		g.texts[i].Update(dt)
	}
	g.texts = slices.DeleteFunc(g.texts, func(t FloatingText) bool {
		return t.Expired()
	})
}

// updateInventory handles closing the screen and click-to-equip
func (g *Game) updateInventory(in InputSnapshot) {
	if in.KeyPressed(KeyI) || in.KeyPressed(KeyEscape) {
		g.setState(StatePlaying)
		return
	}
	if !in.MousePressed(MouseLeft) {
		return
	}

	slot, ok := render.SlotAt(g.mouseX, g.mouseY, g.viewW, g.viewH)
	if !ok {
		return
	}
	g.EquipFromSlot(slot)
}

// EquipFromSlot equips the backpack item at slot and stores what it displaced
// A displaced item that no longer fits is dropped and logged
func (g *Game) EquipFromSlot(slot int) bool {
	item, ok := g.player.Inventory.Remove(slot)
	if !ok {
		return false
	}

	entry := g.log.WithFields(logrus.Fields{"run": g.runID.String(), "item": item.Name()})
	if old, displaced := g.player.Equip(item); displaced {
		if !g.player.Inventory.Add(old) {
			entry.WithField("dropped", old.Name()).Warn("backpack full, displaced item lost")
		}
	}
	g.play(core.CueEquip)
	entry.Debug("item equipped")
	return true
}

// publish writes the per-frame gauges
func (g *Game) publish(dt float64) {
	g.metrics.monstersLive.Store(int64(len(g.monsters)))
	g.metrics.chunksVisited.Store(int64(g.spawner.VisitedCount()))
	g.metrics.frameDT.Set(dt)
	g.metrics.stateName.Store(g.state.String())
}
