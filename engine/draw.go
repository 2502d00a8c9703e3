package engine

import "github.com/lixenwraith/wildlands/render"

// Draw renders the current state; the health bar is always on top of the scene
// The viewport reported by r is remembered for click hit-testing in Step
func (g *Game) Draw(r Renderer) {
	g.viewW, g.viewH = r.ViewportSize()
	r.Clear(render.Background)

	switch g.state {
	case StatePlaying:
		g.drawScene(r)
	case StateInventory:
		g.drawScene(r)
		render.DrawInventory(r, g.player, g.mouseX, g.mouseY)
	case StateGameOver:
		render.DrawGameOver(r)
	}

	render.DrawHealthBar(r, g.player.Health, g.player.MaxHealth)

	if g.debug {
		lines := append([]string{"run: " + g.runID.String()[:8]}, g.metrics.registry.Lines()...)
		render.DrawOverlay(r, lines)
	}
}

func (g *Game) drawScene(r Renderer) {
	render.DrawWorld(r, g.camera, g.world)
	for _, it := range g.items {
		render.DrawGroundItem(r, g.camera, it)
	}
	for i := range g.monsters {
		render.DrawMonster(r, g.camera, &g.monsters[i])
	}
	render.DrawPlayer(r, g.camera, g.player)
	for i := range g.texts {
		t := &g.texts[i]
		render.DrawFloatingText(r, g.camera, t.Text, t.X, t.Y, t.OffsetY, t.Fade())
	}
}
