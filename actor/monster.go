package actor

import (
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
	"github.com/lixenwraith/wildlands/world"
)

// MonsterType identifies a species
type MonsterType uint8

const (
	MonsterGoblin MonsterType = iota
	MonsterOgre
	MonsterOrc
	MonsterWyrm
	MonsterSnowGoblin
	MonsterYeti
	MonsterTypeCount // Sentinel for array sizing
)

// MonsterProfile holds per-species stats and presentation
type MonsterProfile struct {
	Name       string
	MaxHealth  int
	BaseDamage int
	Color      core.Color
	Size       float64 // Body radius in screen pixels
}

// MonsterProfiles indexed by MonsterType
var MonsterProfiles = [MonsterTypeCount]MonsterProfile{
	MonsterGoblin:     {"Goblin", parameter.HPGoblin, parameter.DamageGoblin, core.RGB(80, 180, 80), 12},
	MonsterOgre:       {"Ogre", parameter.HPOgre, parameter.DamageOgre, core.RGB(120, 80, 60), 22},
	MonsterOrc:        {"Orc", parameter.HPOrc, parameter.DamageOrc, core.RGB(100, 140, 80), 16},
	MonsterWyrm:       {"Wyrm", parameter.HPWyrm, parameter.DamageWyrm, core.RGB(180, 140, 60), 25},
	MonsterSnowGoblin: {"Snow Goblin", parameter.HPSnowGoblin, parameter.DamageSnowGoblin, core.RGB(150, 200, 220), 12},
	MonsterYeti:       {"Yeti", parameter.HPYeti, parameter.DamageYeti, core.RGB(225, 230, 240), 22},
}

// terrainRosters lists the species that can spawn on each biome
var terrainRosters = [world.TerrainCount][]MonsterType{
	world.TerrainGrass:  {MonsterGoblin, MonsterOgre},
	world.TerrainDesert: {MonsterOrc, MonsterWyrm},
	world.TerrainSnow:   {MonsterSnowGoblin, MonsterYeti},
}

// RosterFor returns the species allowed on a terrain
func RosterFor(t world.Terrain) []MonsterType {
	if t >= world.TerrainCount {
		return nil
	}
	return terrainRosters[t]
}

func (t MonsterType) Profile() MonsterProfile {
	if t >= MonsterTypeCount {
		return MonsterProfile{Name: "Unknown"}
	}
	return MonsterProfiles[t]
}

func (t MonsterType) String() string {
	return t.Profile().Name
}

// Monster is a wandering enemy; it is removed by the game loop once dead
type Monster struct {
	X, Y           float64
	Health         int
	MaxHealth      int
	Type           MonsterType
	AttackCooldown float64
	Speed          float64
}

// NewMonster creates a full-health, attack-ready monster
func NewMonster(x, y float64, t MonsterType) Monster {
	hp := t.Profile().MaxHealth
	return Monster{
		X:         x,
		Y:         y,
		Health:    hp,
		MaxHealth: hp,
		Type:      t,
		Speed:     parameter.MonsterSpeed,
	}
}

// Update ticks the cooldown and chases the player while inside the aggro band
func (m *Monster) Update(dt, playerX, playerY float64) {
	if m.AttackCooldown > 0 {
		m.AttackCooldown -= dt
	}

	dx := playerX - m.X
	dy := playerY - m.Y
	dist := vmath.Distance(m.X, m.Y, playerX, playerY)
	if dist > parameter.MonsterStopRange && dist <= parameter.MonsterAggroRange {
		m.X += dx / dist * m.Speed * dt
		m.Y += dy / dist * m.Speed * dt
	}
}

func (m *Monster) CanAttack() bool {
	return m.AttackCooldown <= 0
}

func (m *Monster) Attack() {
	m.AttackCooldown = parameter.MonsterAttackCooldown
}

// Damage is the raw hit before the target's armor
func (m *Monster) Damage() int {
	return m.Type.Profile().BaseDamage
}

// TakeDamage reduces health, clamped at zero
func (m *Monster) TakeDamage(dmg int) {
	m.Health = max(m.Health-dmg, 0)
}

func (m *Monster) Dead() bool {
	return m.Health <= 0
}
