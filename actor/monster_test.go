package actor

import (
	"math"
	"testing"

	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/world"
)

func TestMonsterChaseBand(t *testing.T) {
	tests := []struct {
		name  string
		start float64 // distance from player along +X
		moves bool
	}{
		{"inside stop range", 0.4, false},
		{"at stop range", parameter.MonsterStopRange, false},
		{"chasing", 5, true},
		{"at aggro edge", parameter.MonsterAggroRange, true},
		{"out of range", parameter.MonsterAggroRange + 0.1, false},
	}

	for _, tt := range tests {
		m := NewMonster(tt.start, 0, MonsterGoblin)
		m.Update(0.1, 0, 0)

		moved := m.X != tt.start
		if moved != tt.moves {
			t.Errorf("%s: Expected moved=%v, got %v (x=%f)", tt.name, tt.moves, moved, m.X)
		}
		if tt.moves {
			want := tt.start - parameter.MonsterSpeed*0.1
			if math.Abs(m.X-want) > 1e-9 {
				t.Errorf("%s: Expected x %f, got %f", tt.name, want, m.X)
			}
		}
	}
}

func TestMonsterCooldown(t *testing.T) {
	m := NewMonster(0, 0, MonsterOrc)
	if !m.CanAttack() {
		t.Fatal("Expected fresh monster to be ready")
	}

	m.Attack()
	m.Update(0.3, 100, 100)
	if m.CanAttack() {
		t.Error("Expected cooldown still running")
	}
	m.Update(0.2, 100, 100)
	if !m.CanAttack() {
		t.Errorf("Expected ready, remaining %f", m.AttackCooldown)
	}
}

func TestMonsterTakeDamage(t *testing.T) {
	m := NewMonster(0, 0, MonsterWyrm)
	if m.Health != parameter.HPWyrm {
		t.Fatalf("Expected %d hp, got %d", parameter.HPWyrm, m.Health)
	}

	m.TakeDamage(20)
	if m.Health != parameter.HPWyrm-20 || m.Dead() {
		t.Errorf("Expected %d alive, got %d", parameter.HPWyrm-20, m.Health)
	}

	m.TakeDamage(1000)
	if m.Health != 0 || !m.Dead() {
		t.Errorf("Expected 0 and dead, got %d", m.Health)
	}
}

func TestRosters(t *testing.T) {
	seen := make(map[MonsterType]world.Terrain)
	for terrain := world.Terrain(0); terrain < world.TerrainCount; terrain++ {
		roster := RosterFor(terrain)
		if len(roster) != 2 {
			t.Errorf("%s: Expected 2 species, got %d", terrain, len(roster))
		}
		for _, mt := range roster {
			if prev, ok := seen[mt]; ok {
				t.Errorf("%s listed for both %s and %s", mt, prev, terrain)
			}
			seen[mt] = terrain
		}
	}
	if len(seen) != int(MonsterTypeCount) {
		t.Errorf("Expected every species on a roster, got %d", len(seen))
	}
}

func TestMonsterProfiles(t *testing.T) {
	tests := []struct {
		mt     MonsterType
		hp     int
		damage int
	}{
		{MonsterGoblin, 10, 5},
		{MonsterOgre, 30, 8},
		{MonsterOrc, 20, 6},
		{MonsterWyrm, 50, 10},
		{MonsterSnowGoblin, 10, 5},
		{MonsterYeti, 30, 8},
	}

	for _, tt := range tests {
		m := NewMonster(0, 0, tt.mt)
		if m.MaxHealth != tt.hp || m.Damage() != tt.damage {
			t.Errorf("%s: Expected %d/%d, got %d/%d", tt.mt, tt.hp, tt.damage, m.MaxHealth, m.Damage())
		}
	}
}
