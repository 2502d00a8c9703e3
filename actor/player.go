package actor

import (
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/inventory"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// Direction is the screen-relative quadrant the player last moved toward
type Direction uint8

const (
	DirUpLeft Direction = iota
	DirUpRight
	DirDownLeft
	DirDownRight
)

// FacesLeft reports whether the weapon is held on the left side of the screen
func (d Direction) FacesLeft() bool {
	return d == DirUpLeft || d == DirDownLeft
}

// MoveIntent is the per-frame directional input, any combination may be held
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Vector maps screen directions onto world axes before normalization
// Up moves toward the top-left of the world grid, Right toward the top-right
func (m MoveIntent) Vector() (float64, float64) {
	var dx, dy float64
	if m.Up {
		dx--
		dy--
	}
	if m.Down {
		dx++
		dy++
	}
	if m.Left {
		dx--
		dy++
	}
	if m.Right {
		dx++
		dy--
	}
	return dx, dy
}

// Player is the single controllable actor
type Player struct {
	X, Y      float64
	Health    int
	MaxHealth int

	// Weapon slot is never empty; Armor may be ArmorNone
	Weapon combat.WeaponType
	Armor  combat.ArmorType

	Inventory *inventory.Inventory

	AttackCooldown float64
	RegenTimer     float64
	Facing         Direction
}

// NewPlayer creates a full-health player with a sword and no armor
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Health:    parameter.PlayerMaxHealth,
		MaxHealth: parameter.PlayerMaxHealth,
		Weapon:    combat.WeaponSword,
		Armor:     combat.ArmorNone,
		Inventory: inventory.New(),
		Facing:    DirUpRight,
	}
}

// Update advances movement, attack cooldown and regeneration by dt seconds
func (p *Player) Update(dt float64, intent MoveIntent) {
	if dx, dy, ok := vmath.Normalize(intent.Vector()); ok {
		p.Facing = facingFor(dx, dy)
		p.X += dx * parameter.PlayerSpeed * dt
		p.Y += dy * parameter.PlayerSpeed * dt
	}

	if p.AttackCooldown > 0 {
		p.AttackCooldown -= dt
	}

	// Partial progress carries over so the rate holds under variable frame times
	if p.Health < p.MaxHealth {
		p.RegenTimer += dt
		if p.RegenTimer >= parameter.PlayerRegenInterval {
			p.RegenTimer -= parameter.PlayerRegenInterval
			p.Health = min(p.Health+1, p.MaxHealth)
		}
	}
}

func facingFor(dx, dy float64) Direction {
	switch {
	case dx < 0 && dy < 0:
		return DirUpLeft
	case dy < 0:
		return DirUpRight
	case dx < 0:
		return DirDownLeft
	default:
		return DirDownRight
	}
}

func (p *Player) CanAttack() bool {
	return p.AttackCooldown <= 0
}

// Attack starts the cooldown; callers check CanAttack first
func (p *Player) Attack() {
	p.AttackCooldown = parameter.PlayerAttackCooldown
}

// AttackFlashActive is true during the first part of the cooldown, for the swing effect
func (p *Player) AttackFlashActive() bool {
	return p.AttackCooldown > parameter.PlayerAttackFlashThreshold
}

// RollDamage rolls the equipped weapon
func (p *Player) RollDamage(rng combat.RNG) int {
	return combat.RollDamage(p.Weapon, rng)
}

// TakeDamage applies armor with the minimum-damage floor and returns the damage dealt
func (p *Player) TakeDamage(raw int) int {
	dmg := combat.ApplyReduction(raw, p.Armor)
	p.Health = max(p.Health-dmg, 0)
	return dmg
}

func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Equip puts item in its slot and returns what it displaced
// A weapon always displaces the previous weapon; armor displaces nothing on a bare player
func (p *Player) Equip(item combat.Item) (combat.Item, bool) {
	switch item.Kind {
	case combat.ItemWeapon:
		old := combat.WeaponItem(p.Weapon)
		p.Weapon = item.Weapon
		return old, true
	case combat.ItemArmor:
		old := p.Armor
		p.Armor = item.Armor
		if old == combat.ArmorNone {
			return combat.Item{}, false
		}
		return combat.ArmorItem(old), true
	}
	return combat.Item{}, false
}
