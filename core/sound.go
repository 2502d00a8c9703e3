package core

// Cue is a gameplay event that a sound backend may voice
type Cue uint8

const (
	CueHit      Cue = iota // Player blow landed
	CueHurt                // Player took damage
	CueKill                // Monster died
	CueLoot                // Item dropped on the ground
	CuePickup              // Item moved into the backpack
	CueEquip               // Item equipped from the backpack
	CueGameOver            // Player died
	CueCount               // Sentinel for array sizing
)

var cueNames = [CueCount]string{
	CueHit:      "hit",
	CueHurt:     "hurt",
	CueKill:     "kill",
	CueLoot:     "loot",
	CuePickup:   "pickup",
	CueEquip:    "equip",
	CueGameOver: "game_over",
}

func (c Cue) String() string {
	if c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}
