package engine

// State is the top-level game mode
type State uint8

const (
	StatePlaying State = iota
	StateInventory
	StateGameOver
	StateCount // Sentinel for array sizing
)

var stateNames = [StateCount]string{
	StatePlaying:   "playing",
	StateInventory: "inventory",
	StateGameOver:  "game_over",
}

func (s State) String() string {
	if s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}
