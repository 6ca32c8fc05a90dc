package event

// EventType represents the type of game event
type EventType int

const (
	// === Session Event ===

	// EventReset signals a fresh session
	// Trigger: Game.Reset | Consumer: Shell | Payload: nil
	EventReset EventType = iota

	// EventGameOver signals the absorbing terminal state
	// Trigger: harmful item collision | Consumer: Shell, SoundManager | Payload: item type
	EventGameOver

	// === Item Event ===

	// EventItemSpawned signals a new falling item
	// Trigger: spawn timer | Consumer: diagnostics | Payload: item ID (uint64)
	EventItemSpawned

	// EventItemCaught signals a beneficial collision
	// Trigger: bamboo or power-up collision | Consumer: SoundManager | Payload: item type
	EventItemCaught

	// EventItemMissed signals an item leaving through the bottom edge
	// Trigger: off-screen removal | Consumer: diagnostics | Payload: item ID (uint64)
	EventItemMissed

	// === Multiplier Event ===

	// EventMultiplierActivated signals a power-up pickup
	// Trigger: power-up collision | Consumer: Shell, SoundManager | Payload: nil
	EventMultiplierActivated

	// EventMultiplierExpired signals the end of the multiplier window
	// Trigger: multiplier timer | Consumer: Shell, SoundManager | Payload: nil
	EventMultiplierExpired
)

var typeNames = [...]string{
	EventReset:               "Reset",
	EventGameOver:            "GameOver",
	EventItemSpawned:         "ItemSpawned",
	EventItemCaught:          "ItemCaught",
	EventItemMissed:          "ItemMissed",
	EventMultiplierActivated: "MultiplierActivated",
	EventMultiplierExpired:   "MultiplierExpired",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// GameEvent is a single notification from the simulation core
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Tick counter when the event was emitted
}
