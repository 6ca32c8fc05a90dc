package parameter

// Player Hitbox
const (
	PlayerWidth  = 80.0
	PlayerHeight = 80.0

	// PlayerBottomOffset is the distance from the playfield bottom to the player centre
	PlayerBottomOffset = 70.0
)

// Playfield Defaults
const (
	DefaultPlayfieldWidth  = 400.0
	DefaultPlayfieldHeight = 600.0
)
