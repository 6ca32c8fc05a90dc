package parameter

// Spawn Cadence
const (
	// SpawnIntervalStart is the spawn threshold right after a reset, in seconds
	SpawnIntervalStart = 0.9

	// SpawnIntervalDecrement is subtracted from the threshold after every spawn
	SpawnIntervalDecrement = 0.008

	// SpawnIntervalFloor caps the spawn rate at roughly 2.9 spawns per second
	SpawnIntervalFloor = 0.35
)

// Spawn Placement
const (
	// SpawnMarginX keeps spawned items at least this far from either side wall
	SpawnMarginX = 20.0

	// SpawnY is just above the visible top edge
	SpawnY = -20.0
)

// Item Type Roll
// Cumulative thresholds over a uniform roll in [0,1)
const (
	RollBamboo = 0.60
	RollBomb   = 0.75
	RollKnife  = 0.90
	RollRock   = 0.95
	// anything above RollRock is a power-up
)

// Item Geometry
const (
	RadiusBamboo  = 18.0
	RadiusDefault = 16.0
)

// Fall Speed
// vy = FallSpeedBase + FallSpeedPerScore*score + roll*FallSpeedJitter
const (
	FallSpeedBase     = 160.0
	FallSpeedPerScore = 2.0
	FallSpeedJitter   = 80.0
)

// Scoring & Multiplier
const (
	// BambooPoints is the base value of a caught bamboo before the multiplier
	BambooPoints = 1

	// MultiplierNormal is the resting multiplier
	MultiplierNormal = 1

	// MultiplierBoosted is granted by a power-up
	MultiplierBoosted = 2

	// MultiplierDuration is the power-up window in seconds, reset (not stacked) on pickup
	MultiplierDuration = 5.0
)
