package engine

import (
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/vmath"
)

// Factory decides position, type and speed of newly spawned items
// Rolls are drawn in a fixed order: x, type, speed
type Factory struct {
	rng   vmath.Source
	width float64
}

func NewFactory(rng vmath.Source, playfieldWidth float64) *Factory {
	return &Factory{rng: rng, width: playfieldWidth}
}

// Spawn builds a new item just above the top edge
// Speed scales with the current score, not elapsed time
func (f *Factory) Spawn(currentScore int) FallingEntity {
	x := f.rng.Float64()*(f.width-2*parameter.SpawnMarginX) + parameter.SpawnMarginX
	typ := ClassifyRoll(f.rng.Float64())

	base := parameter.FallSpeedBase + parameter.FallSpeedPerScore*float64(currentScore)
	vy := base + f.rng.Float64()*parameter.FallSpeedJitter

	return FallingEntity{
		X:      x,
		Y:      parameter.SpawnY,
		Radius: typ.Radius(),
		VY:     vy,
		Type:   typ,
	}
}

// ClassifyRoll maps a uniform roll in [0,1) onto an item type
func ClassifyRoll(r float64) ItemType {
	switch {
	case r < parameter.RollBamboo:
		return ItemBamboo
	case r < parameter.RollBomb:
		return ItemBomb
	case r < parameter.RollKnife:
		return ItemKnife
	case r < parameter.RollRock:
		return ItemRock
	default:
		return ItemPowerUp2x
	}
}
