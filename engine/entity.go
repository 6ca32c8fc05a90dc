package engine

import (
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/physics"
)

// ItemType tags a falling item
type ItemType uint8

const (
	ItemBamboo ItemType = iota
	ItemPowerUp2x
	ItemBomb
	ItemKnife
	ItemRock
)

var itemNames = [...]string{
	ItemBamboo:    "bamboo",
	ItemPowerUp2x: "power2x",
	ItemBomb:      "bomb",
	ItemKnife:     "knife",
	ItemRock:      "rock",
}

func (t ItemType) String() string {
	if int(t) < len(itemNames) {
		return itemNames[t]
	}
	return "unknown"
}

// Harmful reports whether catching the item ends the session
// Bomb, knife and rock share one failure class
func (t ItemType) Harmful() bool {
	return t == ItemBomb || t == ItemKnife || t == ItemRock
}

// Radius returns the collision radius for the type
func (t ItemType) Radius() float64 {
	if t == ItemBamboo {
		return parameter.RadiusBamboo
	}
	return parameter.RadiusDefault
}

// FallingEntity is a live item in the registry
// VY is fixed at spawn; Y only ever grows
type FallingEntity struct {
	ID     uint64
	X, Y   float64
	Radius float64
	VY     float64
	Type   ItemType
}

func (e *FallingEntity) circle() physics.Circle {
	return physics.Circle{X: e.X, Y: e.Y, Radius: e.Radius}
}

// Player is the catcher sprite; Y is fixed after construction
type Player struct {
	X, Y          float64
	Width, Height float64
	Dragging      bool
}

// Hitbox returns the centre-based collision rectangle
func (p Player) Hitbox() physics.Rect {
	return physics.Rect{CX: p.X, CY: p.Y, Width: p.Width, Height: p.Height}
}
