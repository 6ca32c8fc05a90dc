package engine

import (
	"testing"

	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/vmath"
)

func TestClassifyRoll(t *testing.T) {
	tests := []struct {
		roll float64
		want ItemType
	}{
		{0, ItemBamboo},
		{0.3, ItemBamboo},
		{0.5999, ItemBamboo},
		{0.60, ItemBomb},
		{0.7499, ItemBomb},
		{0.75, ItemKnife},
		{0.8999, ItemKnife},
		{0.90, ItemRock},
		{0.9499, ItemRock},
		{0.95, ItemPowerUp2x},
		{0.9999, ItemPowerUp2x},
	}
	for _, tt := range tests {
		if got := ClassifyRoll(tt.roll); got != tt.want {
			t.Errorf("ClassifyRoll(%v) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestFactorySpawn(t *testing.T) {
	tests := []struct {
		name      string
		rolls     []float64
		score     int
		wantX     float64
		wantType  ItemType
		wantVY    float64
		wantRadii float64
	}{
		{
			name:      "left edge bamboo at score zero",
			rolls:     []float64{0, 0.3, 0},
			score:     0,
			wantX:     parameter.SpawnMarginX,
			wantType:  ItemBamboo,
			wantVY:    160,
			wantRadii: 18,
		},
		{
			name:      "centre bomb with jitter",
			rolls:     []float64{0.5, 0.7, 0.5},
			score:     0,
			wantX:     200,
			wantType:  ItemBomb,
			wantVY:    200,
			wantRadii: 16,
		},
		{
			name:      "speed scales with score",
			rolls:     []float64{0.25, 0.97, 0.25},
			score:     10,
			wantX:     110,
			wantType:  ItemPowerUp2x,
			wantVY:    160 + 20 + 20,
			wantRadii: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory(vmath.NewScriptedSource(tt.rolls...), 400)
			e := f.Spawn(tt.score)

			if e.X != tt.wantX {
				t.Errorf("X = %v, want %v", e.X, tt.wantX)
			}
			if e.Y != parameter.SpawnY {
				t.Errorf("Y = %v, want %v", e.Y, parameter.SpawnY)
			}
			if e.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", e.Type, tt.wantType)
			}
			if e.VY != tt.wantVY {
				t.Errorf("VY = %v, want %v", e.VY, tt.wantVY)
			}
			if e.Radius != tt.wantRadii {
				t.Errorf("Radius = %v, want %v", e.Radius, tt.wantRadii)
			}
		})
	}
}

func TestFactorySpawnStaysOnScreen(t *testing.T) {
	const width = 400.0
	f := NewFactory(vmath.NewFastRand(99), width)
	for i := 0; i < 5000; i++ {
		e := f.Spawn(i % 50)
		if e.X < parameter.SpawnMarginX || e.X >= width-parameter.SpawnMarginX {
			t.Fatalf("spawn %d at x=%v outside [%v, %v)", i, e.X, parameter.SpawnMarginX, width-parameter.SpawnMarginX)
		}
		if e.VY <= 0 {
			t.Fatalf("spawn %d has non-positive speed %v", i, e.VY)
		}
	}
}

func TestItemTypeHarmful(t *testing.T) {
	harmful := map[ItemType]bool{
		ItemBamboo:    false,
		ItemPowerUp2x: false,
		ItemBomb:      true,
		ItemKnife:     true,
		ItemRock:      true,
	}
	for typ, want := range harmful {
		if typ.Harmful() != want {
			t.Errorf("%v.Harmful() = %v, want %v", typ, typ.Harmful(), want)
		}
	}
}
