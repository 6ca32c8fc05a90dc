package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reddy-catch/engine"
)

var (
	RgbBackground = tcell.NewRGBColor(18, 38, 24)    // Deep bamboo-forest green
	RgbBorder     = tcell.NewRGBColor(60, 90, 60)    // Muted green frame
	RgbHudText    = tcell.NewRGBColor(235, 235, 235) // Near white
	RgbHudBg      = tcell.NewRGBColor(10, 20, 12)    // Darker strip behind HUD rows
	RgbHudAccent  = tcell.NewRGBColor(249, 230, 106) // Multiplier highlight

	RgbPlayer     = tcell.NewRGBColor(255, 123, 74) // Reddy orange
	RgbPlayerFace = tcell.NewRGBColor(59, 31, 20)   // Dark brown

	RgbBamboo      = tcell.NewRGBColor(46, 204, 113)  // Stalk green
	RgbBambooNode  = tcell.NewRGBColor(31, 127, 69)   // Stalk joint
	RgbBomb        = tcell.NewRGBColor(90, 90, 90)    // Lifted from #222 for contrast on dark bg
	RgbBombFuse    = tcell.NewRGBColor(255, 170, 0)   // Lit fuse
	RgbKnife       = tcell.NewRGBColor(216, 216, 216) // Blade
	RgbKnifeHandle = tcell.NewRGBColor(139, 90, 43)   // Wooden handle
	RgbRock        = tcell.NewRGBColor(122, 122, 122) // Stone grey
	RgbPowerUp     = tcell.NewRGBColor(249, 230, 106) // Gold token
	RgbPowerUpText = tcell.NewRGBColor(176, 112, 0)   // Dark gold

	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayDim  = tcell.NewRGBColor(8, 14, 10)
)

// itemStyle returns the base foreground for an item type
func itemStyle(typ engine.ItemType) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch typ {
	case engine.ItemBamboo:
		return base.Foreground(RgbBamboo)
	case engine.ItemBomb:
		return base.Foreground(RgbBomb)
	case engine.ItemKnife:
		return base.Foreground(RgbKnife)
	case engine.ItemRock:
		return base.Foreground(RgbRock)
	case engine.ItemPowerUp2x:
		return base.Foreground(RgbPowerUpText).Background(RgbPowerUp).Bold(true)
	}
	return base
}
