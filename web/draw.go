package web

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/shell"
)

var (
	colBackground = color.NRGBA{18, 38, 24, 255}
	colBar        = color.NRGBA{10, 20, 12, 255}
	colText       = color.NRGBA{235, 235, 235, 255}
	colAccent     = color.NRGBA{249, 230, 106, 255}
	colButton     = color.NRGBA{40, 70, 48, 255}
	colOverlay    = color.NRGBA{0, 0, 0, 170}

	colPlayer     = color.NRGBA{255, 123, 74, 255}
	colPlayerFace = color.NRGBA{59, 31, 20, 255}

	colBamboo      = color.NRGBA{46, 204, 113, 255}
	colBambooNode  = color.NRGBA{31, 127, 69, 255}
	colBomb        = color.NRGBA{34, 34, 34, 255}
	colBombFuse    = color.NRGBA{255, 170, 0, 255}
	colKnife       = color.NRGBA{216, 216, 216, 255}
	colKnifeHandle = color.NRGBA{139, 90, 43, 255}
	colRock        = color.NRGBA{122, 122, 122, 255}
	colRockShade   = color.NRGBA{90, 90, 90, 255}
	colPowerUp     = color.NRGBA{249, 230, 106, 255}
	colPowerUpText = color.NRGBA{120, 80, 0, 255}
)

// basicfont.Face7x13 advance and ascent
const (
	glyphW  = 7
	glyphAs = 10
)

func textWidth(s string) int {
	return len(s) * glyphW
}

func drawBackground(screen *ebiten.Image, w, h float64) {
	screen.Fill(colBar)
	vector.DrawFilledRect(screen, 0, parameter.ToolbarHeight, float32(w), float32(h), colBackground, false)
}

// toScreen shifts a playfield point below the toolbar
func toScreen(x, y float64) (float32, float32) {
	return float32(x), float32(y + parameter.ToolbarHeight)
}

func drawItem(screen *ebiten.Image, it *engine.ItemView) {
	x, y := toScreen(it.X, it.Y)
	r := float32(it.Radius)

	switch it.Type {
	case engine.ItemBamboo:
		w := r * 0.7
		vector.DrawFilledRect(screen, x-w/2, y-r, w, 2*r, colBamboo, true)
		for _, dy := range []float32{-r / 3, r / 3} {
			vector.DrawFilledRect(screen, x-w/2, y+dy-1, w, 2, colBambooNode, true)
		}
	case engine.ItemPowerUp2x:
		vector.DrawFilledCircle(screen, x, y, r, colPowerUp, true)
		text.Draw(screen, "2x", basicfont.Face7x13, int(x)-textWidth("2x")/2, int(y)+glyphAs/2, colPowerUpText)
	case engine.ItemBomb:
		vector.DrawFilledCircle(screen, x, y, r, colBomb, true)
		vector.StrokeLine(screen, x, y-r, x+r/2, y-r-r/2, 2, colKnifeHandle, true)
		vector.DrawFilledCircle(screen, x+r/2, y-r-r/2, 3, colBombFuse, true)
	case engine.ItemKnife:
		vector.DrawFilledRect(screen, x-r/4, y-r, r/2, r*0.6, colKnifeHandle, true)
		vector.DrawFilledRect(screen, x-r/3, y-r*0.4, r*2/3, r*1.4, colKnife, true)
	case engine.ItemRock:
		vector.DrawFilledCircle(screen, x, y, r, colRock, true)
		vector.DrawFilledCircle(screen, x-r/3, y-r/3, r/3, colRockShade, true)
	default:
		vector.DrawFilledCircle(screen, x, y, r, colText, true)
	}
}

func drawPlayer(screen *ebiten.Image, p engine.Player) {
	x, y := toScreen(p.X-p.Width/2, p.Y-p.Height/2)
	w, h := float32(p.Width), float32(p.Height)
	vector.DrawFilledRect(screen, x, y, w, h, colPlayer, true)

	eyeY := y + h/3
	vector.DrawFilledCircle(screen, x+w/3, eyeY, 4, colPlayerFace, true)
	vector.DrawFilledCircle(screen, x+2*w/3, eyeY, 4, colPlayerFace, true)
	if p.Dragging {
		vector.StrokeLine(screen, x+w/3, y+2*h/3, x+2*w/3, y+2*h/3, 3, colPlayerFace, true)
	}
}

func drawToolbar(screen *ebiten.Image, tb Toolbar, hud shell.HUD, w float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(tb.Height), colBar, false)

	baseline := int(tb.Height)/2 + glyphAs/2
	score := "Score: " + hud.Score
	text.Draw(screen, score, basicfont.Face7x13, 8, baseline, colText)
	multCol := colText
	if hud.Multiplier != "x1" {
		multCol = colAccent
	}
	text.Draw(screen, hud.Multiplier, basicfont.Face7x13, 8+textWidth(score)+12, baseline, multCol)

	for _, b := range tb.Buttons {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colButton, true)
		label := buttonLabel(b.ID, hud)
		tx := int(b.X+b.W/2) - textWidth(label)/2
		text.Draw(screen, label, basicfont.Face7x13, tx, int(b.Y+b.H/2)+glyphAs/2, colText)
	}
}

func buttonLabel(id ButtonID, hud shell.HUD) string {
	switch id {
	case ButtonStart:
		if hud.Title {
			return "Start"
		}
		return "Restart"
	case ButtonSound:
		return hud.SoundLabel
	case ButtonCopy:
		if hud.CopyStatus != "" {
			return hud.CopyStatus
		}
		return "Copy"
	}
	return ""
}

func drawStatus(screen *ebiten.Image, hud shell.HUD, w, h float64) {
	top := parameter.ToolbarHeight + h
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), parameter.StatusBarHeight, colBar, false)
	x := (int(w) - textWidth(hud.Status)) / 2
	text.Draw(screen, hud.Status, basicfont.Face7x13, x, int(top+parameter.StatusBarHeight/2)+glyphAs/2, colText)
}

func drawOverlay(screen *ebiten.Image, hud shell.HUD, w, h float64) {
	vector.DrawFilledRect(screen, 0, parameter.ToolbarHeight, float32(w), float32(h), colOverlay, false)

	title, hint := parameter.OverlayTitle, parameter.OverlayTitleHint
	if hud.GameOver {
		title, hint = parameter.OverlayGameOverTitle, parameter.OverlayGameOverHint
	}
	mid := int(parameter.ToolbarHeight + h/2)
	text.Draw(screen, title, basicfont.Face7x13, (int(w)-textWidth(title))/2, mid-8, colAccent)
	text.Draw(screen, hint, basicfont.Face7x13, (int(w)-textWidth(hint))/2, mid+12, colText)
}
