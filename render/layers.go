package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/parameter"
)

// BackgroundLayer paints the playfield and its frame
type BackgroundLayer struct{}

func (BackgroundLayer) Draw(c *Canvas, f Frame) {
	l := c.Layout
	bg := tcell.StyleDefault.Background(RgbBackground)
	c.Fill(l.OriginX, l.OriginY, l.Cols, l.Rows, ' ', bg)

	border := tcell.StyleDefault.Foreground(RgbBorder)
	left, right := l.OriginX-1, l.OriginX+l.Cols
	for row := l.OriginY; row < l.OriginY+l.Rows; row++ {
		c.Set(left, row, '│', border)
		c.Set(right, row, '│', border)
	}
}

// ItemsLayer draws falling items with a per-type glyph
type ItemsLayer struct{}

func (ItemsLayer) Draw(c *Canvas, f Frame) {
	for i := range f.Snap.Items {
		drawItem(c, &f.Snap.Items[i])
	}
}

func drawItem(c *Canvas, it *engine.ItemView) {
	col, row := c.Layout.ToCell(it.X, it.Y)
	style := itemStyle(it.Type)

	switch it.Type {
	case engine.ItemBamboo:
		// Vertical stalk with joints
		h := c.Layout.CellsTall(it.Radius * 2)
		top := row - h/2
		node := style.Foreground(RgbBambooNode)
		for y := 0; y < h; y++ {
			if y%2 == 1 {
				c.SetInPlayfield(col, top+y, '╪', node)
			} else {
				c.SetInPlayfield(col, top+y, '┃', style)
			}
		}
	case engine.ItemPowerUp2x:
		c.SetInPlayfield(col-1, row, '2', style)
		c.SetInPlayfield(col, row, 'x', style)
	case engine.ItemBomb:
		c.SetInPlayfield(col, row-1, '*', style.Foreground(RgbBombFuse))
		c.SetInPlayfield(col, row, '●', style)
	case engine.ItemKnife:
		c.SetInPlayfield(col, row-1, '▮', style.Foreground(RgbKnifeHandle))
		c.SetInPlayfield(col, row, '▼', style)
	case engine.ItemRock:
		c.SetInPlayfield(col-1, row, '▟', style)
		c.SetInPlayfield(col, row, '▙', style)
	default:
		c.SetInPlayfield(col, row, '?', style)
	}
}

// PlayerLayer draws the catcher as a filled block with a face row
type PlayerLayer struct{}

func (PlayerLayer) Draw(c *Canvas, f Frame) {
	p := f.Snap.Player
	l := c.Layout
	w := l.CellsWide(p.Width)
	h := l.CellsTall(p.Height)
	col, row := l.ToCell(p.X-p.Width/2, p.Y-p.Height/2)

	body := tcell.StyleDefault.Background(RgbPlayer).Foreground(RgbPlayerFace)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetInPlayfield(col+x, row+y, ' ', body)
		}
	}

	// Eyes on the upper third
	if w >= 3 && h >= 2 {
		eyeRow := row + h/3
		c.SetInPlayfield(col+w/3, eyeRow, '•', body)
		c.SetInPlayfield(col+w-1-w/3, eyeRow, '•', body)
	}
	if p.Dragging {
		c.SetInPlayfield(col+w/2, row+h-1, '◡', body.Bold(true))
	}
}

// HudLayer draws the score row above the playfield and the status row below
type HudLayer struct{}

func (HudLayer) Draw(c *Canvas, f Frame) {
	l := c.Layout
	bar := tcell.StyleDefault.Background(RgbHudBg).Foreground(RgbHudText)
	c.Fill(0, 0, l.ScreenW, 1, ' ', bar)

	col := c.Text(1, 0, "Score: "+f.HUD.Score, bar.Bold(true))
	multStyle := bar
	if f.Snap.Multiplier > parameter.MultiplierNormal {
		multStyle = bar.Foreground(RgbHudAccent).Bold(true)
	}
	col = c.Text(col+2, 0, f.HUD.Multiplier, multStyle)

	right := f.HUD.SoundLabel
	if f.HUD.CopyStatus != "" {
		right = f.HUD.CopyStatus + "  " + right
	}
	c.Text(l.ScreenW-1-len([]rune(right)), 0, right, bar)

	if l.ScreenH > 1 {
		statusRow := l.ScreenH - 1
		c.Fill(0, statusRow, l.ScreenW, 1, ' ', bar)
		c.TextCentered(statusRow, f.HUD.Status, bar)
	}
}

// OverlayLayer draws the title card before the first start and the game-over card
type OverlayLayer struct{}

func (OverlayLayer) IsVisible(f Frame) bool {
	return f.HUD.Title || f.HUD.GameOver
}

func (OverlayLayer) Draw(c *Canvas, f Frame) {
	l := c.Layout
	title, hint := parameter.OverlayTitle, parameter.OverlayTitleHint
	if f.HUD.GameOver {
		title, hint = parameter.OverlayGameOverTitle, parameter.OverlayGameOverHint
	}

	mid := l.OriginY + l.Rows/2
	dim := tcell.StyleDefault.Background(RgbOverlayDim).Foreground(RgbOverlayText)
	boxW := max(len(hint), len(title)) + 4
	c.Fill((l.ScreenW-boxW)/2, mid-2, boxW, 5, ' ', dim)
	c.TextCentered(mid-1, title, dim.Bold(true))
	c.TextCentered(mid+1, hint, dim)
}

// DebugLayer draws the metrics line on the top row, centred
type DebugLayer struct{}

func (DebugLayer) IsVisible(f Frame) bool {
	return f.Debug != ""
}

func (DebugLayer) Draw(c *Canvas, f Frame) {
	style := tcell.StyleDefault.Background(RgbHudBg).Foreground(RgbBorder)
	c.TextCentered(0, f.Debug, style)
}
