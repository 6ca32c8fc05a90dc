package render

import "github.com/gdamore/tcell/v2"

// Canvas is the clipped drawing surface handed to layers
type Canvas struct {
	screen tcell.Screen
	Layout Layout
}

// Set draws one cell, silently dropping anything off screen
func (c *Canvas) Set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= c.Layout.ScreenW || row >= c.Layout.ScreenH {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// SetInPlayfield draws one cell only if it lies inside the playfield rectangle
func (c *Canvas) SetInPlayfield(col, row int, r rune, style tcell.Style) {
	if !c.Layout.Contains(col, row) {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// Text writes s starting at col; returns the column after the last rune
func (c *Canvas) Text(col, row int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(col, row, r, style)
		col++
	}
	return col
}

// TextCentered writes s centred on the screen width
func (c *Canvas) TextCentered(row int, s string, style tcell.Style) {
	col := (c.Layout.ScreenW - len([]rune(s))) / 2
	c.Text(col, row, s, style)
}

// Fill paints a rectangle
func (c *Canvas) Fill(col, row, w, h int, r rune, style tcell.Style) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			c.Set(x, y, r, style)
		}
	}
}
