package render

import (
	"math"

	"github.com/lixenwraith/reddy-catch/vmath"
)

// Terminal cells are roughly twice as tall as they are wide
const cellAspect = 2.0

// Layout maps playfield units onto terminal cells
// Row 0 holds the HUD and the last row holds status; the playfield sits between, centred
type Layout struct {
	ScreenW, ScreenH int
	PlayW, PlayH     float64

	OriginX, OriginY int     // Top-left cell of the playfield
	Cols, Rows       int     // Playfield size in cells
	scaleX, scaleY   float64 // Cells per unit
}

// NewLayout fits a playW x playH field into a screenW x screenH terminal
func NewLayout(screenW, screenH int, playW, playH float64) Layout {
	l := Layout{ScreenW: screenW, ScreenH: screenH, PlayW: playW, PlayH: playH}

	availRows := screenH - 2
	if availRows < 1 {
		availRows = 1
	}
	availCols := screenW - 2
	if availCols < 1 {
		availCols = 1
	}

	l.scaleY = float64(availRows) / playH
	l.scaleX = l.scaleY * cellAspect
	if playW*l.scaleX > float64(availCols) {
		l.scaleX = float64(availCols) / playW
		l.scaleY = l.scaleX / cellAspect
	}

	l.Cols = max(int(playW*l.scaleX+1e-9), 1)
	l.Rows = max(int(playH*l.scaleY+1e-9), 1)
	l.OriginX = (screenW - l.Cols) / 2
	l.OriginY = 1 + (availRows-l.Rows)/2
	return l
}

// ToCell converts a playfield point to a screen cell
func (l Layout) ToCell(x, y float64) (col, row int) {
	col = l.OriginX + int(math.Floor(x*l.scaleX))
	row = l.OriginY + int(math.Floor(y*l.scaleY))
	return col, row
}

// CellsWide converts a playfield length to a cell count along x, at least 1
func (l Layout) CellsWide(w float64) int {
	return max(int(w*l.scaleX+0.5), 1)
}

// CellsTall converts a playfield length to a cell count along y, at least 1
func (l Layout) CellsTall(h float64) int {
	return max(int(h*l.scaleY+0.5), 1)
}

// ColToX converts a screen column to a playfield x clamped to the playfield bounds
// Columns map to their cell centre
func (l Layout) ColToX(col int) float64 {
	x := (float64(col-l.OriginX) + 0.5) / l.scaleX
	return vmath.Clamp(x, 0, l.PlayW)
}

// Contains reports whether a screen cell lies inside the playfield
func (l Layout) Contains(col, row int) bool {
	return col >= l.OriginX && col < l.OriginX+l.Cols &&
		row >= l.OriginY && row < l.OriginY+l.Rows
}
