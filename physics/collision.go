package physics

import "math"

// Circle is a falling item's hit area
type Circle struct {
	X, Y   float64
	Radius float64
}

// Rect is an axis-aligned box described by its centre
type Rect struct {
	CX, CY        float64
	Width, Height float64
}

// Collides reports whether c overlaps r. Boundaries are closed: touching counts
//
// Closest-point test split in three stages: far rejection per axis, overlap when
// the centre lies within a half-extent on either axis, then corner distance
func Collides(c Circle, r Rect) bool {
	distX := math.Abs(c.X - r.CX)
	distY := math.Abs(c.Y - r.CY)
	halfW := r.Width / 2
	halfH := r.Height / 2

	if distX > halfW+c.Radius {
		return false
	}
	if distY > halfH+c.Radius {
		return false
	}

	if distX <= halfW {
		return true
	}
	if distY <= halfH {
		return true
	}

	dx := distX - halfW
	dy := distY - halfH
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
