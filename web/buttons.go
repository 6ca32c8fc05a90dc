package web

import "github.com/lixenwraith/reddy-catch/parameter"

// ButtonID names a toolbar button
type ButtonID uint8

const (
	ButtonNone ButtonID = iota
	ButtonStart
	ButtonSound
	ButtonCopy
)

// Button is a clickable toolbar rectangle in screen pixels
type Button struct {
	ID         ButtonID
	X, Y, W, H float64
}

func (b Button) contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Toolbar is the strip above the playfield holding the host buttons
type Toolbar struct {
	Height  float64
	Buttons []Button
}

type slot struct {
	id ButtonID
	w  float64
}

// NewToolbar lays out Start, Sound and Copy right-aligned in a strip of the given width
// Copy is omitted when no contract address is configured
func NewToolbar(width float64, withCopy bool) Toolbar {
	pad := parameter.ButtonPadding
	slots := []slot{{ButtonStart, parameter.ButtonStartW}, {ButtonSound, parameter.ButtonSoundW}}
	if withCopy {
		slots = append(slots, slot{ButtonCopy, parameter.ButtonCopyW})
	}

	tb := Toolbar{Height: parameter.ToolbarHeight}
	x := width - pad
	for i := len(slots) - 1; i >= 0; i-- {
		x -= slots[i].w
		tb.Buttons = append(tb.Buttons, Button{
			ID: slots[i].id,
			X:  x,
			Y:  pad,
			W:  slots[i].w,
			H:  parameter.ToolbarHeight - 2*pad,
		})
		x -= pad
	}
	return tb
}

// HitTest returns the button under (x, y), or ButtonNone
func (t Toolbar) HitTest(x, y float64) ButtonID {
	for _, b := range t.Buttons {
		if b.contains(x, y) {
			return b.ID
		}
	}
	return ButtonNone
}

// Contains reports whether y lies in the toolbar strip
func (t Toolbar) Contains(y float64) bool {
	return y >= 0 && y < t.Height
}
