package web

// PointerAction is what one frame's pointer sample means to the shell
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerPress
	PointerMove
	PointerRelease
)

// PointerTracker turns per-frame button state into press/move/release edges
// Mouse and touch feed the same tracker; whichever is down wins the frame
type PointerTracker struct {
	held  bool
	lastX float64
}

// Sample records the pointer state for this frame
// x is in playfield units; it is ignored when down is false
func (p *PointerTracker) Sample(down bool, x float64) PointerAction {
	switch {
	case down && !p.held:
		p.held = true
		p.lastX = x
		return PointerPress
	case down && p.held:
		if x == p.lastX {
			return PointerNone
		}
		p.lastX = x
		return PointerMove
	case !down && p.held:
		p.held = false
		return PointerRelease
	}
	return PointerNone
}

// Held reports whether a drag is in progress
func (p *PointerTracker) Held() bool {
	return p.held
}

// Cancel drops a held pointer without reporting a release
func (p *PointerTracker) Cancel() {
	p.held = false
}
