package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reddy-catch/parameter"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// TerminalRenderer draws frames onto a tcell screen through priority-ordered layers
type TerminalRenderer struct {
	screen   tcell.Screen
	canvas   Canvas
	playW    float64
	playH    float64
	layers   []layerEntry
	regCount int
}

// NewTerminalRenderer creates a renderer for a playW x playH field with the default layer set
func NewTerminalRenderer(screen tcell.Screen, playW, playH float64) *TerminalRenderer {
	if playW <= 0 {
		playW = parameter.DefaultPlayfieldWidth
	}
	if playH <= 0 {
		playH = parameter.DefaultPlayfieldHeight
	}
	r := &TerminalRenderer{
		screen: screen,
		playW:  playW,
		playH:  playH,
		layers: make([]layerEntry, 0, 8),
	}
	r.canvas.screen = screen
	w, h := screen.Size()
	r.canvas.Layout = NewLayout(w, h, playW, playH)

	r.Register(BackgroundLayer{}, PriorityBackground)
	r.Register(ItemsLayer{}, PriorityItems)
	r.Register(PlayerLayer{}, PriorityPlayer)
	r.Register(HudLayer{}, PriorityUI)
	r.Register(DebugLayer{}, PriorityUI)
	r.Register(OverlayLayer{}, PriorityOverlay)
	return r
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (r *TerminalRenderer) Register(layer Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    layer,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	pos := len(r.layers)
	for i, e := range r.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// Resize recomputes the layout and syncs the terminal
func (r *TerminalRenderer) Resize(width, height int) {
	r.canvas.Layout = NewLayout(width, height, r.playW, r.playH)
	r.screen.Sync()
}

// Layout returns the current cell mapping, used by input to translate mouse columns
func (r *TerminalRenderer) Layout() Layout {
	return r.canvas.Layout
}

// Render executes the pipeline: clear, draw all visible layers, show
func (r *TerminalRenderer) Render(f Frame) {
	if f.Snap == nil {
		return
	}
	r.screen.Clear()
	for _, e := range r.layers {
		if vt, ok := e.layer.(VisibilityToggle); ok && !vt.IsVisible(f) {
			continue
		}
		e.layer.Draw(&r.canvas, f)
	}
	r.screen.Show()
}

// SyncSize resizes to the screen's current dimensions
func (r *TerminalRenderer) SyncSize() {
	w, h := r.screen.Size()
	r.Resize(w, h)
}
