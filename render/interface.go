package render

import (
	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/shell"
)

// Frame is everything one render pass may read
type Frame struct {
	Snap  *engine.Snapshot
	HUD   shell.HUD
	Debug string // Metrics line, drawn only when non-empty
}

// Renderer is the presentation capability the game loop calls after each update
type Renderer interface {
	Render(f Frame)
}

// Layer is one draw pass inside the terminal renderer
type Layer interface {
	Draw(c *Canvas, f Frame)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible(f Frame) bool
}
