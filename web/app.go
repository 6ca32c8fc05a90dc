// Package web is the ebiten presentation adapter used for the desktop window and the wasm build
package web

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/shell"
)

// App implements ebiten.Game around a shell
type App struct {
	shell   *shell.Shell
	clock   *engine.FrameClock
	toolbar Toolbar
	pointer PointerTracker

	playW, playH float64
	toolbarHeld  bool // Current press started on the toolbar, not the playfield

	touchIDs []ebiten.TouchID
}

// NewApp builds the adapter; the logical screen is the playfield plus toolbar and status strips
func NewApp(sh *shell.Shell, clock engine.TimeProvider) *App {
	w, h := sh.Game().Size()
	return &App{
		shell:   sh,
		clock:   engine.NewFrameClock(clock, parameter.MaxFrameDelta),
		toolbar: NewToolbar(w, sh.ContractAddress() != ""),
		playW:   w,
		playH:   h,
	}
}

// ScreenSize returns the logical size in pixels at scale 1
func (a *App) ScreenSize() (int, int) {
	return int(a.playW), int(parameter.ToolbarHeight + a.playH + parameter.StatusBarHeight)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}

func (a *App) Update() error {
	a.handleKeys()
	a.handlePointer()
	a.shell.Frame(a.clock.Tick())
	return nil
}

func (a *App) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.start()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.shell.ToggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		a.shell.CopyContractAddress()
	}
}

func (a *App) start() {
	a.pointer.Cancel()
	a.shell.Start()
	a.clock.Restart()
}

// readPointer returns the primary pointer in screen pixels; touch wins over mouse
func (a *App) readPointer() (down bool, x, y float64) {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	if len(a.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(a.touchIDs[0])
		return true, float64(tx), float64(ty)
	}
	mx, my := ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), float64(mx), float64(my)
}

func (a *App) handlePointer() {
	down, x, y := a.readPointer()

	if !down {
		a.toolbarHeld = false
	} else if a.toolbarHeld {
		return
	} else if !a.pointer.Held() && a.toolbar.Contains(y) {
		a.toolbarHeld = true
		a.click(a.toolbar.HitTest(x, y))
		return
	}

	// Leaving the playfield ends the drag the same way a release does
	py := y - parameter.ToolbarHeight
	inside := x >= 0 && x <= a.playW && py >= 0 && py <= a.playH
	if a.pointer.Held() && !inside {
		down = false
	}
	if down && !a.pointer.Held() && !inside {
		return
	}

	switch a.pointer.Sample(down, x) {
	case PointerPress:
		a.shell.Press(x)
	case PointerMove:
		a.shell.Move(x)
	case PointerRelease:
		a.shell.Release()
	}
}

func (a *App) click(id ButtonID) {
	switch id {
	case ButtonStart:
		a.start()
	case ButtonSound:
		a.shell.ToggleSound()
	case ButtonCopy:
		a.shell.CopyContractAddress()
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	snap := a.shell.Snapshot()
	hud := a.shell.HUD()

	drawBackground(screen, a.playW, a.playH)
	for i := range snap.Items {
		drawItem(screen, &snap.Items[i])
	}
	drawPlayer(screen, snap.Player)
	drawToolbar(screen, a.toolbar, hud, a.playW)
	drawStatus(screen, hud, a.playW, a.playH)
	if hud.Title || hud.GameOver {
		drawOverlay(screen, hud, a.playW, a.playH)
	}
}
