package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/input"
	"github.com/lixenwraith/reddy-catch/render"
	"github.com/lixenwraith/reddy-catch/shell"
	"github.com/lixenwraith/reddy-catch/status"
	"github.com/lixenwraith/reddy-catch/vmath"
)

func newTestLoop(t *testing.T) *terminalLoop {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	game := engine.New(engine.Options{Width: 400, Height: 600, Source: vmath.NewScriptedSource(0)})
	return &terminalLoop{
		sh:       shell.New(game, shell.Options{}),
		renderer: render.NewTerminalRenderer(screen, 400, 600),
		clock:    engine.NewFrameClock(engine.NewManualTime(time.Unix(0, 0)), 0.1),
		machine:  input.NewMachine(),
	}
}

// mouse feeds a mouse event at a playfield cell offset from the centre
func mouse(l *terminalLoop, dcol int, buttons tcell.ButtonMask) (col int) {
	layout := l.renderer.Layout()
	col = layout.OriginX + layout.Cols/2 + dcol
	row := layout.OriginY + layout.Rows/2
	l.handleEvent(tcell.NewEventMouse(col, row, buttons, tcell.ModNone))
	return col
}

func TestHandleIntentQuit(t *testing.T) {
	l := newTestLoop(t)
	if l.handleIntent(&input.Intent{Type: input.IntentQuit}) {
		t.Error("quit intent did not stop the loop")
	}
	if !l.handleIntent(nil) {
		t.Error("nil intent stopped the loop")
	}
	if l.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q key did not stop the loop")
	}
}

func TestHandleIntentDragMovesPlayer(t *testing.T) {
	l := newTestLoop(t)
	l.handleIntent(&input.Intent{Type: input.IntentStart})

	l.handleIntent(&input.Intent{Type: input.IntentPointerDown, X: 100})
	l.handleIntent(&input.Intent{Type: input.IntentPointerMove, X: 120})
	if x := l.sh.Game().Player().X; x != 120 {
		t.Errorf("player x = %v, want 120", x)
	}

	l.handleIntent(&input.Intent{Type: input.IntentPointerUp})
	l.handleIntent(&input.Intent{Type: input.IntentPointerMove, X: 300})
	if x := l.sh.Game().Player().X; x != 120 {
		t.Errorf("move after release changed x to %v", x)
	}
}

func TestHandleIntentNudge(t *testing.T) {
	l := newTestLoop(t)
	l.handleIntent(&input.Intent{Type: input.IntentStart})
	start := l.sh.Game().Player().X

	l.handleIntent(&input.Intent{Type: input.IntentNudge, DX: -input.NudgeStep})
	if x := l.sh.Game().Player().X; x != start-input.NudgeStep {
		t.Errorf("nudged x = %v, want %v", x, start-input.NudgeStep)
	}
	if l.sh.Game().Dragging() {
		t.Error("nudge started a drag")
	}
}

func TestNudgeDuringMouseDragKeepsDragging(t *testing.T) {
	l := newTestLoop(t)
	l.handleIntent(&input.Intent{Type: input.IntentStart})

	mouse(l, 0, tcell.Button1)
	l.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !l.sh.Game().Dragging() {
		t.Fatal("nudge ended a held mouse drag")
	}

	col := mouse(l, 3, tcell.Button1)
	want := l.renderer.Layout().ColToX(col)
	if x := l.sh.Game().Player().X; x != want {
		t.Errorf("player x after drag = %v, want %v", x, want)
	}
}

func TestStartDuringMouseDragResumesOnMotion(t *testing.T) {
	l := newTestLoop(t)
	l.handleIntent(&input.Intent{Type: input.IntentStart})

	mouse(l, 0, tcell.Button1)
	l.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if l.sh.Game().Dragging() {
		t.Fatal("restart kept the previous session's drag")
	}

	col := mouse(l, -3, tcell.Button1)
	want := l.renderer.Layout().ColToX(col)
	if x := l.sh.Game().Player().X; x != want {
		t.Errorf("player x after restart drag = %v, want %v", x, want)
	}
	if !l.sh.Game().Dragging() {
		t.Error("held button did not resume the drag")
	}
}

func TestHandleIntentResizeEndsDrag(t *testing.T) {
	l := newTestLoop(t)
	l.handleIntent(&input.Intent{Type: input.IntentStart})
	mouse(l, 0, tcell.Button1)
	l.handleEvent(tcell.NewEventResize(80, 24))
	if l.sh.Game().Dragging() {
		t.Error("drag survived resize")
	}
	if l.machine.Held() {
		t.Error("machine still holds the button after resize")
	}
}

func TestPublishFPSSmoothing(t *testing.T) {
	r := status.NewRegistry()
	publishFPS(r, 0) // First tick after start carries no time
	if r.TotalCount() != 0 {
		t.Fatal("zero delta published a rate")
	}

	publishFPS(r, 0.25)
	if got := r.Floats.Get(status.KeyFPS).Get(); got != 4 {
		t.Fatalf("seeded fps = %v, want 4", got)
	}
	publishFPS(r, 0.125)
	if got := r.Floats.Get(status.KeyFPS).Get(); got <= 4 || got >= 8 {
		t.Errorf("smoothed fps = %v, want between 4 and 8", got)
	}
}
