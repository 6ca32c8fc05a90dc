package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeLayout maps columns 10..49 onto a 400-wide field, rows 1..20
type fakeLayout struct{}

func (fakeLayout) ColToX(col int) float64 {
	x := float64(col-10) * 10
	if x < 0 {
		return 0
	}
	if x > 400 {
		return 400
	}
	return x
}

func (fakeLayout) Contains(col, row int) bool {
	return col >= 10 && col < 50 && row >= 1 && row <= 20
}

func TestKeyBindings(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"enter starts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentStart},
		{"space starts", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentStart},
		{"s starts", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentStart},
		{"m toggles sound", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleSound},
		{"c copies", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), IntentCopyContract},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"ctrl-q rune quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), IntentQuit},
		{"left nudges", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentNudge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev, fakeLayout{})
			if got == nil {
				t.Fatalf("got nil intent")
			}
			if got.Type != tt.want {
				t.Errorf("intent = %d, want %d", got.Type, tt.want)
			}
		})
	}
}

func TestNudgeDirection(t *testing.T) {
	m := NewMachine()
	left := m.Process(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), fakeLayout{})
	right := m.Process(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), fakeLayout{})
	if left.DX != -NudgeStep || right.DX != NudgeStep {
		t.Errorf("nudge dx = %v / %v", left.DX, right.DX)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewMachine()
	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), fakeLayout{}); got != nil {
		t.Errorf("unbound key produced %+v", got)
	}
}

func TestPointerDragSequence(t *testing.T) {
	m := NewMachine()

	down := m.Process(tcell.NewEventMouse(20, 5, tcell.Button1, tcell.ModNone), fakeLayout{})
	if down == nil || down.Type != IntentPointerDown || down.X != 100 {
		t.Fatalf("press = %+v", down)
	}
	if !m.Held() {
		t.Fatal("button not tracked as held")
	}

	move := m.Process(tcell.NewEventMouse(30, 6, tcell.Button1, tcell.ModNone), fakeLayout{})
	if move == nil || move.Type != IntentPointerMove || move.X != 200 {
		t.Fatalf("drag = %+v", move)
	}

	// Dragging past the margin clamps rather than releasing
	edge := m.Process(tcell.NewEventMouse(70, 6, tcell.Button1, tcell.ModNone), fakeLayout{})
	if edge == nil || edge.Type != IntentPointerMove || edge.X != 400 {
		t.Fatalf("edge drag = %+v", edge)
	}

	up := m.Process(tcell.NewEventMouse(30, 6, tcell.ButtonNone, tcell.ModNone), fakeLayout{})
	if up == nil || up.Type != IntentPointerUp {
		t.Fatalf("release = %+v", up)
	}
	if m.Held() {
		t.Error("button still held after release")
	}

	// Motion without a button is not a drag
	if got := m.Process(tcell.NewEventMouse(25, 6, tcell.ButtonNone, tcell.ModNone), fakeLayout{}); got != nil {
		t.Errorf("hover produced %+v", got)
	}
}

func TestPressOutsidePlayfieldIgnored(t *testing.T) {
	m := NewMachine()
	if got := m.Process(tcell.NewEventMouse(20, 0, tcell.Button1, tcell.ModNone), fakeLayout{}); got != nil {
		t.Errorf("press on HUD row produced %+v", got)
	}
	if m.Held() {
		t.Error("press outside playfield started a drag")
	}
}

func TestResizeClearsHeld(t *testing.T) {
	m := NewMachine()
	m.Process(tcell.NewEventMouse(20, 5, tcell.Button1, tcell.ModNone), fakeLayout{})
	got := m.Process(tcell.NewEventResize(100, 30), fakeLayout{})
	if got == nil || got.Type != IntentResize {
		t.Fatalf("resize = %+v", got)
	}
	if m.Held() {
		t.Error("held survived resize")
	}
}
