package input

import (
	"github.com/gdamore/tcell/v2"
)

// ColumnMapper converts a screen cell to playfield coordinates
type ColumnMapper interface {
	ColToX(col int) float64
	Contains(col, row int) bool
}

// Machine parses tcell events into Intents
// tcell reports button state rather than press/release, so the machine tracks it
type Machine struct {
	keyTable *KeyTable
	held     bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Held reports whether the primary button is currently down
func (m *Machine) Held() bool {
	return m.held
}

// Reset clears pointer state, used after resize or focus loss
func (m *Machine) Reset() {
	m.held = false
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event, layout ColumnMapper) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		m.Reset()
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev, layout)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		// Newer terminals report Ctrl+letter as a rune with ModCtrl
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			entry, ok := m.keyTable.CtrlRunes[ev.Rune()]
			if !ok {
				return nil
			}
			return &Intent{Type: entry.IntentType}
		}
		entry, ok := m.keyTable.Runes[ev.Rune()]
		if !ok {
			return nil
		}
		return &Intent{Type: entry.IntentType, DX: entry.DX}
	}
	entry, ok := m.keyTable.SpecialKeys[ev.Key()]
	if !ok {
		return nil
	}
	return &Intent{Type: entry.IntentType, DX: entry.DX}
}

func (m *Machine) processMouse(ev *tcell.EventMouse, layout ColumnMapper) *Intent {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.held:
		// Presses outside the playfield (HUD rows, margins) are ignored
		if !layout.Contains(col, row) {
			return nil
		}
		m.held = true
		return &Intent{Type: IntentPointerDown, X: layout.ColToX(col)}

	case down && m.held:
		// Dragging past the side margins keeps steering, clamped by the mapper
		return &Intent{Type: IntentPointerMove, X: layout.ColToX(col)}

	case !down && m.held:
		m.held = false
		return &Intent{Type: IntentPointerUp}
	}
	return nil
}
