package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize // Terminal resize event

	// Session
	IntentStart        // Enter, Space, s
	IntentToggleSound  // m
	IntentCopyContract // c

	// Pointer
	IntentPointerDown // Button pressed inside the playfield
	IntentPointerMove // Motion while the button is held
	IntentPointerUp   // Button released or pointer left the playfield

	// Keyboard steering
	IntentNudge // Left/Right arrows, h/l
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
	X    float64 // Playfield x for pointer intents
	DX   float64 // Offset for nudge intents
}
