package input

import "github.com/gdamore/tcell/v2"

// NudgeStep is the playfield distance one arrow press moves the catcher
const NudgeStep = 20.0

// KeyEntry describes a key binding
type KeyEntry struct {
	IntentType IntentType
	DX         float64
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry

	// Rune bindings with Ctrl held
	CtrlRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyEnter:  {IntentType: IntentStart},
			tcell.KeyLeft:   {IntentType: IntentNudge, DX: -NudgeStep},
			tcell.KeyRight:  {IntentType: IntentNudge, DX: NudgeStep},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			' ': {IntentType: IntentStart},
			's': {IntentType: IntentStart},
			'm': {IntentType: IntentToggleSound},
			'c': {IntentType: IntentCopyContract},
			'h': {IntentType: IntentNudge, DX: -NudgeStep},
			'l': {IntentType: IntentNudge, DX: NudgeStep},
		},
		CtrlRunes: map[rune]KeyEntry{
			'c': {IntentType: IntentQuit},
			'q': {IntentType: IntentQuit},
		},
	}
}
