package parameter

import "time"

// Status Messages
const (
	StatusWelcome           = "Catch bamboo, dodge danger. GLHF."
	StatusMultiplierOn      = "2x activated!"
	StatusMultiplierExpired = "Back to normal points."
	StatusGameOver          = "Game over! Press Start / Restart."
	StatusTitle             = "Press Start to play."
)

// Overlay Text
const (
	OverlayGameOverTitle = "GAME OVER"
	OverlayGameOverHint  = "Press Start / Restart to play again"
	OverlayTitle         = "REDDY CATCH"
	OverlayTitleHint     = "Drag to move. Enter to start."
)

// Copy Contract Address
const (
	CopyStatusOK      = "Copied!"
	CopyStatusFailed  = "Copy failed."
	CopyStatusTimeout = 1500 * time.Millisecond
)

// Sound Toggle Labels
const (
	SoundLabelOn  = "Sound: on"
	SoundLabelOff = "Sound: off"
)

// Web Edition Layout (pixels at scale 1)
const (
	ToolbarHeight   = 32.0
	StatusBarHeight = 22.0
	ButtonPadding   = 4.0
	ButtonStartW    = 56.0
	ButtonSoundW    = 84.0
	ButtonCopyW     = 48.0
)
