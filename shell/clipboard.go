//go:build !js

package shell

import "github.com/atotto/clipboard"

// SystemClipboard writes through the OS clipboard (xclip/xsel/wl-copy on Linux)
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardSupported reports whether a clipboard helper is usable on this host
func ClipboardSupported() bool {
	return !clipboard.Unsupported
}
