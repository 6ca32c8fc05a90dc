//go:build js

package shell

import (
	"errors"
	"fmt"
	"syscall/js"
)

// SystemClipboard writes through navigator.clipboard in the browser
type SystemClipboard struct{}

func clipboardAPI() (js.Value, error) {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() {
		return js.Value{}, errors.New("navigator unavailable")
	}
	cb := nav.Get("clipboard")
	if cb.IsUndefined() {
		return js.Value{}, errors.New("clipboard api unavailable")
	}
	return cb, nil
}

// WriteAll starts the write without waiting for it to settle
func (SystemClipboard) WriteAll(text string) error {
	cb, err := clipboardAPI()
	if err != nil {
		return err
	}
	cb.Call("writeText", text)
	return nil
}

// WriteAllAsync reports the settled writeText promise to done
func (SystemClipboard) WriteAllAsync(text string, done func(error)) {
	cb, err := clipboardAPI()
	if err != nil {
		done(err)
		return
	}

	var onOK, onErr js.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}
	onOK = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		done(nil)
		return nil
	})
	onErr = js.FuncOf(func(_ js.Value, args []js.Value) any {
		release()
		reason := "rejected"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		done(fmt.Errorf("writeText: %s", reason))
		return nil
	})
	cb.Call("writeText", text).Call("then", onOK, onErr)
}

func ClipboardSupported() bool {
	_, err := clipboardAPI()
	return err == nil
}
