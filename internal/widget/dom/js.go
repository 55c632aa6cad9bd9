//go:build js && wasm

package dom

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"syscall/js"
	"time"

	"github.com/wayfindr/studio/internal/widget/geom"
	"github.com/wayfindr/studio/internal/widget/timing"
)

var ErrNoClipboard = errors.New("dom: clipboard API unavailable")

// AnimationFrames schedules callbacks with requestAnimationFrame.
type AnimationFrames struct{}

func (AnimationFrames) RequestFrame(f func()) func() {
	var once sync.Once
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		once.Do(cb.Release)
		f()
		return nil
	})
	id := js.Global().Call("requestAnimationFrame", cb)
	return func() {
		js.Global().Call("cancelAnimationFrame", id)
		once.Do(cb.Release)
	}
}

// ClipboardWriter writes through navigator.clipboard. WriteText blocks on
// the returned promise, so it must not be called from a JS callback
// directly.
type ClipboardWriter struct{}

func (ClipboardWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clip := js.Global().Get("navigator").Get("clipboard")
	if clip.IsUndefined() || clip.IsNull() {
		return ErrNoClipboard
	}

	done := make(chan error, 1)
	resolve := js.FuncOf(func(js.Value, []js.Value) any {
		done <- nil
		return nil
	})
	reject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		done <- fmt.Errorf("clipboard write: %s", msg)
		return nil
	})
	release := func() {
		resolve.Release()
		reject.Release()
	}

	clip.Call("writeText", text).Call("then", resolve, reject)
	select {
	case err := <-done:
		release()
		return err
	case <-ctx.Done():
		// The promise still settles later and needs its callbacks.
		go func() {
			<-done
			release()
		}()
		return ctx.Err()
	}
}

func queryAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func query(root js.Value, selector string) (js.Value, bool) {
	el := root.Call("querySelector", selector)
	return el, !el.IsNull()
}

func rect(el js.Value) geom.Rect {
	r := el.Call("getBoundingClientRect")
	return geom.Rect{
		X:      r.Get("left").Float(),
		Y:      r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func viewport() (width, height float64) {
	win := js.Global()
	return win.Get("innerWidth").Float(), win.Get("innerHeight").Float()
}

func data(el js.Value, key string) string {
	v := el.Get("dataset").Get(key)
	if v.IsUndefined() {
		return ""
	}
	return v.String()
}

func dataInt(el js.Value, key string, def int) int {
	n, err := strconv.Atoi(data(el, key))
	if err != nil {
		return def
	}
	return n
}

func dataMillis(el js.Value, key string) time.Duration {
	return time.Duration(dataInt(el, key, 0)) * time.Millisecond
}

func toggleClass(el js.Value, name string, on bool) {
	el.Get("classList").Call("toggle", name, on)
}

func setStyle(el js.Value, prop, value string) {
	el.Get("style").Call("setProperty", prop, value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// touchCapable reports whether the device has a touch screen.
func touchCapable() bool {
	win := js.Global()
	if !win.Get("ontouchstart").IsUndefined() {
		return true
	}
	return win.Get("navigator").Get("maxTouchPoints").Int() > 0
}

// listen adds an event listener and returns a handle that removes it.
func listen(target js.Value, event string, fn func(ev js.Value)) *timing.Handle {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	opts := map[string]any{"passive": true}
	target.Call("addEventListener", event, cb, opts)
	return timing.NewHandle(func() {
		target.Call("removeEventListener", event, cb, opts)
		cb.Release()
	})
}
