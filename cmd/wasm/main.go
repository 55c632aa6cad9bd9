//go:build js && wasm

// Command wasm is the browser widget runtime. Build it with
//
//	GOOS=js GOARCH=wasm go build -o widgets.wasm ./cmd/wasm
//
// and point wasm_dir at the directory holding widgets.wasm and a copy of
// wasm_exec.js from the Go distribution.
package main

import (
	"syscall/js"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wayfindr/studio/internal/widget/dom"
)

func main() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}

	page := dom.Mount(log.Named("widgets"))

	unload := make(chan struct{})
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		close(unload)
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", cb, map[string]any{"once": true})

	<-unload
	page.Close()
	cb.Release()
	_ = log.Sync()
}
