//go:build js && wasm

package console

import (
	"syscall/js"
)

// Debug writes to the browser console at debug level.
func Debug(args ...any) {
	call("debug", args)
}

// Log writes to the browser console at info level.
func Log(args ...any) {
	call("log", args)
}

// Warn writes to the browser console at warning level.
func Warn(args ...any) {
	call("warn", args)
}

// Error writes to the browser console at error level.
func Error(args ...any) {
	call("error", args)
}

func call(method string, args []any) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	// syscall/js only converts a fixed set of Go types.
	for i, a := range args {
		switch v := a.(type) {
		case error:
			args[i] = v.Error()
		case interface{ String() string }:
			args[i] = v.String()
		}
	}
	console.Call(method, args...)
}
