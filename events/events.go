//go:build js && wasm

package events

import "syscall/js"

// OnDOMReady calls fn once the document has been parsed. If that already
// happened, fn runs on a new goroutine right away. fn always runs off the
// JS callback so it may block.
func OnDOMReady(fn func()) {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		go fn()
		return
	}

	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		doc.Call("removeEventListener", "DOMContentLoaded", cb)
		cb.Release()
		go fn()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", cb)
}
