//go:build !(js && wasm)

package events

// OnDOMReady runs fn immediately outside the browser; there is no document to wait for.
func OnDOMReady(fn func()) {
	fn()
}
