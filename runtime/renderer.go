package runtime

import "github.com/vcrobe/visitorcounter/vdom"

// Renderer defines the runtime operations a component may call.
// This interface has NO build tags so that WASM, terminal and test
// renderers share it.
type Renderer interface {
	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}

// Target is the display region a renderer writes into. Replace receives
// the previous tree and the full new tree; implementations must not keep
// any output derived from prev.
type Target interface {
	Replace(prev, next *vdom.VNode) error
}
