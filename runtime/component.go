package runtime

import "github.com/vcrobe/visitorcounter/vdom"

// Component interface defines the structure for all components.
// This interface has NO build tags, making it available to both WASM and native builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the runtime to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Mounter is implemented by components that need a hook before their first render.
// OnMount runs inside the render cycle and must not call StateHasChanged.
type Mounter interface {
	OnMount()
}

// Cleaner is implemented by components holding timers or goroutines that
// must stop when the component leaves its target.
type Cleaner interface {
	OnDestroy()
}
