package runtime

import (
	"sync"

	"github.com/vcrobe/visitorcounter/console"
	"github.com/vcrobe/visitorcounter/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl drives one root component into one Target.
// Renders are serialized; a component that calls StateHasChanged from a
// timer or another goroutine never interleaves with a render in progress.
type RendererImpl struct {
	mu        sync.Mutex
	target    Target
	component Component
	mounted   bool
	prevVDOM  *vdom.VNode
}

// NewRenderer creates a renderer writing into target.
func NewRenderer(target Target) *RendererImpl {
	return &RendererImpl{target: target}
}

// SetCurrentComponent sets the component to be rendered. A previously set
// component is destroyed first.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.mu.Lock()
	prev := r.component
	r.component = comp
	r.mounted = false
	r.mu.Unlock()

	if prev != nil && prev != comp {
		if cleaner, ok := prev.(Cleaner); ok {
			r.callOnDestroy(cleaner)
		}
	}
	if comp != nil {
		comp.SetRenderer(r)
	}
}

// ReRender builds the component's tree and hands it to the target.
func (r *RendererImpl) ReRender() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.component == nil {
		return
	}

	if !r.mounted {
		r.mounted = true
		if mounter, ok := r.component.(Mounter); ok {
			r.callOnMount(mounter)
		}
	}

	next := r.callRender(r.component)
	if next == nil {
		return
	}
	if err := r.target.Replace(r.prevVDOM, next); err != nil {
		console.Error("render failed:", err.Error())
		return
	}
	r.prevVDOM = next
}

// Current returns the tree most recently written to the target.
func (r *RendererImpl) Current() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prevVDOM
}

// Destroy detaches the current component and runs its OnDestroy hook.
func (r *RendererImpl) Destroy() {
	r.SetCurrentComponent(nil)
}
