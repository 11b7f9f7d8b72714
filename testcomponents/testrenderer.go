// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"sync"

	"github.com/vcrobe/visitorcounter/runtime"
	"github.com/vcrobe/visitorcounter/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the latest tree, its markup, and every tree rendered so far
type TestRenderer struct {
	mu        sync.Mutex
	component runtime.Component
	current   *vdom.VNode
	history   []*vdom.VNode
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs an explicit render and returns the tree.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.GetCurrentVDOM()
}

// ReRender is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = r.component.Render(r)
	r.history = append(r.history, r.current)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Markup returns the most recent tree serialized as HTML.
func (r *TestRenderer) Markup() string {
	return vdom.MustHTML(r.GetCurrentVDOM())
}

// History returns every tree rendered so far, oldest first.
func (r *TestRenderer) History() []*vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*vdom.VNode(nil), r.history...)
}

// Renders returns how many times the component has been rendered.
func (r *TestRenderer) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}
