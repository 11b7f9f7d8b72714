//go:build dev

package runtime

import "github.com/vcrobe/visitorcounter/vdom"

// callOnMount invokes the OnMount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (r *RendererImpl) callOnMount(mounter Mounter) {
	mounter.OnMount()
}

// callOnDestroy invokes the OnDestroy lifecycle method in development mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner) {
	cleaner.OnDestroy()
}

// callRender invokes Render in development mode.
func (r *RendererImpl) callRender(comp Component) *vdom.VNode {
	return comp.Render(r)
}
