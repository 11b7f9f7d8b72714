//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/visitorcounter/console"
	"github.com/vcrobe/visitorcounter/vdom"
)

// callOnMount invokes the OnMount lifecycle method in production mode.
// In production mode, panics are recovered and logged so the host page keeps working.
func (r *RendererImpl) callOnMount(mounter Mounter) {
	defer recoverAndLog("OnMount")
	mounter.OnMount()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner) {
	defer recoverAndLog("OnDestroy")
	cleaner.OnDestroy()
}

// callRender invokes Render in production mode. A panicking render yields
// nil and the target keeps its previous content.
func (r *RendererImpl) callRender(comp Component) (node *vdom.VNode) {
	defer recoverAndLog("Render")
	return comp.Render(r)
}

func recoverAndLog(op string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("ERROR: %s panic in component: %v", op, rec))
	}
}
