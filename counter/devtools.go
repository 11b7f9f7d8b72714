package counter

import (
	"math/rand/v2"

	"github.com/vcrobe/visitorcounter/runtime"
	"github.com/vcrobe/visitorcounter/vdom"
)

// SimulatedErrorMessage is shown by Controls.SimulateError.
const SimulatedErrorMessage = "Simulated error for testing"

// Controls forces the widget into each display state by hand.
type Controls interface {
	SimulateSuccess()
	SimulateError()
	SimulateLoading()
}

// Controls returns the manual test controls bound to this widget.
func (w *Widget) Controls() Controls {
	return widgetControls{w: w}
}

type widgetControls struct {
	w *Widget
}

func (c widgetControls) SimulateSuccess() {
	c.w.Show(Success(rand.Int64N(1000)))
}

func (c widgetControls) SimulateError() {
	c.w.Show(Failure(SimulatedErrorMessage))
}

func (c widgetControls) SimulateLoading() {
	c.w.Show(Loading())
}

// DebugPanelID is the id of the element the panel is mounted in.
const DebugPanelID = "counter-dev-tools"

const debugPanelStyle = "position: fixed; bottom: 10px; right: 10px; background: #333; color: white; " +
	"padding: 10px; border-radius: 5px; font-size: 12px; z-index: 10000;"

const debugButtonStyle = "margin: 2px; padding: 2px 5px;"

// DebugPanel is the development-only panel with one button per display state.
type DebugPanel struct {
	runtime.ComponentBase

	controls Controls
}

// NewDebugPanel creates a panel driving controls.
func NewDebugPanel(controls Controls) *DebugPanel {
	return &DebugPanel{controls: controls}
}

// Render implements runtime.Component.
func (p *DebugPanel) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": DebugPanelID, "style": debugPanelStyle},
		vdom.Div(map[string]any{"style": "margin-bottom: 5px;"},
			vdom.Strong("Counter Dev Tools", nil),
		),
		vdom.Button("Simulate Success", map[string]any{
			"style":   debugButtonStyle,
			"onClick": p.controls.SimulateSuccess,
		}),
		vdom.Button("Simulate Error", map[string]any{
			"style":   debugButtonStyle,
			"onClick": p.controls.SimulateError,
		}),
		vdom.Button("Simulate Loading", map[string]any{
			"style":   debugButtonStyle,
			"onClick": p.controls.SimulateLoading,
		}),
	)
}
