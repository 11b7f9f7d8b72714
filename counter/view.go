package counter

import (
	"strconv"

	"github.com/vcrobe/visitorcounter/vdom"
)

// Class names and texts the host page stylesheet relies on.
const (
	DefaultRegionClass = "counter-container"
	PulseClass         = "counter-update"
	ErrorClass         = "error"

	IconClass   = "counter-icon"
	TextClass   = "counter-text"
	NumberClass = "counter-number"

	IconLoading = "⏳"
	IconSuccess = "👁️"
	IconError   = "❌"

	LoadingText   = "Loading visitor count..."
	VisitorsLabel = "Visitors: "
)

// View builds the region for st. The root node is the region element itself,
// so its class list always starts with regionClass and carries PulseClass or
// ErrorClass only when they apply.
func View(regionClass string, st DisplayState, pulsing bool) *vdom.VNode {
	class := regionClass
	attrs := map[string]any{"data-state": st.Kind.String()}

	var children []*vdom.VNode
	switch st.Kind {
	case KindLoading:
		children = []*vdom.VNode{
			vdom.Span(IconLoading, map[string]any{"class": IconClass}),
			vdom.Span(LoadingText, map[string]any{"class": TextClass}),
		}
	case KindSuccess:
		if pulsing {
			class += " " + PulseClass
		}
		attrs["data-count"] = strconv.FormatInt(st.Count, 10)
		children = []*vdom.VNode{
			vdom.Span(IconSuccess, map[string]any{"class": IconClass}),
			vdom.Span(VisitorsLabel, map[string]any{"class": TextClass}),
			vdom.Span(FormatCount(st.Count), map[string]any{"class": NumberClass}),
		}
	case KindError:
		class += " " + ErrorClass
		children = []*vdom.VNode{
			vdom.Span(IconError, map[string]any{"class": IconClass}),
			vdom.Span(st.Message, map[string]any{"class": TextClass}),
		}
	}

	attrs["class"] = class
	return vdom.Div(attrs, children...)
}
