//go:build js && wasm

package vdom

import (
	"errors"
	"syscall/js"

	"github.com/vcrobe/visitorcounter/console"
)

// ErrNoContainer is returned when the host page has no element with the requested id.
var ErrNoContainer = errors.New("container element not found")

// DOMTarget owns one element and rewrites it on every render.
// The root VNode describes the element itself: its attributes are synced onto
// the element and its children replace the element's children.
type DOMTarget struct {
	el        js.Value
	callbacks []js.Func
}

// NewDOMTarget wraps an existing element.
func NewDOMTarget(el js.Value) *DOMTarget {
	return &DOMTarget{el: el}
}

// BindRegion finds the container by id and returns a target for the inner
// region carrying regionClass, creating the region when the page omits it.
func BindRegion(containerID, regionClass string) (*DOMTarget, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, ErrNoContainer
	}
	container := doc.Call("getElementById", containerID)
	if !container.Truthy() {
		return nil, ErrNoContainer
	}
	region := container.Call("querySelector", "."+regionClass)
	if !region.Truthy() {
		region = doc.Call("createElement", "div")
		region.Call("setAttribute", "class", regionClass)
		container.Call("appendChild", region)
	}
	return NewDOMTarget(region), nil
}

// DataAttr reads data-<name> from the container, returning "" when unset.
func DataAttr(containerID, name string) string {
	el := js.Global().Get("document").Call("getElementById", containerID)
	if !el.Truthy() {
		return ""
	}
	v := el.Call("getAttribute", "data-"+name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

// NewBodyHost appends an empty <div id=id> to <body> and returns a target for it.
func NewBodyHost(id string) (*DOMTarget, error) {
	doc := js.Global().Get("document")
	body := doc.Get("body")
	if !body.Truthy() {
		return nil, errors.New("document has no body")
	}
	el := doc.Call("createElement", "div")
	el.Set("id", id)
	body.Call("appendChild", el)
	return NewDOMTarget(el), nil
}

// Hostname returns window.location.hostname.
func Hostname() string {
	loc := js.Global().Get("location")
	if !loc.Truthy() {
		return ""
	}
	return loc.Get("hostname").String()
}

// Replace rewrites the element to match next. Nothing from prev survives
// except attributes next sets again.
func (t *DOMTarget) Replace(prev, next *VNode) error {
	for _, cb := range t.callbacks {
		cb.Release()
	}
	t.callbacks = t.callbacks[:0]

	if prev != nil {
		for k := range prev.Attributes {
			if next == nil || next.Attributes == nil {
				t.el.Call("removeAttribute", k)
				continue
			}
			if _, ok := next.Attributes[k]; !ok {
				t.el.Call("removeAttribute", k)
			}
		}
	}

	t.el.Set("innerHTML", "")
	if next == nil {
		return nil
	}
	for k, v := range next.Attributes {
		t.setAttributeValue(t.el, k, v)
	}
	if next.Content != "" {
		t.el.Set("textContent", next.Content)
	}
	for _, child := range next.Children {
		if childEl := t.createElement(child); childEl.Truthy() {
			t.el.Call("appendChild", childEl)
		}
	}
	return nil
}

// setAttributeValue sets an attribute, handling boolean attributes and skipping handlers.
func (t *DOMTarget) setAttributeValue(el js.Value, key string, value any) {
	if b, ok := value.(bool); ok {
		if b {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}
	if isHandler(value) {
		return
	}
	el.Call("setAttribute", key, attrString(value))
}

func (t *DOMTarget) createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}
	if n.Tag == "" {
		console.Error("vdom: node without tag")
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		t.setAttributeValue(el, k, v)
	}
	if n.Content != "" {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		if childEl := t.createElement(child); childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	if n.OnClick != nil {
		handler := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			// Handlers may block (network, timers); keep them off the JS callback.
			go handler()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		t.callbacks = append(t.callbacks, cb)
	}
	return el
}
