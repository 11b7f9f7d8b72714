package vdom

import "strings"

// TextTag marks a bare text node with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode.
// A func() stored under "onClick" is moved to OnClick so it never reaches the markup.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Strong creates a <strong> VNode holding text.
func Strong(text string, attrs map[string]any) *VNode {
	return NewVNode("strong", attrs, nil, text)
}

// Button creates a <button> VNode with the given label and attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Classes returns the space separated entries of the class attribute.
func (v *VNode) Classes() []string {
	if v == nil || v.Attributes == nil {
		return nil
	}
	s, _ := v.Attributes["class"].(string)
	return strings.Fields(s)
}

// HasClass reports whether the node carries class c.
func (v *VNode) HasClass(c string) bool {
	for _, have := range v.Classes() {
		if have == c {
			return true
		}
	}
	return false
}

// Attr returns the string form of an attribute, or "" when unset.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	switch val := v.Attributes[key].(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return attrString(val)
	}
}

// FindByClass returns the first node, in depth-first order, carrying class c.
func (v *VNode) FindByClass(c string) *VNode {
	if v == nil {
		return nil
	}
	if v.HasClass(c) {
		return v
	}
	for _, child := range v.Children {
		if found := child.FindByClass(c); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node with the given tag.
func (v *VNode) FindAll(tag string) []*VNode {
	if v == nil {
		return nil
	}
	var out []*VNode
	if v.Tag == tag {
		out = append(out, v)
	}
	for _, child := range v.Children {
		out = append(out, child.FindAll(tag)...)
	}
	return out
}

// TextContent concatenates the text of the node and its descendants,
// like the DOM property of the same name.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(v.Content)
	for _, child := range v.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}
