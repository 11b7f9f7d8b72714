package vdom

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML serializes the tree to markup. Event handlers are dropped and
// attributes are written in sorted order so output is stable.
func ToHTML(n *VNode) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTMLNode(n)); err != nil {
		return "", fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return buf.String(), nil
}

// MustHTML is ToHTML for trees built in code, where a failure is a bug.
func MustHTML(n *VNode) string {
	s, err := ToHTML(n)
	if err != nil {
		panic(err)
	}
	return s
}

func toHTMLNode(n *VNode) *html.Node {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v := n.Attributes[k]
		if b, ok := v.(bool); ok {
			if b {
				node.Attr = append(node.Attr, html.Attribute{Key: k})
			}
			continue
		}
		if isHandler(v) {
			continue
		}
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: attrString(v)})
	}

	if n.Content != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		node.AppendChild(toHTMLNode(child))
	}
	return node
}

func isHandler(v any) bool {
	switch v.(type) {
	case func(), func(any):
		return true
	}
	return false
}

func attrString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
