package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVNode_ExtractsOnClick(t *testing.T) {
	clicked := false
	n := Button("Go", map[string]any{
		"class":   "btn",
		"onClick": func() { clicked = true },
	})

	require.NotNil(t, n.OnClick)
	_, stillThere := n.Attributes["onClick"]
	assert.False(t, stillThere, "onClick must not be rendered as an attribute")

	n.OnClick()
	assert.True(t, clicked)
}

func TestVNode_Queries(t *testing.T) {
	tree := Div(map[string]any{"class": "outer  counter-update"},
		Span("👁️", map[string]any{"class": "icon"}),
		Div(nil, Span("12", map[string]any{"class": "number big"})),
	)

	assert.Equal(t, []string{"outer", "counter-update"}, tree.Classes())
	assert.True(t, tree.HasClass("counter-update"))
	assert.False(t, tree.HasClass("counter"))

	num := tree.FindByClass("big")
	require.NotNil(t, num)
	assert.Equal(t, "12", num.Content)
	assert.Nil(t, tree.FindByClass("missing"))

	assert.Len(t, tree.FindAll("span"), 2)
	assert.Equal(t, "👁️12", tree.TextContent())
}

func TestVNode_Attr(t *testing.T) {
	n := Div(map[string]any{"data-count": int64(1523), "id": "x", "ratio": -1.5})
	assert.Equal(t, "1523", n.Attr("data-count"))
	assert.Equal(t, "x", n.Attr("id"))
	assert.Equal(t, "-1.5", n.Attr("ratio"))
	assert.Equal(t, "", n.Attr("nope"))

	var nilNode *VNode
	assert.Equal(t, "", nilNode.Attr("id"))
}

func TestToHTML(t *testing.T) {
	tree := Div(map[string]any{"id": "panel", "class": "a b", "hidden": false, "open": true},
		Span("<b>&", nil),
		Button("Click", map[string]any{"onClick": func() {}}),
		Text("tail"),
	)

	got, err := ToHTML(tree)
	require.NoError(t, err)
	assert.Equal(t,
		`<div class="a b" id="panel" open=""><span>&lt;b&gt;&amp;</span><button>Click</button>tail</div>`,
		got)
}

func TestToHTML_Nil(t *testing.T) {
	got, err := ToHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
