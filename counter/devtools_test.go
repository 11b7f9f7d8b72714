package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/visitorcounter/testcomponents"
	"github.com/vcrobe/visitorcounter/vdom"
)

type recordingControls struct {
	calls []string
}

func (c *recordingControls) SimulateSuccess() { c.calls = append(c.calls, "success") }
func (c *recordingControls) SimulateError()   { c.calls = append(c.calls, "error") }
func (c *recordingControls) SimulateLoading() { c.calls = append(c.calls, "loading") }

func TestDebugPanel_ButtonsDriveControls(t *testing.T) {
	controls := &recordingControls{}
	panel := NewDebugPanel(controls)
	root := testcomponents.NewTestRenderer(panel).RenderRoot()

	assert.Equal(t, DebugPanelID, root.Attr("id"))
	assert.Contains(t, root.Attr("style"), "position: fixed")
	assert.Contains(t, root.TextContent(), "Counter Dev Tools")

	buttons := root.FindAll("button")
	require.Len(t, buttons, 3)
	assert.Equal(t, "Simulate Success", buttons[0].Content)
	assert.Equal(t, "Simulate Error", buttons[1].Content)
	assert.Equal(t, "Simulate Loading", buttons[2].Content)

	for _, b := range buttons {
		require.NotNil(t, b.OnClick)
		b.OnClick()
	}
	assert.Equal(t, []string{"success", "error", "loading"}, controls.calls)
}

func TestWidgetControls(t *testing.T) {
	clock := &fakeClock{}
	w, r := newTestWidget(t, &stubFetcher{}, WithAfterFunc(clock.AfterFunc))
	controls := w.Controls()

	controls.SimulateSuccess()
	st := w.State()
	assert.Equal(t, KindSuccess, st.Kind)
	assert.GreaterOrEqual(t, st.Count, int64(0))
	assert.Less(t, st.Count, int64(1000))
	assert.True(t, r.GetCurrentVDOM().HasClass(PulseClass))

	controls.SimulateError()
	assert.Equal(t, Failure(SimulatedErrorMessage), w.State())
	assert.Contains(t, r.Markup(), SimulatedErrorMessage)

	controls.SimulateLoading()
	assert.Equal(t, Loading(), w.State())
	assert.False(t, r.GetCurrentVDOM().HasClass(ErrorClass))
}

func TestTwoWidgetsHaveIndependentControls(t *testing.T) {
	a, ra := newTestWidget(t, &stubFetcher{})
	b, rb := newTestWidget(t, &stubFetcher{})

	a.Controls().SimulateError()
	b.Controls().SimulateLoading()

	assert.Equal(t, "error", ra.GetCurrentVDOM().Attr("data-state"))
	assert.Equal(t, "loading", rb.GetCurrentVDOM().Attr("data-state"))
}

func TestView_Idle(t *testing.T) {
	root := View(DefaultRegionClass, DisplayState{}, false)
	assert.Equal(t, "idle", root.Attr("data-state"))
	assert.Empty(t, root.Children)
	assert.Equal(t, `<div class="counter-container" data-state="idle"></div>`, vdom.MustHTML(root))
}

func TestDisplayStateString(t *testing.T) {
	assert.Equal(t, "loading", Loading().String())
	assert.Equal(t, "success(12)", Success(12).String())
	assert.Equal(t, `error("x")`, Failure("x").String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
