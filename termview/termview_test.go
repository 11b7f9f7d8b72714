package termview

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/visitorcounter/counter"
)

func plainTarget(buf *bytes.Buffer) *Target {
	plain := lipgloss.NewStyle()
	return New(buf, counter.PulseClass, counter.ErrorClass).WithStyles(Styles{
		Loading: plain, Success: plain, Error: plain, Pulse: plain,
	})
}

func TestReplace_WritesOneLinePerState(t *testing.T) {
	var buf bytes.Buffer
	target := plainTarget(&buf)
	region := counter.DefaultRegionClass

	require.NoError(t, target.Replace(nil, counter.View(region, counter.Loading(), false)))
	require.NoError(t, target.Replace(nil, counter.View(region, counter.Success(1523), true)))
	require.NoError(t, target.Replace(nil, counter.View(region, counter.Failure("Counter temporarily unavailable"), false)))

	assert.Equal(t,
		"⏳ Loading visitor count...\n"+
			"👁️ Visitors: 1,523\n"+
			"❌ Counter temporarily unavailable\n",
		buf.String())
}

func TestReplace_SkipsRepeatedLine(t *testing.T) {
	var buf bytes.Buffer
	target := plainTarget(&buf)
	region := counter.DefaultRegionClass

	// The pulse ending re-renders the same text.
	require.NoError(t, target.Replace(nil, counter.View(region, counter.Success(7), true)))
	require.NoError(t, target.Replace(nil, counter.View(region, counter.Success(7), false)))

	assert.Equal(t, "👁️ Visitors: 7\n", buf.String())
}

func TestStyleFor(t *testing.T) {
	target := New(&bytes.Buffer{}, counter.PulseClass, counter.ErrorClass)
	region := counter.DefaultRegionClass
	styles := DefaultStyles()

	assert.Equal(t, styles.Error.GetForeground(), target.styleFor(counter.View(region, counter.Failure("x"), false)).GetForeground())
	assert.True(t, target.styleFor(counter.View(region, counter.Loading(), false)).GetFaint())

	pulsing := target.styleFor(counter.View(region, counter.Success(1), true))
	assert.True(t, pulsing.GetBold())
	assert.Equal(t, styles.Success.GetForeground(), pulsing.GetForeground())

	assert.False(t, target.styleFor(counter.View(region, counter.Success(1), false)).GetBold())
}

func TestLine_Nil(t *testing.T) {
	assert.Empty(t, New(&bytes.Buffer{}, "a", "b").Line(nil))
}
