// Package termview renders widget trees as single styled terminal lines.
package termview

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcrobe/visitorcounter/runtime"
	"github.com/vcrobe/visitorcounter/vdom"
)

var _ runtime.Target = (*Target)(nil)

// Styles picks the look of each display state.
type Styles struct {
	Loading lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Pulse   lipgloss.Style
}

// DefaultStyles mirrors the page stylesheet: muted while loading, green on
// success, red on error, bold while the update pulse is on.
func DefaultStyles() Styles {
	return Styles{
		Loading: lipgloss.NewStyle().Faint(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Pulse:   lipgloss.NewStyle().Bold(true),
	}
}

// Target writes one line per render to w.
type Target struct {
	mu         sync.Mutex
	w          io.Writer
	styles     Styles
	pulseClass string
	errorClass string
	lastLine   string
}

// New returns a target writing to w. pulseClass and errorClass name the
// root classes that switch to the pulse and error styles.
func New(w io.Writer, pulseClass, errorClass string) *Target {
	return &Target{
		w:          w,
		styles:     DefaultStyles(),
		pulseClass: pulseClass,
		errorClass: errorClass,
	}
}

// WithStyles replaces the styles.
func (t *Target) WithStyles(s Styles) *Target {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.styles = s
	return t
}

// Replace implements runtime.Target. Identical consecutive lines are written once.
func (t *Target) Replace(prev, next *vdom.VNode) error {
	line := t.Line(next)

	t.mu.Lock()
	defer t.mu.Unlock()
	if line == t.lastLine {
		return nil
	}
	t.lastLine = line
	if _, err := fmt.Fprintln(t.w, line); err != nil {
		return fmt.Errorf("termview: write: %w", err)
	}
	return nil
}

// Line renders a tree without writing it.
func (t *Target) Line(n *vdom.VNode) string {
	if n == nil {
		return ""
	}
	return t.styleFor(n).Render(plainText(n))
}

func plainText(n *vdom.VNode) string {
	var parts []string
	for _, child := range n.Children {
		if s := strings.TrimSpace(child.TextContent()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (t *Target) styleFor(n *vdom.VNode) lipgloss.Style {
	t.mu.Lock()
	styles := t.styles
	t.mu.Unlock()

	style := styles.Success
	switch {
	case n.HasClass(t.errorClass):
		style = styles.Error
	case n.Attr("data-state") == "loading":
		style = styles.Loading
	}
	if n.HasClass(t.pulseClass) {
		style = style.Inherit(styles.Pulse)
	}
	return style
}
