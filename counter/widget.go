// Package counter implements the visitor counter widget: one region that
// shows a loading, success or error state for a remote visitor count.
package counter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vcrobe/visitorcounter/console"
	"github.com/vcrobe/visitorcounter/fetch"
	"github.com/vcrobe/visitorcounter/runtime"
	"github.com/vcrobe/visitorcounter/vdom"
)

const (
	// DefaultPulseDuration is how long PulseClass stays on after a success.
	DefaultPulseDuration = 500 * time.Millisecond
	// DefaultErrorMessage is shown for every failed cycle.
	DefaultErrorMessage = "Counter temporarily unavailable"

	cycleKey = "cycle"
)

// Fetcher retrieves the current count. *fetch.Client implements it.
type Fetcher interface {
	FetchRemoteCount(ctx context.Context) (fetch.CounterResponse, error)
}

// Timer is a pending deferred callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. Implementations must call f on another
// goroutine or later from the same one, never before returning.
type AfterFunc func(d time.Duration, f func()) Timer

func timeAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Widget.
type Option func(*Widget)

// WithPulseDuration sets how long the update pulse lasts.
func WithPulseDuration(d time.Duration) Option {
	return func(w *Widget) {
		if d > 0 {
			w.pulseDuration = d
		}
	}
}

// WithErrorMessage sets the text shown when a cycle fails.
func WithErrorMessage(msg string) Option {
	return func(w *Widget) {
		if msg != "" {
			w.errorMessage = msg
		}
	}
}

// WithRegionClass sets the class the region element always carries.
func WithRegionClass(class string) Option {
	return func(w *Widget) {
		if class != "" {
			w.regionClass = class
		}
	}
}

// WithAfterFunc replaces time.AfterFunc for the pulse timer.
func WithAfterFunc(fn AfterFunc) Option {
	return func(w *Widget) {
		if fn != nil {
			w.afterFunc = fn
		}
	}
}

// Widget is the visitor counter component.
//
// Concurrent RunCycle calls join the cycle already in flight: only one
// request is outstanding at a time and every caller gets the same result.
type Widget struct {
	runtime.ComponentBase

	fetcher       Fetcher
	cycles        singleflight.Group
	afterFunc     AfterFunc
	pulseDuration time.Duration
	errorMessage  string
	regionClass   string

	mu       sync.Mutex
	state    DisplayState
	pulsing  bool
	pulse    Timer
	pulseGen uint64
}

// New creates a widget that reads counts from fetcher.
func New(fetcher Fetcher, opts ...Option) *Widget {
	w := &Widget{
		fetcher:       fetcher,
		afterFunc:     timeAfterFunc,
		pulseDuration: DefaultPulseDuration,
		errorMessage:  DefaultErrorMessage,
		regionClass:   DefaultRegionClass,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the state currently displayed.
func (w *Widget) State() DisplayState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Pulsing reports whether the update pulse is currently applied.
func (w *Widget) Pulsing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pulsing
}

// Show replaces whatever the region displays with state. A success starts
// a new pulse; any call cancels the pulse left over from an earlier one.
func (w *Widget) Show(state DisplayState) {
	w.mu.Lock()
	w.state = state
	w.pulseGen++
	if w.pulse != nil {
		w.pulse.Stop()
		w.pulse = nil
	}
	w.pulsing = false
	if state.Kind == KindSuccess {
		w.pulsing = true
		gen := w.pulseGen
		w.pulse = w.afterFunc(w.pulseDuration, func() { w.endPulse(gen) })
	}
	w.mu.Unlock()

	w.StateHasChanged()
}

func (w *Widget) endPulse(gen uint64) {
	w.mu.Lock()
	if gen != w.pulseGen || !w.pulsing {
		w.mu.Unlock()
		return
	}
	w.pulsing = false
	w.pulse = nil
	w.mu.Unlock()

	w.StateHasChanged()
}

// RunCycle shows Loading, fetches the count once and shows the outcome.
// It returns the final state. The widget applies no timeout of its own;
// ctx and the fetcher's transport decide how long a request may take.
func (w *Widget) RunCycle(ctx context.Context) DisplayState {
	v, _, _ := w.cycles.Do(cycleKey, func() (any, error) {
		return w.cycle(ctx), nil
	})
	return v.(DisplayState)
}

func (w *Widget) cycle(ctx context.Context) DisplayState {
	w.Show(Loading())

	next := Failure(w.errorMessage)
	resp, err := w.fetcher.FetchRemoteCount(ctx)
	if err != nil {
		// The cause stays in the console; visitors only see the generic message.
		console.Error("Failed to update visitor counter:", err.Error())
	} else {
		next = Success(resp.Count)
	}

	w.Show(next)
	return next
}

// Poll runs a cycle every interval until ctx is done. A tick that arrives
// while a cycle is in flight joins it instead of starting another.
func (w *Widget) Poll(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("poll interval %s must be positive", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.RunCycle(ctx)
		}
	}
}

// Render implements runtime.Component.
func (w *Widget) Render(r runtime.Renderer) *vdom.VNode {
	w.mu.Lock()
	st, pulsing := w.state, w.pulsing
	w.mu.Unlock()

	return View(w.regionClass, st, pulsing)
}

// OnDestroy cancels a pending pulse.
func (w *Widget) OnDestroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pulseGen++
	if w.pulse != nil {
		w.pulse.Stop()
		w.pulse = nil
	}
}
