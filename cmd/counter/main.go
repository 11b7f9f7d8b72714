//go:build js && wasm

// Command counter is the WASM build of the visitor counter widget.
//
//	GOOS=js GOARCH=wasm go build -o counter.wasm ./cmd/counter
package main

import (
	"context"
	"errors"

	"github.com/vcrobe/visitorcounter/config"
	"github.com/vcrobe/visitorcounter/console"
	"github.com/vcrobe/visitorcounter/counter"
	"github.com/vcrobe/visitorcounter/events"
	"github.com/vcrobe/visitorcounter/fetch"
	"github.com/vcrobe/visitorcounter/runtime"
	"github.com/vcrobe/visitorcounter/vdom"
)

func main() {
	events.OnDOMReady(start)

	// Keep the Go program running
	select {}
}

func start() {
	cfg := config.Default()

	// 1. Bind to the host page; pages without the container are left alone.
	target, err := vdom.BindRegion(cfg.ContainerID, cfg.RegionClass)
	if errors.Is(err, vdom.ErrNoContainer) {
		return
	}
	if err != nil {
		console.Error("visitor counter:", err.Error())
		return
	}

	// 2. Page-level overrides from data-* attributes on the container.
	cfg, err = cfg.ApplyOverrides(map[string]string{
		config.KeyEndpoint:      vdom.DataAttr(cfg.ContainerID, config.KeyEndpoint),
		config.KeyPollInterval:  vdom.DataAttr(cfg.ContainerID, config.KeyPollInterval),
		config.KeyPulseDuration: vdom.DataAttr(cfg.ContainerID, config.KeyPulseDuration),
	})
	if err != nil {
		console.Error("visitor counter: invalid page configuration:", err.Error())
		return
	}

	client, err := fetch.NewClient(cfg.Endpoint)
	if err != nil {
		console.Error("visitor counter:", err.Error())
		return
	}

	// 3. Mount the widget.
	widget := counter.New(client,
		counter.WithPulseDuration(cfg.PulseDuration),
		counter.WithErrorMessage(cfg.ErrorMessage),
		counter.WithRegionClass(cfg.RegionClass),
	)
	renderer := runtime.NewRenderer(target)
	renderer.SetCurrentComponent(widget)

	// 4. Development tools, only on configured dev hosts.
	if cfg.IsDevelopment(vdom.Hostname()) {
		mountDebugPanel(widget.Controls())
	}

	// 5. First cycle, then optional polling.
	ctx := context.Background()
	widget.RunCycle(ctx)
	if cfg.Polling() {
		if err := widget.Poll(ctx, cfg.PollInterval); err != nil {
			console.Error("visitor counter: polling stopped:", err.Error())
		}
	}
}

func mountDebugPanel(controls counter.Controls) {
	host, err := vdom.NewBodyHost(counter.DebugPanelID)
	if err != nil {
		console.Warn("visitor counter: dev tools unavailable:", err.Error())
		return
	}
	panel := runtime.NewRenderer(host)
	panel.SetCurrentComponent(counter.NewDebugPanel(controls))
	panel.ReRender()
}
