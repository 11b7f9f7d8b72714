package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vcrobe/visitorcounter/counter"
	"github.com/vcrobe/visitorcounter/fetch"
	"github.com/vcrobe/visitorcounter/runtime"
	"github.com/vcrobe/visitorcounter/termview"
)

func newFetchCmd(v *viper.Viper, cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run the widget against the endpoint and print each state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := fetch.NewClient(cfg.Widget.Endpoint)
			if err != nil {
				return err
			}

			widget := counter.New(client,
				counter.WithPulseDuration(cfg.Widget.PulseDuration),
				counter.WithErrorMessage(cfg.Widget.ErrorMessage),
				counter.WithRegionClass(cfg.Widget.RegionClass),
			)
			renderer := runtime.NewRenderer(termview.New(cmd.OutOrStdout(), counter.PulseClass, counter.ErrorClass))
			renderer.SetCurrentComponent(widget)
			defer renderer.Destroy()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			final := widget.RunCycle(ctx)
			if !cfg.Widget.Polling() {
				if final.Kind == counter.KindError {
					return errors.New("counter update failed")
				}
				return nil
			}

			err = widget.Poll(ctx, cfg.Widget.PollInterval)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("poll: %w", err)
		},
	}

	flags := cmd.Flags()
	flags.String("endpoint", "", "counter API URL (defaults to the widget endpoint)")
	flags.Duration("poll", 0, "re-fetch at this interval until interrupted")
	bind(v, "widget.endpoint", flags.Lookup("endpoint"))
	bind(v, "widget.poll_interval", flags.Lookup("poll"))
	return cmd
}
