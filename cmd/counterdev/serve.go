package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vcrobe/visitorcounter/console"
	"github.com/vcrobe/visitorcounter/devserver"
)

func newServeCmd(v *viper.Viper, cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the host page and a local counter API",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cfg.Server)
			if err != nil {
				return err
			}
			defer store.Close()

			widget := cfg.Widget
			widget.Endpoint = cfg.Server.PageEndpoint

			srv, err := devserver.New(store, devserver.Options{
				Addr:         cfg.Server.Addr,
				AllowOrigins: cfg.Server.AllowOrigins,
				AssetsDir:    cfg.Server.Assets,
				Widget:       widget,
				Debug:        cfg.Server.Debug,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8080", "listen address")
	flags.String("db", "", "SQLite file for visits; empty keeps them in memory")
	flags.StringSlice("allow-origin", nil, "CORS origin allowed to call the API (repeatable); none allows all")
	flags.String("assets", "", "directory holding counter.wasm and wasm_exec.js")
	flags.String("page-endpoint", "", "counter URL written into the host page; empty points at this server")
	flags.Int64("start-count", 0, "initial total for the in-memory store")
	flags.Bool("debug", false, "gin debug mode")
	bind(v, "server.addr", flags.Lookup("addr"))
	bind(v, "server.db", flags.Lookup("db"))
	bind(v, "server.allow_origins", flags.Lookup("allow-origin"))
	bind(v, "server.assets", flags.Lookup("assets"))
	bind(v, "server.page_endpoint", flags.Lookup("page-endpoint"))
	bind(v, "server.start_count", flags.Lookup("start-count"))
	bind(v, "server.debug", flags.Lookup("debug"))
	return cmd
}

func openStore(s serverSettings) (devserver.Store, error) {
	if s.DB == "" {
		console.Log("storing visits in memory")
		return devserver.NewMemoryStore(s.StartCount), nil
	}
	console.Log("opening database:", s.DB)
	return devserver.OpenSQLite(s.DB)
}
