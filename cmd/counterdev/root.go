package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vcrobe/visitorcounter/console"
)

func newRootCmd() *cobra.Command {
	v := newViper()
	var configPath string
	var cfg settings

	root := &cobra.Command{
		Use:           "counterdev",
		Short:         "Local tooling for the visitor counter widget",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSettings(v, configPath)
			if err != nil {
				return err
			}
			level, err := console.ParseLevel(loaded.LogLevel)
			if err != nil {
				return err
			}
			console.SetLevel(level)
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	bind(v, "log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(v, &cfg))
	root.AddCommand(newFetchCmd(v, &cfg))
	return root
}

func bind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
