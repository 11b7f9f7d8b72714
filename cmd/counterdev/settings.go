package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vcrobe/visitorcounter/config"
)

// settings is everything counterdev reads from file, env and flags.
type settings struct {
	LogLevel string         `mapstructure:"log_level"`
	Widget   config.Config  `mapstructure:"widget"`
	Server   serverSettings `mapstructure:"server"`
}

type serverSettings struct {
	Addr         string   `mapstructure:"addr"`
	DB           string   `mapstructure:"db"`
	AllowOrigins []string `mapstructure:"allow_origins"`
	Assets       string   `mapstructure:"assets"`
	PageEndpoint string   `mapstructure:"page_endpoint"`
	StartCount   int64    `mapstructure:"start_count"`
	Debug        bool     `mapstructure:"debug"`
}

func newViper() *viper.Viper {
	v := viper.New()

	def := config.Default()
	v.SetDefault("log_level", "info")
	v.SetDefault("widget.endpoint", def.Endpoint)
	v.SetDefault("widget.container_id", def.ContainerID)
	v.SetDefault("widget.region_class", def.RegionClass)
	v.SetDefault("widget.pulse_duration", def.PulseDuration)
	v.SetDefault("widget.poll_interval", def.PollInterval)
	v.SetDefault("widget.error_message", def.ErrorMessage)
	v.SetDefault("widget.dev_hosts", def.DevHosts)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.db", "")
	v.SetDefault("server.allow_origins", []string{})
	v.SetDefault("server.assets", "")
	v.SetDefault("server.page_endpoint", "")
	v.SetDefault("server.start_count", 0)
	v.SetDefault("server.debug", false)

	v.SetEnvPrefix("COUNTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadSettings reads path (if set) into v and decodes the result.
func loadSettings(v *viper.Viper, path string) (settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Widget.Validate(); err != nil {
		return settings{}, fmt.Errorf("widget config: %w", err)
	}
	return s, nil
}
