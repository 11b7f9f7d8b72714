// Package config holds the widget settings shared by the WASM build and the
// native dev tool.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the widget configuration.
type Config struct {
	// Endpoint is the counter API URL.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// ContainerID is the id of the host element.
	ContainerID string `yaml:"container_id" mapstructure:"container_id"`
	// RegionClass is the class of the inner region the widget rewrites.
	RegionClass string `yaml:"region_class" mapstructure:"region_class"`
	// PulseDuration is how long the update pulse stays on after a success.
	PulseDuration time.Duration `yaml:"pulse_duration" mapstructure:"pulse_duration"`
	// PollInterval re-runs the update cycle periodically. Zero disables polling.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
	// ErrorMessage is the only text shown to visitors when an update fails.
	ErrorMessage string `yaml:"error_message" mapstructure:"error_message"`
	// DevHosts lists hostnames that enable the debug panel.
	DevHosts []string `yaml:"dev_hosts" mapstructure:"dev_hosts"`
}

// Default returns the embedded defaults.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Parse decodes YAML on top of the zero Config and validates the result.
// Keys absent from data stay zero; use Merge for layering over defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge decodes YAML on top of c. Keys present in data win.
func (c Config) Merge(data []byte) (Config, error) {
	out := c
	out.DevHosts = append([]string(nil), c.DevHosts...)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

// Load reads a YAML file and merges it over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Default().Merge(data)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Override keys accepted from the host page.
const (
	KeyEndpoint      = "endpoint"
	KeyPollInterval  = "poll-interval"
	KeyPulseDuration = "pulse-duration"
)

// ApplyOverrides sets fields from page-level string values keyed by the
// Key* constants. Empty values are ignored.
func (c Config) ApplyOverrides(values map[string]string) (Config, error) {
	out := c
	for key, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		switch key {
		case KeyEndpoint:
			out.Endpoint = raw
		case KeyPollInterval:
			d, err := time.ParseDuration(raw)
			if err != nil {
				return Config{}, fmt.Errorf("override %s: %w", key, err)
			}
			out.PollInterval = d
		case KeyPulseDuration:
			d, err := time.ParseDuration(raw)
			if err != nil {
				return Config{}, fmt.Errorf("override %s: %w", key, err)
			}
			out.PulseDuration = d
		default:
			return Config{}, fmt.Errorf("override %s: unknown key", key)
		}
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if u, err := url.Parse(c.Endpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("endpoint: %q is not an absolute http(s) URL", c.Endpoint))
	}
	if c.ContainerID == "" {
		errs = append(errs, errors.New("container_id: must not be empty"))
	}
	if c.RegionClass == "" || strings.ContainsAny(c.RegionClass, " .#") {
		errs = append(errs, fmt.Errorf("region_class: %q is not a single class name", c.RegionClass))
	}
	if c.PulseDuration <= 0 {
		errs = append(errs, fmt.Errorf("pulse_duration: %s must be positive", c.PulseDuration))
	}
	if c.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("poll_interval: %s must not be negative", c.PollInterval))
	}
	if strings.TrimSpace(c.ErrorMessage) == "" {
		errs = append(errs, errors.New("error_message: must not be empty"))
	}
	return errors.Join(errs...)
}

// IsDevelopment reports whether hostname is one of the configured dev hosts.
func (c Config) IsDevelopment(hostname string) bool {
	for _, h := range c.DevHosts {
		if strings.EqualFold(h, hostname) {
			return true
		}
	}
	return false
}

// Polling reports whether periodic updates are enabled.
func (c Config) Polling() bool {
	return c.PollInterval > 0
}
