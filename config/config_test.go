package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Endpoint, "/api/VisitorCounter")
	assert.Equal(t, "visitor-counter", cfg.ContainerID)
	assert.Equal(t, "counter-container", cfg.RegionClass)
	assert.Equal(t, 500*time.Millisecond, cfg.PulseDuration)
	assert.Zero(t, cfg.PollInterval)
	assert.False(t, cfg.Polling())
	assert.Equal(t, "Counter temporarily unavailable", cfg.ErrorMessage)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.DevHosts)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: http://localhost:8080/api/VisitorCounter\npoll_interval: 30s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/VisitorCounter", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.True(t, cfg.Polling())
	assert.Equal(t, "visitor-counter", cfg.ContainerID, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pulse_duration: soon\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestMerge_DoesNotAliasDevHosts(t *testing.T) {
	base := Default()
	merged, err := base.Merge([]byte("dev_hosts: [dev.local]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"dev.local"}, merged.DevHosts)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, base.DevHosts)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	err := Config{PollInterval: -time.Second, RegionClass: "a b"}.Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, key := range []string{"endpoint", "container_id", "region_class", "pulse_duration", "poll_interval", "error_message"} {
		assert.Contains(t, msg, key)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := Default().ApplyOverrides(map[string]string{
		KeyEndpoint:      "https://counter.example.com/api/VisitorCounter",
		KeyPollInterval:  "1m",
		KeyPulseDuration: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://counter.example.com/api/VisitorCounter", cfg.Endpoint)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PulseDuration)

	_, err = Default().ApplyOverrides(map[string]string{KeyPollInterval: "often"})
	assert.Error(t, err)

	_, err = Default().ApplyOverrides(map[string]string{"colour": "red"})
	assert.Error(t, err)

	_, err = Default().ApplyOverrides(map[string]string{KeyEndpoint: "not a url"})
	assert.Error(t, err)
}

func TestIsDevelopment(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.IsDevelopment("localhost"))
	assert.True(t, cfg.IsDevelopment("LOCALHOST"))
	assert.True(t, cfg.IsDevelopment("127.0.0.1"))
	assert.False(t, cfg.IsDevelopment("example.github.io"))
	assert.False(t, cfg.IsDevelopment(""))
}
