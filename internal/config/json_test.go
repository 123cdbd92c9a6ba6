package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {"public_key_path": "/etc/log-system/recipient.pem", "version": "2.0.0"},
		"adapter": {"collector_url": "https://logs.example.com", "request_timeout": "30s"},
		"server": {"http_address": "localhost:9090"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/log-system/recipient.pem", cfg.App.PublicKeyPath)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://logs.example.com", cfg.Adapter.CollectorURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"adapter": {`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	for input, want := range map[string]time.Duration{
		`"15s"`:       15 * time.Second,
		`"1h30m"`:     90 * time.Minute,
		`60000000000`: time.Minute, // raw nanoseconds
	} {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(input), &d), input)
		assert.Equal(t, want, time.Duration(d), input)
	}
}

func TestDuration_UnmarshalRejectsGarbage(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(out))
}
