package carbonboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {

	path := filepath.Join(t.TempDir(), "carbonboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {

	path := writeConfig(t, "endpoint: http://localhost:8099\npoll_seconds: 30\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8099", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.PollInterval())
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce(), "debounce defaults")
	assert.Equal(t, 48, cfg.HistoryPoints)
}

func TestLoadConfigBadPollInterval(t *testing.T) {

	path := writeConfig(t, "endpoint: http://localhost:8099\npoll_seconds: 45\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll_seconds")
}

func TestLoadConfigZeroDebounce(t *testing.T) {

	path := writeConfig(t, "endpoint: http://localhost:8099\ndebounce_ms: 0\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Debounce(), "explicit zero filters synchronously")
}

func TestLoadConfigNegativeDebounce(t *testing.T) {

	path := writeConfig(t, "endpoint: http://localhost:8099\ndebounce_ms: -5\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debounce_ms")
}

func TestLoadConfigPollingOff(t *testing.T) {

	path := writeConfig(t, "endpoint: http://localhost:8099\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.PollInterval())
}

func TestLoadConfigEndpointOverride(t *testing.T) {

	t.Setenv("CARBONBOARD_ENDPOINT", "http://registry.example.com")
	path := writeConfig(t, "endpoint: http://localhost:8099\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://registry.example.com", cfg.Endpoint)
}

func TestLoadConfigMissingEndpoint(t *testing.T) {

	t.Setenv("CARBONBOARD_ENDPOINT", "")
	path := writeConfig(t, "poll_seconds: 30\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
}
