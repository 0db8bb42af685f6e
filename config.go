package carbonboard

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// pollChoices are the supported refresh intervals in seconds; zero disables
// polling entirely.
var pollChoices = map[int]bool{0: true, 15: true, 30: true, 60: true, 300: true}

// Config is the dashboard configuration, loaded from yaml with an
// environment override for the endpoint.
type Config struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	PollSeconds    int    `yaml:"poll_seconds,omitempty"`
	DebounceMillis int    `yaml:"debounce_ms,omitempty"`
	ArchivePath    string `yaml:"archive_path,omitempty"`
	LogPath        string `yaml:"log_path,omitempty"`
	HistoryPoints  int    `yaml:"history_points,omitempty"`
}

// LoadConfig reads and validates the config file.  CARBONBOARD_ENDPOINT
// overrides the configured endpoint when set.  Absent fields take defaults;
// an explicit debounce_ms of zero disables the window so filtering runs
// synchronously.
func LoadConfig(path string) (cfg Config, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read config from %s", path)
		return
	}

	// defaults for fields the yaml leaves out
	cfg.DebounceMillis = 300
	cfg.HistoryPoints = 48

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal config")
		return
	}

	if endpoint := os.Getenv("CARBONBOARD_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	if cfg.Endpoint == "" {
		err = errors.Errorf("no endpoint in %s or CARBONBOARD_ENDPOINT", path)
		return
	}

	if !pollChoices[cfg.PollSeconds] {
		err = errors.Errorf("poll_seconds must be one of 0, 15, 30, 60, 300; got %d", cfg.PollSeconds)
		return
	}

	if cfg.DebounceMillis < 0 {
		err = errors.Errorf("debounce_ms must be >= 0; got %d", cfg.DebounceMillis)
		return
	}
	return
}

// PollInterval returns the polling interval, zero when polling is off.
func (cfg Config) PollInterval() time.Duration {
	return time.Duration(cfg.PollSeconds) * time.Second
}

// Debounce returns the filter debounce window.
func (cfg Config) Debounce() time.Duration {
	return time.Duration(cfg.DebounceMillis) * time.Millisecond
}

// Timeout returns the api request timeout.
func (cfg Config) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
