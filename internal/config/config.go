// Package config loads tracker settings from defaults, an optional YAML
// file and TRACKER_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given and it exists in the
// working directory.
const DefaultFile = "tracker.yaml"

// Output formats accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	Source        string            `yaml:"source"         env:"TRACKER_SOURCE"`
	Watch         bool              `yaml:"watch"          env:"TRACKER_WATCH"`
	WatchDebounce time.Duration     `yaml:"watch_debounce" env:"TRACKER_WATCH_DEBOUNCE"`
	LogLevel      string            `yaml:"log_level"      env:"TRACKER_LOG_LEVEL"`
	LogFile       string            `yaml:"log_file"       env:"TRACKER_LOG_FILE"`
	LogUseCases   bool              `yaml:"log_use_cases"  env:"TRACKER_LOG_USE_CASES"`
	Output        string            `yaml:"output"         env:"TRACKER_OUTPUT"`
	Tab           string            `yaml:"tab"            env:"TRACKER_TAB"`
	Filters       map[string]string `yaml:"filters"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Source:        "./data/dashboard-data.json",
		WatchDebounce: 500 * time.Millisecond,
		LogLevel:      "warn",
		Output:        OutputText,
		Tab:           string(domain.TabAll),
	}
}

// Load builds the configuration. path may be empty, in which case
// TRACKER_CONFIG and then DefaultFile are tried.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("TRACKER_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{OutputText, OutputJSON, OutputYAML}, c.Output) {
		errs = append(errs, fmt.Errorf("output: unknown format %q", c.Output))
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("watch_debounce: must not be negative"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := domain.ParseTab(c.Tab); !ok {
		errs = append(errs, fmt.Errorf("tab: unknown tab %q", c.Tab))
	}
	if _, err := c.FilterState(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// FilterState returns the initial filter selection. Keys are applied in
// canonical order so errors are reported deterministically.
func (c Config) FilterState() (domain.FilterState, error) {
	state := domain.NewFilterState()
	keys := make([]string, 0, len(c.Filters))
	for k := range c.Filters {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		key, err := domain.ParseFilterKey(k)
		if err != nil {
			return domain.FilterState{}, fmt.Errorf("filters: %w", err)
		}
		if state, err = state.With(key, c.Filters[k]); err != nil {
			return domain.FilterState{}, fmt.Errorf("filters: %w", err)
		}
	}
	return state, nil
}

// InitialTab returns the configured tab, or All when unset.
func (c Config) InitialTab() domain.Tab {
	tab, ok := domain.ParseTab(c.Tab)
	if !ok {
		return domain.TabAll
	}
	return tab
}
