// Package config loads run settings from YAML, an optional .env file and
// UNCROSS_* environment variables, and turns them into engine options.
//
// Precedence, lowest first: Default, YAML file (Load), environment
// (ApplyEnv), then command-line flags applied by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/uncross/search"
)

// ErrInvalidConfig matches every validation failure of Config.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvSeed     = "UNCROSS_SEED"
	EnvLogLevel = "UNCROSS_LOG_LEVEL"
	EnvStrategy = "UNCROSS_STRATEGY"
	EnvAccept   = "UNCROSS_ACCEPT"
)

// DefaultEnvFile is loaded by ApplyEnv when no files are given.
const DefaultEnvFile = ".env"

// Config is the full set of run settings.
type Config struct {
	// Seed feeds every random stream of a run; 0 ⇒ fixed default seed.
	Seed int64 `yaml:"seed"`

	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Anneal AnnealConfig `yaml:"anneal"`
}

// LogConfig selects the slog handler installed by the CLI.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// SearchConfig mirrors search.Options.
type SearchConfig struct {
	Strategy  string        `yaml:"strategy"`
	MaxRounds int           `yaml:"max_rounds"`
	TimeLimit time.Duration `yaml:"time_limit"`
}

// AnnealConfig mirrors search.AnnealOptions.
type AnnealConfig struct {
	InitialTemp   float64       `yaml:"initial_temp"`
	Cooling       float64       `yaml:"cooling"`
	MinTemp       float64       `yaml:"min_temp"`
	StepsPerRound int           `yaml:"steps_per_round"`
	Acceptance    string        `yaml:"acceptance"`
	MaxSteps      int           `yaml:"max_steps"`
	TimeLimit     time.Duration `yaml:"time_limit"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{
			Strategy: search.BestImprovement.String(),
		},
		Anneal: AnnealConfig{
			InitialTemp: search.DefaultInitialTemp,
			Cooling:     search.DefaultCooling,
			MinTemp:     search.DefaultMinTemp,
			Acceptance:  search.AcceptMetropolis.String(),
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
// Unknown keys are rejected. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv loads the given .env files (DefaultEnvFile when none) without
// overriding variables that are already set, then applies UNCROSS_* values.
// Missing .env files are ignored.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Search.Strategy = v
	}
	if v := os.Getenv(EnvAccept); v != "" {
		c.Anneal.Acceptance = v
	}
	return c.Validate()
}

// Validate checks every field without running anything.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q: must be text or json", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := c.SearchOptions(); err != nil {
		return err
	}
	if _, err := c.AnnealOptions(); err != nil {
		return err
	}
	return nil
}

// SearchOptions converts the search section, sharing the top-level seed.
func (c Config) SearchOptions() (search.Options, error) {
	s, err := search.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return search.Options{}, fmt.Errorf("%w: search.strategy %q: %w", ErrInvalidConfig, c.Search.Strategy, err)
	}
	opts := search.Options{
		Strategy:  s,
		Seed:      c.Seed,
		MaxRounds: c.Search.MaxRounds,
		TimeLimit: c.Search.TimeLimit,
	}
	if err := opts.Validate(); err != nil {
		return search.Options{}, fmt.Errorf("%w: search: %w", ErrInvalidConfig, err)
	}
	return opts, nil
}

// AnnealOptions converts the anneal section, sharing the top-level seed.
func (c Config) AnnealOptions() (search.AnnealOptions, error) {
	acc, err := search.ParseAcceptance(c.Anneal.Acceptance)
	if err != nil {
		return search.AnnealOptions{}, fmt.Errorf("%w: anneal.acceptance %q: %w", ErrInvalidConfig, c.Anneal.Acceptance, err)
	}
	opts := search.AnnealOptions{
		InitialTemp:   c.Anneal.InitialTemp,
		Cooling:       c.Anneal.Cooling,
		MinTemp:       c.Anneal.MinTemp,
		StepsPerRound: c.Anneal.StepsPerRound,
		Acceptance:    acc,
		Seed:          c.Seed,
		MaxSteps:      c.Anneal.MaxSteps,
		TimeLimit:     c.Anneal.TimeLimit,
	}
	if err := opts.Validate(); err != nil {
		return search.AnnealOptions{}, fmt.Errorf("%w: anneal: %w", ErrInvalidConfig, err)
	}
	return opts, nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q: must be debug, info, warn or error", ErrInvalidConfig, s)
}
