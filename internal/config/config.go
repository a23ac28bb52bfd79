// Package config resolves the portfolio CLI settings from, in increasing
// precedence: built-in defaults, an optional config file, PORTFOLIO_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jota0802/gs-dynamic/internal/logging"
	"github.com/jota0802/gs-dynamic/knapsack"
)

// EnvPrefix namespaces environment overrides: PORTFOLIO_ALGORITHM,
// PORTFOLIO_MAX_BRUTEFORCE_ITEMS, PORTFOLIO_LOG_LEVEL, ...
const EnvPrefix = "PORTFOLIO"

// Keys understood by the config file, env and flags.
const (
	KeyCatalog            = "catalog"
	KeyDataset            = "dataset"
	KeyCapacity           = "capacity"
	KeyAlgorithm          = "algorithm"
	KeyMemory             = "memory"
	KeyMaxBruteForceItems = "max-bruteforce-items"
	KeyParallel           = "parallel"
	KeyMaxTableCells      = "max-table-cells"
	KeyOutput             = "output"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
)

// Defaults.
const (
	DefaultDataset  = "basic"
	DefaultCapacity = -1 // keep the catalog's own capacity
	DefaultOutput   = "text"
	DefaultLogLevel = "info"
	DefaultLogFmt   = "console"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	// Catalog is a YAML/JSON dataset path; it wins over Dataset when set.
	Catalog string `mapstructure:"catalog"`
	// Dataset names a built-in catalog.
	Dataset string `mapstructure:"dataset"`
	// Capacity overrides the catalog capacity when ≥ 0.
	Capacity int `mapstructure:"capacity"`

	Algorithm          string `mapstructure:"algorithm"`
	Memory             string `mapstructure:"memory"`
	MaxBruteForceItems int    `mapstructure:"max-bruteforce-items"`
	Parallel           bool   `mapstructure:"parallel"`
	// MaxTableCells caps (N+1)·(C+1) for the table and memo solvers; 0 = no cap.
	MaxTableCells int `mapstructure:"max-table-cells"`

	// Output is "text" or "json".
	Output string `mapstructure:"output"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig feeds logging.Options.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance carrying defaults and env bindings.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataset, DefaultDataset)
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyCapacity, DefaultCapacity)
	v.SetDefault(KeyAlgorithm, knapsack.DefaultAlgo.String())
	v.SetDefault(KeyMemory, knapsack.DefaultMemory.String())
	v.SetDefault(KeyMaxBruteForceItems, knapsack.DefaultMaxBruteForceItems)
	v.SetDefault(KeyParallel, knapsack.DefaultParallel)
	v.SetDefault(KeyMaxTableCells, knapsack.DefaultMaxTableCells)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFmt)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags attaches flags to keys. Flag names equal the keys except for
// the nested log settings, exposed as --log-level and --log-format.
// Flags absent from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bind := map[string]string{
		KeyCatalog:            "catalog",
		KeyDataset:            "dataset",
		KeyCapacity:           "capacity",
		KeyAlgorithm:          "algorithm",
		KeyMemory:             "memory",
		KeyMaxBruteForceItems: "max-bruteforce-items",
		KeyParallel:           "parallel",
		KeyMaxTableCells:      "max-table-cells",
		KeyOutput:             "output",
		KeyLogLevel:           "log-level",
		KeyLogFormat:          "log-format",
	}
	for key, name := range bind {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load reads file (if non-empty) into v, then decodes and validates.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field that can be checked without loading data.
func (c Config) Validate() error {
	if c.Catalog == "" && c.Dataset == "" {
		return fmt.Errorf("%w: one of catalog or dataset must be set", ErrInvalidConfig)
	}
	if c.Capacity < DefaultCapacity {
		return fmt.Errorf("%w: capacity must be >= 0 (or -1 for the catalog's own), got %d",
			ErrInvalidConfig, c.Capacity)
	}
	if c.MaxBruteForceItems < 0 {
		return fmt.Errorf("%w: max-bruteforce-items must be >= 0, got %d",
			ErrInvalidConfig, c.MaxBruteForceItems)
	}
	if c.MaxTableCells < 0 {
		return fmt.Errorf("%w: max-table-cells must be >= 0, got %d",
			ErrInvalidConfig, c.MaxTableCells)
	}
	if _, err := c.Options(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output must be text or json, got %q", ErrInvalidConfig, c.Output)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the solver settings into knapsack.Options.
// The selection is always requested under the full table.
func (c Config) Options() (knapsack.Options, error) {
	algo, err := knapsack.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return knapsack.Options{}, err
	}
	mem, err := knapsack.ParseMemoryMode(c.Memory)
	if err != nil {
		return knapsack.Options{}, err
	}

	return knapsack.Options{
		Algo:               algo,
		Memory:             mem,
		ReturnSelection:    mem == knapsack.FullTable,
		MaxBruteForceItems: c.MaxBruteForceItems,
		Parallel:           c.Parallel,
		MaxTableCells:      c.MaxTableCells,
	}, nil
}

// LoggingOptions maps the log section onto logging.Options.
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, Format: c.Log.Format}
}
