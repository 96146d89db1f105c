// Package config loads the settings for a contract-test run. Values are layered: built-in
// defaults, then an optional YAML file, then an optional .env file and the process environment,
// and finally command-line flags (applied by the caller before Validate).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apicheck/api-contract-tests/petstore"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultSpeciesBaseURL = "https://pokeapi.co/api/v2"

// Environment variables that override file settings.
const (
	EnvSpeciesURL  = "CONTRACT_SPECIES_URL"
	EnvPetstoreURL = "CONTRACT_PETSTORE_URL"
	EnvTimeout     = "CONTRACT_TIMEOUT"
	EnvSeed        = "CONTRACT_SEED"
	EnvRandomIDs   = "CONTRACT_RANDOM_IDS"
)

var validate = validator.New()

type Config struct {
	Species  SpeciesConfig  `yaml:"species"`
	Petstore PetstoreConfig `yaml:"petstore"`
	HTTP     HTTPConfig     `yaml:"http"`

	// Seed for random identifiers; zero picks a new seed for each run.
	Seed uint64 `yaml:"seed"`

	// MetricsFile, if set, receives Prometheus metrics for the run.
	MetricsFile string `yaml:"metrics_file"`
}

type SpeciesConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`

	// RandomIDs is how many randomly chosen identifiers the name comparison test uses.
	RandomIDs   int `yaml:"random_ids" validate:"gte=0,lte=1000"`
	RandomIDMin int `yaml:"random_id_min" validate:"gte=1"`
	RandomIDMax int `yaml:"random_id_max" validate:"gtefield=RandomIDMin"`

	// MissingID is an identifier that is known not to exist.
	MissingID string `yaml:"missing_id" validate:"required"`
}

type PetstoreConfig struct {
	// BaseURL can be empty to skip the pet store tests.
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	PetID   int64  `yaml:"pet_id" validate:"gt=0"`

	// FourthAvailableName is the expected name of the fourth pet listed with status "available".
	// The demo server's data changes constantly, so the check is skipped unless this is set.
	FourthAvailableName string `yaml:"fourth_available_name"`
}

type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	UserAgent string        `yaml:"user_agent"`
}

// Default returns the settings used when nothing else is specified.
func Default() *Config {
	return &Config{
		Species: SpeciesConfig{
			BaseURL:     DefaultSpeciesBaseURL,
			RandomIDs:   3,
			RandomIDMin: 1,
			RandomIDMax: 50,
			MissingID:   "5000",
		},
		Petstore: PetstoreConfig{
			BaseURL: petstore.DefaultBaseURL,
			PetID:   123456,
		},
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "api-contract-tests",
		},
	}
}

// Load builds a Config from the defaults, the YAML file at configPath, and the environment. Either
// path may be empty. A missing .env file is not an error, but a missing config file is.
//
// Load does not validate the result, since the caller may still override values from flags.
func Load(configPath, dotenvPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %q: %w", configPath, err)
		}
	}

	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %q: %w", dotenvPath, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	getenv := func(name string) string {
		v, _ := lookup(name)
		return v
	}
	if v := getenv(EnvSpeciesURL); v != "" {
		c.Species.BaseURL = v
	}
	// An explicitly empty value disables the pet store tests.
	if v, ok := lookup(EnvPetstoreURL); ok {
		c.Petstore.BaseURL = v
	}
	if v := getenv(EnvTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.HTTP.Timeout = d
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvRandomIDs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRandomIDs, err)
		}
		c.Species.RandomIDs = n
	}
	return nil
}

// parseDuration accepts either plain integers (seconds) or Go duration strings such as "1m30s".
func parseDuration(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// Validate checks that the final configuration is usable.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s: value %v does not satisfy %q", fe.Namespace(), fe.Value(), rule))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}
