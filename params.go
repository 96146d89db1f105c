package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apicheck/api-contract-tests/config"
	"github.com/apicheck/api-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	configPath  string
	dotenvPath  string
	speciesURL  string
	petstoreURL string
	timeout     time.Duration
	seed        uint64
	randomIDs   int
	metricsFile string
	filters     framework.RegexFilters
	debug       bool
	debugAll    bool

	// names of the flags that were given explicitly, so that defaults do not override the config
	explicit map[string]bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&c.dotenvPath, "dotenv", ".env", "file of environment variable settings, if it exists")
	fs.StringVar(&c.speciesURL, "species-url", "", "base URL of the species catalog API")
	fs.StringVar(&c.petstoreURL, "petstore-url", "", `base URL of the pet store API ("" to skip those tests)`)
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each HTTP request")
	fs.Uint64Var(&c.seed, "seed", 0, "seed for randomly chosen identifiers (0 for a new seed)")
	fs.IntVar(&c.randomIDs, "random-ids", 0, "number of random identifiers to compare across endpoints")
	fs.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics for the run to this file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	c.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.explicit[f.Name] = true })
	return true
}

// applyTo overrides configuration values with any flags that were set.
func (c *commandParams) applyTo(cfg *config.Config) {
	if c.explicit["species-url"] {
		cfg.Species.BaseURL = c.speciesURL
	}
	if c.explicit["petstore-url"] {
		cfg.Petstore.BaseURL = c.petstoreURL
	}
	if c.explicit["timeout"] {
		cfg.HTTP.Timeout = c.timeout
	}
	if c.explicit["seed"] {
		cfg.Seed = c.seed
	}
	if c.explicit["random-ids"] {
		cfg.Species.RandomIDs = c.randomIDs
	}
	if c.explicit["metrics-file"] {
		cfg.MetricsFile = c.metricsFile
	}
}

// rerunCommand builds a command line that repeats this run for only the given tests, using the
// same seed so that randomly chosen identifiers are the same.
func (c *commandParams) rerunCommand(program string, seed uint64, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.configPath != "" {
		b.add("-config", c.configPath)
	}
	if c.explicit["dotenv"] {
		b.add("-dotenv", c.dotenvPath)
	}
	if c.explicit["species-url"] {
		b.add("-species-url", c.speciesURL)
	}
	if c.explicit["petstore-url"] {
		b.add("-petstore-url", c.petstoreURL)
	}
	if c.explicit["timeout"] {
		b.add("-timeout", c.timeout.String())
	}
	if c.explicit["random-ids"] {
		b.add("-random-ids", strconv.Itoa(c.randomIDs))
	}
	b.add("-seed", strconv.FormatUint(seed, 10))
	for _, f := range failures {
		b.add("-run", rerunPattern(f.TestID))
	}
	if c.debugAll {
		b.add("-debug-all")
	} else {
		b.add("-debug")
	}
	return b.String()
}

// rerunPattern matches a test, its subtests, and its parents, which must also run for the test
// to be reached. For a/b it is ^a(/b(/.*)?)?$.
func rerunPattern(id framework.TestID) string {
	var sb strings.Builder
	sb.WriteString("^")
	for i, name := range id.Path {
		if i > 0 {
			sb.WriteString("(/")
		}
		sb.WriteString(regexp.QuoteMeta(name))
	}
	sb.WriteString("(/.*)?")
	for i := 1; i < len(id.Path); i++ {
		sb.WriteString(")?")
	}
	sb.WriteString("$")
	return sb.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
