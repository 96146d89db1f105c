package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/apicheck/api-contract-tests/apitests"
	"github.com/apicheck/api-contract-tests/config"
	"github.com/apicheck/api-contract-tests/framework"
	"github.com/apicheck/api-contract-tests/logging"
	"github.com/apicheck/api-contract-tests/metrics"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, params.debugAll)

	cfg, err := config.Load(params.configPath, params.dotenvPath)
	if err != nil {
		logger.Error("Configuration error", "error", err)
		os.Exit(1)
	}
	params.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewRecorder()
	env := apitests.NewEnvironment(cfg, recorder)
	if params.debugAll {
		env.RequestLogger = framework.SlogLogger(logger, slog.LevelDebug)
	}
	logger.Info("Using random identifier seed", "seed", env.IDs.Seed())

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters, env.Targets())

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	start := time.Now()
	results := apitests.RunTestSuite(env, params.filters.AsFilter, testLogger)
	logger.Debug("Test suite finished", logging.Elapsed(time.Since(start)))

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Could not write metrics", "path", cfg.MetricsFile, "error", err)
		} else {
			logger.Info("Wrote metrics", "path", cfg.MetricsFile)
		}
	}

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Println("  " + params.rerunCommand(os.Args[0], env.IDs.Seed(), results.Failures))
		os.Exit(1)
	}
}
