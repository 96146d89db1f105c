package apitests

import (
	"context"
	"net/http"

	"github.com/apicheck/api-contract-tests/checker"
	"github.com/apicheck/api-contract-tests/config"
	"github.com/apicheck/api-contract-tests/framework"
	"github.com/apicheck/api-contract-tests/idgen"
	"github.com/apicheck/api-contract-tests/petstore"
)

// Environment is the shared, read-only state for one run of the test suite.
type Environment struct {
	Config     *config.Config
	HTTPClient *http.Client
	// Observer, if not nil, is notified of every species check.
	Observer checker.Observer
	// RequestLogger, if not nil, receives the request log of every test in addition to the test's
	// own debug output. Each line is prefixed with the test ID.
	RequestLogger framework.Logger
	IDs      *idgen.Generator
}

// NewEnvironment creates an Environment whose HTTP client is configured from cfg.
func NewEnvironment(cfg *config.Config, observer checker.Observer) *Environment {
	clientConfig := checker.DefaultClientConfig()
	clientConfig.Timeout = cfg.HTTP.Timeout
	return &Environment{
		Config:     cfg,
		HTTPClient: checker.NewHTTPClient(clientConfig),
		Observer:   observer,
		IDs:        idgen.New(cfg.Seed),
	}
}

// Targets describes the APIs under test, for display purposes.
func (e *Environment) Targets() map[string]string {
	petstoreURL := e.Config.Petstore.BaseURL
	if petstoreURL == "" {
		petstoreURL = "(disabled)"
	}
	return map[string]string{
		"species":  e.Config.Species.BaseURL,
		"petstore": petstoreURL,
	}
}

// T represents a test or subtest in the contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but outside of the Go test
// runner, with extra features such as per-test debug logging provided by the framework package.
// To make assertions, pass the *T to the assert and require packages as if it were a *testing.T.
//
// Every T has its own checker and pet store client, which write their request logs to the
// test's debug output, and its own context.Context that is cancelled when the test exits.
type T struct {
	context  *framework.Context
	env      *Environment
	ctx      context.Context
	checker  *checker.Checker
	petstore *petstore.Client
}

func newTestScope(c *framework.Context, env *Environment) *T {
	ctx, cancel := context.WithCancel(context.Background())
	c.Defer(cancel)

	logger := c.DebugLogger()
	if env.RequestLogger != nil {
		logger = framework.MultiLogger(logger,
			framework.LoggerWithPrefix(env.RequestLogger, "["+c.ID().String()+"] "))
	}
	opts := []checker.Option{
		checker.WithLogger(logger),
		checker.WithUserAgent(env.Config.HTTP.UserAgent),
	}
	if env.Observer != nil {
		opts = append(opts, checker.WithObserver(env.Observer))
	}
	t := &T{
		context: c,
		env:     env,
		ctx:     ctx,
		checker: checker.New(env.HTTPClient, env.Config.Species.BaseURL, opts...),
	}
	if env.Config.Petstore.BaseURL != "" {
		t.petstore = petstore.NewClient(env.HTTPClient, env.Config.Petstore.BaseURL, logger)
	}
	return t
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer schedules a function to run when the test exits.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Skip stops the test and reports it as skipped.
func (t *T) Skip(reason string) {
	t.context.SkipWithReason(reason)
}

// Context returns a context that is cancelled when the test exits.
func (t *T) Context() context.Context {
	return t.ctx
}

func (t *T) Config() *config.Config {
	return t.env.Config
}

// Checker returns a species API checker that logs to this test's debug output.
func (t *T) Checker() *checker.Checker {
	return t.checker
}

func (t *T) Comparator() *checker.Comparator {
	return checker.NewComparator(t.checker)
}

// Petstore returns a pet store client, or skips the test if no pet store URL is configured.
func (t *T) Petstore() *petstore.Client {
	if t.petstore == nil {
		t.Skip("pet store tests are disabled")
	}
	return t.petstore
}

// IDs returns the run's seeded identifier generator.
func (t *T) IDs() *idgen.Generator {
	return t.env.IDs
}
