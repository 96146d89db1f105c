// Package framework contains the low-level implementation of test infrastructure that can be
// reused for checking any HTTP API.
//
// The central type is Context, which is similar to Go's *testing.T: it associates pieces of test
// logic with a hierarchical test identifier and accumulates success/failure results, but it runs
// outside of the Go test runner so that a contract-test suite can be shipped as a normal program.
// Context implements require.TestingT, so the assert and require packages work with it.
//
// The domain-specific code that knows what is being tested is responsible for building a test API
// on top of Context (see the apitests package).
package framework
