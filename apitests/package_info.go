// Package apitests contains the live contract tests for the species catalog and pet store APIs,
// and the small amount of test API they share.
//
// The request/response checking itself is in the checker and petstore packages, and the generic
// test-tree machinery is in the framework package.
package apitests
