// Package checker verifies the contract of a JSON REST API one request at a time.
//
// A Checker sends a single GET request and classifies the response as a Verdict: whether the
// resource has data, has no data, or reports a server error. A Comparator builds on a Checker to
// fetch the same identifier from two related resource types and check that a field agrees.
//
// Failed checks are returned as data. Errors are reserved for requests that could not be
// completed (*TransportError), for bodies that are not valid JSON (*ParseError), and for strict
// fetches that got an unexpected status (*HTTPStatusError).
package checker
