package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/apicheck/api-contract-tests/framework"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// RequestIDHeader is set on every outbound request so that a failing check can be matched up
// with the server's logs.
const RequestIDHeader = "X-Request-Id"

const defaultUserAgent = "api-contract-tests"

// Names reported to an Observer.
const (
	CheckNameHasData     = "has_data"
	CheckNameHasNoData   = "has_no_data"
	CheckNameServerError = "server_error"
	CheckNameCompare     = "compare"
)

// Observer is notified after every check. err is non-nil only if the check could not be
// completed, in which case the Verdict is incomplete.
type Observer interface {
	ObserveCheck(check string, verdict Verdict, err error, elapsed time.Duration)
}

// FetchResult is the raw outcome of a single GET request.
type FetchResult struct {
	StatusCode int
	URL        string
	RequestID  string
	Body       []byte
	// Payload is the decoded body for a 2xx response, and ldvalue.Null() otherwise.
	Payload ldvalue.Value
}

// Checker issues requests against one API base URL and classifies the responses. It holds no
// mutable state, so a single Checker can be shared between goroutines.
type Checker struct {
	client    *http.Client
	baseURL   string
	userAgent string
	logger    framework.Logger
	observer  Observer
}

type Option func(*Checker)

// WithLogger sets a logger that receives a line for every request and response.
func WithLogger(logger framework.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver sets an Observer, for instance a metrics.Recorder.
func WithObserver(observer Observer) Option {
	return func(c *Checker) { c.observer = observer }
}

// WithUserAgent overrides the User-Agent header. An empty string keeps the default.
func WithUserAgent(userAgent string) Option {
	return func(c *Checker) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// New creates a Checker. If client is nil, http.DefaultClient is used.
func New(client *http.Client, baseURL string, opts ...Option) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	c := &Checker{
		client:    client,
		baseURL:   baseURL,
		userAgent: defaultUserAgent,
		logger:    framework.NullLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the descriptor for a resource on this Checker's API.
func (c *Checker) Endpoint(resourceType, identifier string) Endpoint {
	return Endpoint{BaseURL: c.baseURL, ResourceType: resourceType, Identifier: identifier}
}

// FetchAndDecode performs a GET request. It does not treat a non-2xx status as an error; the
// caller decides what to do with it. A 2xx body must be valid JSON or empty, otherwise the
// result is a *ParseError.
func (c *Checker) FetchAndDecode(ctx context.Context, resourceType, identifier string) (FetchResult, error) {
	return c.fetch(ctx, c.Endpoint(resourceType, identifier))
}

// FetchStrict is like FetchAndDecode, but returns an *HTTPStatusError if the status is 300 or
// higher.
func (c *Checker) FetchStrict(ctx context.Context, resourceType, identifier string) (FetchResult, error) {
	result, err := c.FetchAndDecode(ctx, resourceType, identifier)
	if err != nil {
		return result, err
	}
	if result.StatusCode >= 300 {
		return result, &HTTPStatusError{Status: result.StatusCode, URL: result.URL}
	}
	return result, nil
}

// CheckHasData succeeds if the resource exists and its body is a non-empty object or array.
func (c *Checker) CheckHasData(ctx context.Context, resourceType, identifier string) (Verdict, error) {
	return c.checkData(ctx, CheckNameHasData, resourceType, identifier, true)
}

// CheckHasNoData succeeds if the request succeeds but the body is empty. A non-2xx status is a
// failure, not a success.
func (c *Checker) CheckHasNoData(ctx context.Context, resourceType, identifier string) (Verdict, error) {
	return c.checkData(ctx, CheckNameHasNoData, resourceType, identifier, false)
}

func (c *Checker) checkData(
	ctx context.Context,
	check, resourceType, identifier string,
	wantData bool,
) (verdict Verdict, err error) {
	start := time.Now()
	defer func() { c.observe(check, verdict, err, start) }()

	result, err := c.FetchAndDecode(ctx, resourceType, identifier)
	if err != nil {
		return Verdict{URL: result.URL, StatusCode: result.StatusCode}, err
	}
	verdict = Verdict{
		Payload:    result.Payload,
		StatusCode: result.StatusCode,
		URL:        result.URL,
	}
	if !isSuccessStatus(result.StatusCode) {
		verdict.Reason = statusReason(result.StatusCode)
		return verdict, nil
	}
	if HasData(result.Payload) {
		verdict.Reason = ReasonHasData
	} else {
		verdict.Reason = ReasonNoData
	}
	verdict.Success = HasData(result.Payload) == wantData
	return verdict, nil
}

// CheckServerError reports whether the listing endpoint for resourceType responds with a 5xx
// status. It is meant for liveness and fault-injection scenarios.
func (c *Checker) CheckServerError(ctx context.Context, resourceType string) (isServerError bool, err error) {
	start := time.Now()
	var verdict Verdict
	defer func() { c.observe(CheckNameServerError, verdict, err, start) }()

	e := c.Endpoint(resourceType, "")
	resp, requestID, err := c.do(ctx, e.URL())
	if err != nil {
		return false, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	isServerError = resp.StatusCode >= 500 && resp.StatusCode < 600
	verdict = Verdict{
		Success:    isServerError,
		Reason:     statusReason(resp.StatusCode),
		Payload:    ldvalue.Null(),
		StatusCode: resp.StatusCode,
		URL:        e.URL(),
	}
	if !isServerError {
		c.logger.Printf("Listing %s did not report a server error (status %d, request %s)",
			e.URL(), resp.StatusCode, requestID)
	}
	return isServerError, nil
}

func (c *Checker) fetch(ctx context.Context, e Endpoint) (FetchResult, error) {
	u := e.URL()
	result := FetchResult{URL: u, Payload: ldvalue.Null()}

	resp, requestID, err := c.do(ctx, u)
	result.RequestID = requestID
	if err != nil {
		return result, err
	}
	defer func() { _ = resp.Body.Close() }()
	result.StatusCode = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, &TransportError{Op: "read body of", URL: u, Err: err}
	}
	result.Body = body
	c.logger.Printf("GET %s -> %d (%d bytes, request %s)", u, resp.StatusCode, len(body), requestID)

	if !isSuccessStatus(resp.StatusCode) {
		return result, nil
	}
	payload, err := decodeBody(body)
	if err != nil {
		return result, &ParseError{URL: u, Err: err}
	}
	result.Payload = payload
	return result, nil
}

func (c *Checker) do(ctx context.Context, u string) (*http.Response, string, error) {
	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, requestID, &TransportError{Op: "GET", URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Printf("GET %s failed (request %s): %s", u, requestID, err)
		return nil, requestID, &TransportError{Op: "GET", URL: u, Err: err}
	}
	return resp, requestID, nil
}

func (c *Checker) observe(check string, verdict Verdict, err error, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveCheck(check, verdict, err, time.Since(start))
	}
}

func decodeBody(body []byte) (ldvalue.Value, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ldvalue.Null(), nil
	}
	var v ldvalue.Value
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return ldvalue.Null(), err
	}
	return v, nil
}
