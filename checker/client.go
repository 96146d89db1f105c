package checker

import (
	"net"
	"net/http"
	"time"
)

// ClientConfig holds the transport settings for the HTTP client used by a Checker.
type ClientConfig struct {
	// Timeout is the overall time limit for a request, including reading the body.
	Timeout time.Duration

	// DialTimeout is the maximum amount of time a dial will wait for a connect to complete.
	DialTimeout time.Duration

	TLSHandshakeTimeout time.Duration

	// MaxIdleConnsPerHost controls how many keep-alive connections are kept per host.
	MaxIdleConnsPerHost int
}

// DefaultClientConfig returns settings suitable for checking a public API.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:             30 * time.Second,
		DialTimeout:         10 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConnsPerHost: 4,
	}
}

// NewHTTPClient creates an HTTP client to be passed to New or to the petstore client. Zero
// fields in config are taken from DefaultClientConfig.
func NewHTTPClient(config ClientConfig) *http.Client {
	defaults := DefaultClientConfig()
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.DialTimeout <= 0 {
		config.DialTimeout = defaults.DialTimeout
	}
	if config.TLSHandshakeTimeout <= 0 {
		config.TLSHandshakeTimeout = defaults.TLSHandshakeTimeout
	}
	if config.MaxIdleConnsPerHost <= 0 {
		config.MaxIdleConnsPerHost = defaults.MaxIdleConnsPerHost
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		ForceAttemptHTTP2:   true,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}
}
