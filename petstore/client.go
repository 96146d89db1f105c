// Package petstore is a client for the Swagger pet store demo API, with helpers that verify the
// contents of its responses.
package petstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apicheck/api-contract-tests/checker"
	"github.com/apicheck/api-contract-tests/framework"
	"github.com/apicheck/api-contract-tests/servicedef"

	"github.com/google/uuid"
)

// DefaultBaseURL is the public demo instance.
const DefaultBaseURL = "https://petstore.swagger.io/v2"

// Client sends requests to a pet store API. Every response with a status of 300 or higher is
// returned as a *checker.HTTPStatusError; connection failures are *checker.TransportError and
// malformed bodies are *checker.ParseError.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     framework.Logger
}

// NewClient creates a Client. If httpClient is nil, http.DefaultClient is used.
func NewClient(httpClient *http.Client, baseURL string, logger framework.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// CreatePet creates a pet with status "available" and returns the server's copy of it.
func (c *Client) CreatePet(ctx context.Context, id int64, name, category string, tags []string) (servicedef.Pet, error) {
	var created servicedef.Pet
	err := c.doJSON(ctx, "Create Pet", http.MethodPost, c.baseURL+"/pet",
		servicedef.NewPet(id, name, category, tags), &created)
	return created, err
}

// UpdatePetStatus changes the status of an existing pet and returns the server's copy of it.
func (c *Client) UpdatePetStatus(ctx context.Context, id int64, status string) (servicedef.Pet, error) {
	var updated servicedef.Pet
	err := c.doJSON(ctx, "Update Pet Status", http.MethodPut, c.baseURL+"/pet",
		servicedef.PetStatusUpdate{ID: id, Status: status}, &updated)
	return updated, err
}

// FindByStatus returns all pets with the given status, in the order the server lists them.
func (c *Client) FindByStatus(ctx context.Context, status string) ([]servicedef.Pet, error) {
	query := url.Values{"status": []string{status}}
	var pets []servicedef.Pet
	err := c.doJSON(ctx, "Find Pet by Status", http.MethodGet,
		c.baseURL+"/pet/findByStatus?"+query.Encode(), nil, &pets)
	return pets, err
}

// VerifyNthPetName checks the name of the pet at position index (zero-based) among those with the
// given status.
func (c *Client) VerifyNthPetName(ctx context.Context, status string, index int, expectedName string) (checker.Verdict, error) {
	pets, err := c.FindByStatus(ctx, status)
	if err != nil {
		return checker.Verdict{}, err
	}
	return CheckNthPetName(pets, index, expectedName), nil
}

// ValidatePetsStatus fetches the pets with the given status and checks that every one of them
// really has that status.
func (c *Client) ValidatePetsStatus(ctx context.Context, status string) ([]servicedef.Pet, checker.Verdict, error) {
	pets, err := c.FindByStatus(ctx, status)
	if err != nil {
		return nil, checker.Verdict{}, err
	}
	verdict := CheckPetsStatus(pets, status)
	c.logger.Printf("All pets with the status %s: %d found", status, len(pets))
	return pets, verdict, nil
}

func (c *Client) doJSON(ctx context.Context, description, method, u string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &checker.TransportError{Op: method, URL: u, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(checker.RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &checker.TransportError{Op: method, URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &checker.TransportError{Op: "read body of", URL: u, Err: err}
	}
	c.logger.Printf("%s Response: %d - %s", description, resp.StatusCode, string(data))

	if resp.StatusCode >= 300 {
		return &checker.HTTPStatusError{Status: resp.StatusCode, URL: u}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &checker.ParseError{URL: u, Err: err}
	}
	return nil
}
