package petstore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apicheck/api-contract-tests/checker"
	"github.com/apicheck/api-contract-tests/framework"
	"github.com/apicheck/api-contract-tests/servicedef"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClient(handler http.Handler, action func(*Client)) {
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		action(NewClient(server.Client(), server.URL, nil))
	})
}

func TestCreatePet(t *testing.T) {
	created := servicedef.NewPet(123456, "Fido", "Dogs", []string{"friendly", "playful"})
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(created, nil))
	withClient(handler, func(c *Client) {
		pet, err := c.CreatePet(context.Background(), 123456, "Fido", "Dogs", []string{"friendly", "playful"})
		require.NoError(t, err)
		assert.Equal(t, "Fido", pet.Name)
		assert.Equal(t, servicedef.PetStatusAvailable, pet.Status)

		r := <-requests
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "/pet", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"id":123456,"name":"Fido","category":{"id":1,"name":"Dogs"},"photoUrls":[],
			"tags":[{"id":1,"name":"friendly"},{"id":1,"name":"playful"}],"status":"available"}`, string(r.Body))
	})
}

func TestUpdatePetStatus(t *testing.T) {
	updated := servicedef.Pet{ID: 123456, Name: "Fido", Status: servicedef.PetStatusSold}
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(updated, nil))
	withClient(handler, func(c *Client) {
		pet, err := c.UpdatePetStatus(context.Background(), 123456, servicedef.PetStatusSold)
		require.NoError(t, err)
		assert.Equal(t, servicedef.PetStatusSold, pet.Status)

		r := <-requests
		assert.Equal(t, "PUT", r.Request.Method)
		assert.Equal(t, "/pet", r.Request.URL.Path)
		assert.JSONEq(t, `{"id":123456,"status":"sold"}`, string(r.Body))
	})
}

func TestFindByStatus(t *testing.T) {
	pets := []servicedef.Pet{
		{ID: 1, Name: "doggie", Status: "sold"},
		{ID: 2, Name: "kitty", Status: "sold"},
	}
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerForPath("/pet/findByStatus", httphelpers.HandlerWithJSONResponse(pets, nil), nil))
	withClient(handler, func(c *Client) {
		found, err := c.FindByStatus(context.Background(), "sold")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "kitty", found[1].Name)

		r := <-requests
		assert.Equal(t, "sold", r.Request.URL.Query().Get("status"))
	})
}

func TestErrorStatusIsHTTPStatusError(t *testing.T) {
	withClient(httphelpers.HandlerWithStatus(405), func(c *Client) {
		_, err := c.CreatePet(context.Background(), 1, "x", "y", nil)
		var statusErr *checker.HTTPStatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, 405, statusErr.Status)
	})
}

func TestMalformedResponseIsParseError(t *testing.T) {
	withClient(httphelpers.HandlerWithResponse(200, nil, []byte("<html>")), func(c *Client) {
		_, err := c.FindByStatus(context.Background(), "sold")
		var parseErr *checker.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestConnectionFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	c := NewClient(server.Client(), server.URL, nil)
	server.Close()

	_, err := c.UpdatePetStatus(context.Background(), 1, "sold")
	var transportErr *checker.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestResponsesAreLogged(t *testing.T) {
	var logger framework.CapturingLogger
	pets := []servicedef.Pet{{ID: 1, Name: "doggie", Status: "available"}}
	httphelpers.WithServer(httphelpers.HandlerWithJSONResponse(pets, nil), func(server *httptest.Server) {
		c := NewClient(server.Client(), server.URL, &logger)
		_, err := c.FindByStatus(context.Background(), "available")
		require.NoError(t, err)
	})
	output := logger.Output()
	require.Len(t, output, 1)
	assert.Contains(t, output[0].Message, "Find Pet by Status Response: 200")
}

func TestVerifyNthPetName(t *testing.T) {
	pets := []servicedef.Pet{
		{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}, {ID: 4, Name: "Puff"},
	}
	withClient(httphelpers.HandlerWithJSONResponse(pets, nil), func(c *Client) {
		verdict, err := c.VerifyNthPetName(context.Background(), "available", 3, "Puff")
		require.NoError(t, err)
		assert.True(t, verdict.Success, verdict.Reason)
		assert.Equal(t, "Puff", verdict.Payload.GetByKey("name").StringValue())
	})
}

func TestValidatePetsStatus(t *testing.T) {
	pets := []servicedef.Pet{{ID: 1, Status: "sold"}, {ID: 2, Status: "available"}}
	withClient(httphelpers.HandlerWithJSONResponse(pets, nil), func(c *Client) {
		found, verdict, err := c.ValidatePetsStatus(context.Background(), "sold")
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.False(t, verdict.Success)
		assert.Contains(t, verdict.Reason, "2")
	})
}
