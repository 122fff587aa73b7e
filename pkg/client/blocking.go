package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/iri-io/iri-cli/pkg/catalog"
)

// BlockingClient is the synchronous counterpart of Client. Every call
// blocks the calling goroutine for the full network round trip.
//
// The single owned transport is guarded by a mutex, so one instance may be
// shared across goroutines; calls on it are serialized, never concurrent.
type BlockingClient struct {
	baseURL *url.URL
	token   string

	// mu guards http and is shared by clients derived with
	// WithAuthorizationToken, so serialization holds across copies.
	mu   *sync.Mutex
	http *http.Client
}

// NewBlocking creates a blocking client with the given base URL. The URL is
// validated eagerly and normalized to include a trailing slash, so relative
// endpoint paths join correctly.
func NewBlocking(baseURL string) (*BlockingClient, error) {
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &BlockingClient{
		baseURL: parsed,
		mu:      &sync.Mutex{},
		http:    &http.Client{},
	}, nil
}

// BlockingFromDefaultServer creates a blocking client using the first
// server URL declared in the OpenAPI document.
func BlockingFromDefaultServer() (*BlockingClient, error) {
	table, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return NewBlocking(table.DefaultServerURL())
}

// WithAuthorizationToken returns a new client that sends
// "Authorization: Bearer <token>" on every request. The new client shares
// the receiver's transport and its guarding mutex, so calls stay
// serialized across both. Configure the token before issuing requests.
func (c *BlockingClient) WithAuthorizationToken(token string) *BlockingClient {
	return &BlockingClient{
		baseURL: c.baseURL,
		token:   token,
		mu:      c.mu,
		http:    c.http,
	}
}

// GetJSON sends a GET request and parses the response as JSON.
func (c *BlockingClient) GetJSON(path string) (any, error) {
	return c.Request(http.MethodGet, path, nil, nil)
}

// GetJSONWithQuery sends a GET request with query parameters and parses the
// response as JSON.
func (c *BlockingClient) GetJSONWithQuery(path string, query []Param) (any, error) {
	return c.Request(http.MethodGet, path, query, nil)
}

// PostJSON sends a POST request with a JSON body and parses the response as
// JSON.
func (c *BlockingClient) PostJSON(path string, body any) (any, error) {
	return c.Request(http.MethodPost, path, nil, body)
}

// PutJSON sends a PUT request with a JSON body and parses the response as
// JSON.
func (c *BlockingClient) PutJSON(path string, body any) (any, error) {
	return c.Request(http.MethodPut, path, nil, body)
}

// DeleteJSON sends a DELETE request and parses the response as JSON.
func (c *BlockingClient) DeleteJSON(path string) (any, error) {
	return c.Request(http.MethodDelete, path, nil, nil)
}

// Request sends one HTTP request using a raw method and path, bypassing
// operation-id lookup. A nil body sends no request body; a successful
// response with an empty body yields a nil value.
func (c *BlockingClient) Request(method, path string, query []Param, body any) (any, error) {
	req, err := buildRequest(context.Background(), c.baseURL, c.token, method, path, query, body)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return do(c.http, req)
}

// CallOperation calls an endpoint by OpenAPI operation id. pathParams
// replaces the {param} segments of the operation's path template; a missing
// required parameter is reported as a MissingPathParameterError.
func (c *BlockingClient) CallOperation(operationID string, pathParams, query []Param, body any) (any, error) {
	table, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	method, path, err := resolveOperation(table, operationID, pathParams)
	if err != nil {
		return nil, err
	}
	return c.Request(method, path, query, body)
}
