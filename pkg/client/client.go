// Package client provides JSON REST clients for the IRI API, driven by the
// generated operation catalog.
//
// Two variants implement the same contract: Client suspends on network I/O
// via context and is safe for concurrent use, while BlockingClient
// serializes calls on a single transport. Both can dispatch either by raw
// method and path or by OpenAPI operation id.
package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iri-io/iri-cli/pkg/catalog"
)

// Client is a concurrent JSON REST client for the IRI API.
//
// A Client is immutable after construction and safe for concurrent use;
// in-flight requests share the transport's connection pool, which handles
// its own synchronization. Copies produced by WithAuthorizationToken share
// that pool too.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

// New creates a client with the given base URL. The URL is validated
// eagerly and normalized to include a trailing slash, so relative endpoint
// paths join correctly.
func New(baseURL string) (*Client, error) {
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: parsed,
		http:    &http.Client{},
	}, nil
}

// FromDefaultServer creates a client using the first server URL declared in
// the OpenAPI document.
func FromDefaultServer() (*Client, error) {
	table, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return New(table.DefaultServerURL())
}

// WithAuthorizationToken returns a copy of the client that sends
// "Authorization: Bearer <token>" on every request. The receiver is not
// modified, so clients already issuing requests are unaffected.
func (c *Client) WithAuthorizationToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// GetJSON sends a GET request and parses the response as JSON.
func (c *Client) GetJSON(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodGet, path, nil, nil)
}

// GetJSONWithQuery sends a GET request with query parameters and parses the
// response as JSON.
func (c *Client) GetJSONWithQuery(ctx context.Context, path string, query []Param) (any, error) {
	return c.Request(ctx, http.MethodGet, path, query, nil)
}

// PostJSON sends a POST request with a JSON body and parses the response as
// JSON.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPost, path, nil, body)
}

// PutJSON sends a PUT request with a JSON body and parses the response as
// JSON.
func (c *Client) PutJSON(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPut, path, nil, body)
}

// DeleteJSON sends a DELETE request and parses the response as JSON.
func (c *Client) DeleteJSON(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, nil)
}

// Request sends one HTTP request using a raw method and path, bypassing
// operation-id lookup. A nil body sends no request body; a successful
// response with an empty body yields a nil value.
func (c *Client) Request(ctx context.Context, method, path string, query []Param, body any) (any, error) {
	req, err := buildRequest(ctx, c.baseURL, c.token, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return do(c.http, req)
}

// CallOperation calls an endpoint by OpenAPI operation id. pathParams
// replaces the {param} segments of the operation's path template; a missing
// required parameter is reported as a MissingPathParameterError.
func (c *Client) CallOperation(ctx context.Context, operationID string, pathParams, query []Param, body any) (any, error) {
	table, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	method, path, err := resolveOperation(table, operationID, pathParams)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, method, path, query, body)
}
