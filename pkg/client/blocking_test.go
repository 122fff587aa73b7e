package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockingNormalizesBaseURL(t *testing.T) {
	c, err := NewBlocking("https://example.com/api/v1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v1/", c.baseURL.String())

	_, err = NewBlocking("not a url")
	var invalid *InvalidBaseURLError
	require.ErrorAs(t, err, &invalid)
}

func TestBlockingRequestRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"path":  r.URL.Path,
			"limit": r.URL.Query().Get("limit"),
		})
	}))
	t.Cleanup(srv.Close)

	c, err := NewBlocking(srv.URL)
	require.NoError(t, err)

	value, err := c.GetJSONWithQuery("/api/v1/facility/sites", []Param{{Name: "limit", Value: "5"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"path":  "/api/v1/facility/sites",
		"limit": "5",
	}, value)
}

func TestBlockingCallOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/facility/sites/site-1", r.URL.Path)
		_, _ = io.WriteString(w, `{"name":"Site One"}`)
	}))
	t.Cleanup(srv.Close)

	c, err := NewBlocking(srv.URL)
	require.NoError(t, err)

	value, err := c.CallOperation("getSite", []Param{{Name: "site_id", Value: "site-1"}}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Site One"}, value)

	_, err = c.CallOperation("getSite", nil, nil, nil)
	var missing *MissingPathParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "site_id", missing.Parameter)
}

func TestBlockingEmptyBodyIsJSONNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c, err := NewBlocking(srv.URL)
	require.NoError(t, err)

	value, err := c.DeleteJSON("jobs/42")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestBlockingWithAuthorizationTokenSharesTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, "{}")
	}))
	t.Cleanup(srv.Close)

	c, err := NewBlocking(srv.URL)
	require.NoError(t, err)

	authed := c.WithAuthorizationToken("secret")
	assert.Same(t, c.http, authed.http)
	// The guarding mutex is shared too, so derived clients stay
	// serialized with the original.
	assert.Same(t, c.mu, authed.mu)
	assert.Empty(t, c.token)

	_, err = authed.GetJSON("anything")
	require.NoError(t, err)
}

func TestBlockingClientSerializesSharedUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	t.Cleanup(srv.Close)

	c, err := NewBlocking(srv.URL)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := c.GetJSON("anything")
			assert.NoError(t, err)
			assert.Equal(t, map[string]any{"ok": true}, value)
		}()
	}
	wg.Wait()
}
