package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// parseBaseURL validates a base URL and normalizes it to end with exactly
// one trailing slash, so relative endpoint paths join segment-preserving
// ("items" against ".../v1/" yields ".../v1/items"). Normalization happens
// once, at client construction; nothing downstream re-normalizes.
func parseBaseURL(baseURL string) (*url.URL, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, &InvalidBaseURLError{URL: baseURL}
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
		if parsed.RawPath != "" {
			parsed.RawPath += "/"
		}
	}
	return parsed, nil
}

// buildRequest assembles one HTTP request: the path (leading slash
// stripped) is joined onto the base URL, query pairs are appended in
// supplied order, and an optional bearer token and JSON body are attached.
// Accept is always application/json.
func buildRequest(ctx context.Context, base *url.URL, token, method, path string, query []Param, body any) (*http.Request, error) {
	target, err := base.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, &InvalidPathError{Path: path}
	}

	if len(query) > 0 {
		// Encoded by hand rather than through url.Values, which would
		// sort keys and lose the supplied pair order.
		var encoded strings.Builder
		encoded.WriteString(target.RawQuery)
		for _, p := range query {
			if encoded.Len() > 0 {
				encoded.WriteByte('&')
			}
			encoded.WriteString(url.QueryEscape(p.Name))
			encoded.WriteByte('=')
			encoded.WriteString(url.QueryEscape(p.Value))
		}
		target.RawQuery = encoded.String()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &JSONError{Err: err}
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends the request and decodes the response body as JSON.
//
// A 2xx response with an empty or whitespace-only body decodes to JSON
// null (a nil value), not an error. A non-2xx response is returned as an
// HTTPStatusError carrying the body verbatim.
func do(httpClient *http.Client, req *http.Request) (any, error) {
	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(payload)}
	}

	if strings.TrimSpace(string(payload)) == "" {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, &JSONError{Err: err}
	}
	return value, nil
}
