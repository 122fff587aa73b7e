package client

import "fmt"

// InvalidBaseURLError indicates the base URL given at construction is not a
// valid absolute URL.
type InvalidBaseURLError struct {
	URL string
}

func (e *InvalidBaseURLError) Error() string {
	return fmt.Sprintf("invalid base URL %q", e.URL)
}

// InvalidPathError indicates an endpoint path could not be joined to the
// client's base URL.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid endpoint path %q", e.Path)
}

// UnknownOperationError indicates the requested operation id is not present
// in the catalog, or the catalog entry carries an unrecognized HTTP method.
type UnknownOperationError struct {
	OperationID string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown OpenAPI operation %q", e.OperationID)
}

// MissingPathParameterError indicates a required path template parameter
// was not supplied by the caller.
type MissingPathParameterError struct {
	OperationID string
	Parameter   string
}

func (e *MissingPathParameterError) Error() string {
	return fmt.Sprintf("missing required path parameter %q for operation %q", e.Parameter, e.OperationID)
}

// RequestError indicates an HTTP transport-layer failure (connection,
// timeout, TLS, DNS). It is not retried.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// JSONError indicates a response body could not be parsed as JSON despite a
// successful status.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("failed to parse JSON: %v", e.Err)
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

// HTTPStatusError indicates the server responded with a non-2xx status. The
// response body is preserved verbatim for diagnostics.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Body)
}
