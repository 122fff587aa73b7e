package client

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/iri-io/iri-cli/pkg/catalog"
)

var recognizedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// ParseMethod canonicalizes an HTTP method string to its uppercase form.
// It reports false for anything that is not a recognized HTTP verb.
func ParseMethod(s string) (string, bool) {
	method := strings.ToUpper(s)
	return method, recognizedMethods[method]
}

// resolveOperation looks up operationID in the catalog and renders the
// operation's path template with the supplied parameters.
//
// A catalog entry with an unrecognized method is reported as an unknown
// operation; that should not happen for a well-formed catalog, but the
// behavior needs to be defined.
func resolveOperation(table *catalog.Table, operationID string, pathParams []Param) (method, path string, err error) {
	op, ok := table.Find(operationID)
	if !ok {
		return "", "", &UnknownOperationError{OperationID: operationID}
	}

	method, ok = ParseMethod(op.Method)
	if !ok {
		return "", "", &UnknownOperationError{OperationID: op.OperationID}
	}

	path, err = renderPath(op, pathParams)
	if err != nil {
		return "", "", err
	}
	return method, path, nil
}

// renderPath substitutes the operation's required path parameters into its
// template. Each value is percent-encoded as a single path segment, so a
// value containing '/' cannot split the path. Supplied parameters not
// referenced by the template are ignored; a missing required parameter is
// reported in template order.
func renderPath(op catalog.OperationDefinition, pathParams []Param) (string, error) {
	rendered := op.PathTemplate
	for _, required := range op.PathParams {
		value, ok := lookupParam(pathParams, required)
		if !ok {
			return "", &MissingPathParameterError{
				OperationID: op.OperationID,
				Parameter:   required,
			}
		}
		rendered = strings.ReplaceAll(rendered, "{"+required+"}", url.PathEscape(value))
	}
	return rendered, nil
}
