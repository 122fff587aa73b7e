// Package catalog exposes the generated operation table for the IRI API.
//
// The table is built once, on first access, from the embedded OpenAPI
// document and is read-only afterwards. Every client in this module calls
// endpoints through the definitions in this table.
package catalog

import "sync"

// OperationDefinition describes one OpenAPI operation.
type OperationDefinition struct {
	// OperationID is the stable OpenAPI operation identifier.
	OperationID string
	// Method is the uppercase HTTP method (for example GET, POST).
	Method string
	// PathTemplate is the request path, potentially containing {param}
	// placeholders.
	PathTemplate string
	// PathParams holds the required path parameter names extracted from
	// PathTemplate, in template order, duplicates collapsed.
	PathParams []string
}

// Table is the complete, ordered operation catalog plus the default server
// URL from the OpenAPI document. It is immutable after Load.
type Table struct {
	defaultServerURL string
	operations       []OperationDefinition
}

var load = sync.OnceValues(build)

// Load returns the process-wide operation table, parsing the embedded
// OpenAPI document on the first call.
func Load() (*Table, error) {
	return load()
}

// DefaultServerURL returns the first server URL declared in the OpenAPI
// document, with server variables substituted.
func (t *Table) DefaultServerURL() string {
	return t.defaultServerURL
}

// Operations returns every operation in the catalog, in generation order.
// The returned slice is shared; callers must not modify it.
func (t *Table) Operations() []OperationDefinition {
	return t.operations
}

// Find returns the operation with the given id. Lookup is exact string
// equality; the first match wins.
func (t *Table) Find(operationID string) (OperationDefinition, bool) {
	for _, op := range t.operations {
		if op.OperationID == operationID {
			return op, true
		}
	}
	return OperationDefinition{}, false
}
