// Package openapi carries the IRI OpenAPI document that the operation
// catalog is built from. The document is embedded so the binary needs no
// files at runtime.
package openapi

import _ "embed"

//go:embed openapi.json
var Document []byte
