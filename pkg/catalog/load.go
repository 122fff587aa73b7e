package catalog

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/iri-io/iri-cli/openapi"
)

// Methods a path item can carry in OpenAPI 3.x, in catalog order.
var catalogMethodOrder = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodTrace,
}

// build parses the embedded OpenAPI document into the operation table.
// Paths are emitted in sorted order and methods in catalogMethodOrder, so
// the table is deterministic across runs.
func build() (*Table, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapi.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded OpenAPI document: %w", err)
	}

	var serverURL string
	if len(doc.Servers) > 0 {
		serverURL, err = parseServer(doc.Servers[0])
		if err != nil {
			return nil, err
		}
	}

	pathMap := doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for path := range pathMap {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var operations []OperationDefinition
	for _, path := range paths {
		pathItem := pathMap[path]
		for _, method := range catalogMethodOrder {
			operation := pathItem.GetOperation(method)
			if operation == nil || operation.OperationID == "" {
				continue
			}
			operations = append(operations, OperationDefinition{
				OperationID:  operation.OperationID,
				Method:       method,
				PathTemplate: path,
				PathParams:   templateParams(path),
			})
		}
	}

	return &Table{
		defaultServerURL: serverURL,
		operations:       operations,
	}, nil
}

// parseServer resolves a server entry to a concrete URL, substituting each
// server variable with its default (or first enum value).
func parseServer(server *openapi3.Server) (string, error) {
	s := server.URL
	for name, variable := range server.Variables {
		if variable == nil {
			continue
		}

		if variable.Default != "" {
			s = strings.Replace(s, "{"+name+"}", variable.Default, 1)
		} else if len(variable.Enum) > 0 {
			s = strings.Replace(s, "{"+name+"}", variable.Enum[0], 1)
		}
	}

	if !strings.HasPrefix(s, "http") {
		return "", fmt.Errorf("invalid server URL: %s (must use HTTP or HTTPS; relative URLs not supported)", s)
	}
	return s, nil
}

// templateParams extracts the {name} placeholders from a path template,
// preserving template order and collapsing duplicates.
func templateParams(template string) []string {
	var params []string
	seen := make(map[string]bool)
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			break
		}
		name := template[i+1 : i+end]
		if name != "" && !seen[name] {
			seen[name] = true
			params = append(params, name)
		}
		i += end
	}
	return params
}
