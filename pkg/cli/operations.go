package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iri-io/iri-cli/pkg/catalog"
)

type Operations struct {
	Filter string `usage:"Only show operation ids containing this substring"`
}

func (o *Operations) Customize(c *cobra.Command) {
	c.Short = "List generated OpenAPI operation ids"
	c.Args = cobra.NoArgs
}

// Run prints the operation catalog. This is metadata-only and never builds
// an HTTP client.
func (o *Operations) Run(_ *cobra.Command, _ []string) error {
	table, err := catalog.Load()
	if err != nil {
		return err
	}

	for _, op := range table.Operations() {
		if o.Filter != "" && !strings.Contains(op.OperationID, o.Filter) {
			continue
		}
		fmt.Printf("%s\t%s\t%s\n", op.OperationID, op.Method, op.PathTemplate)
	}
	return nil
}
