// Package cli implements the iri-cli command tree: listing the generated
// operation catalog, calling endpoints by operation id, and sending raw
// requests.
package cli

import (
	"github.com/gptscript-ai/cmd"
	"github.com/spf13/cobra"
)

type IRI struct {
}

func (i *IRI) Customize(c *cobra.Command) {
	c.Use = "iri-cli"
	c.Short = "Query the IRI API via its OpenAPI operation catalog"
}

func (i *IRI) Run(c *cobra.Command, _ []string) error {
	return c.Help()
}

func New() *cobra.Command {
	return cmd.Command(&IRI{}, &Operations{}, &Call{}, &Request{})
}
