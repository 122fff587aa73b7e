package cli

import (
	"github.com/spf13/cobra"
)

type Call struct {
	clientOptions
	bodyOptions
	PathParam []string `usage:"Path parameter in form key=value (repeatable)"`
	Query     []string `usage:"Query parameter in form key=value (repeatable)"`
}

func (c *Call) Customize(cmd *cobra.Command) {
	cmd.Use = "call OPERATION_ID"
	cmd.Short = "Call an endpoint by OpenAPI operation id"
	cmd.Args = cobra.ExactArgs(1)
}

func (c *Call) Run(cmd *cobra.Command, args []string) error {
	pathParams, err := parsePairs(c.PathParam, "--path-param")
	if err != nil {
		return err
	}
	query, err := parsePairs(c.Query, "--query")
	if err != nil {
		return err
	}
	body, err := c.parseBody()
	if err != nil {
		return err
	}

	cl, err := c.newClient()
	if err != nil {
		return err
	}

	value, err := cl.CallOperation(cmd.Context(), args[0], pathParams, query, body)
	if err != nil {
		return err
	}
	return c.printJSON(value)
}
