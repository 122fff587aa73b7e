package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iri-io/iri-cli/pkg/client"
)

type Request struct {
	clientOptions
	bodyOptions
	Query []string `usage:"Query parameter in form key=value (repeatable)"`
}

func (r *Request) Customize(cmd *cobra.Command) {
	cmd.Use = "request METHOD PATH"
	cmd.Short = "Send a raw HTTP request using method and path"
	cmd.Args = cobra.ExactArgs(2)
}

func (r *Request) Run(cmd *cobra.Command, args []string) error {
	// Validate the method eagerly so errors are explicit before any
	// network call.
	method, ok := client.ParseMethod(args[0])
	if !ok {
		return fmt.Errorf("invalid HTTP method %q", args[0])
	}

	query, err := parsePairs(r.Query, "--query")
	if err != nil {
		return err
	}
	body, err := r.parseBody()
	if err != nil {
		return err
	}

	cl, err := r.newClient()
	if err != nil {
		return err
	}

	value, err := cl.Request(cmd.Context(), method, args[1], query, body)
	if err != nil {
		return err
	}
	return r.printJSON(value)
}
