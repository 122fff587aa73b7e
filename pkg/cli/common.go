package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/iri-io/iri-cli/pkg/client"
)

// clientOptions carries the flags shared by every subcommand that issues
// HTTP requests.
type clientOptions struct {
	BaseURL     string `usage:"Base URL for the API (defaults to the OpenAPI server URL)" env:"IRI_BASE_URL"`
	AccessToken string `usage:"Access token sent in the Authorization header" env:"IRI_ACCESS_TOKEN"`
	Compact     bool   `usage:"Emit compact JSON instead of pretty-printed output"`
	Debug       bool   `usage:"Log requests at debug level"`
}

func (o clientOptions) newClient() (*client.Client, error) {
	if o.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var (
		c   *client.Client
		err error
	)
	if o.BaseURL != "" {
		c, err = client.New(o.BaseURL)
	} else {
		c, err = client.FromDefaultServer()
	}
	if err != nil {
		return nil, err
	}

	if o.AccessToken != "" {
		c = c.WithAuthorizationToken(o.AccessToken)
	}
	return c, nil
}

func (o clientOptions) printJSON(value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if o.Compact {
		fmt.Println(string(pretty.Ugly(encoded)))
		return nil
	}
	_, err = os.Stdout.Write(pretty.Pretty(encoded))
	return err
}

// bodyOptions carries the two mutually exclusive ways to supply a JSON
// request body.
type bodyOptions struct {
	BodyJSON string `usage:"JSON request body literal"`
	BodyFile string `usage:"Path to a file containing a JSON request body"`
}

func (o bodyOptions) parseBody() (any, error) {
	if o.BodyJSON != "" && o.BodyFile != "" {
		return nil, fmt.Errorf("--body-json and --body-file are mutually exclusive")
	}

	raw := o.BodyJSON
	if o.BodyFile != "" {
		data, err := os.ReadFile(o.BodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		raw = string(data)
	}

	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}
	return gjson.Parse(raw).Value(), nil
}

// parsePairs parses repeated key=value arguments into ordered parameters.
func parsePairs(pairs []string, flag string) ([]client.Param, error) {
	var params []client.Param
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid %s value %q (expected key=value)", flag, pair)
		}
		params = append(params, client.Param{Name: key, Value: value})
	}
	return params, nil
}
