package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iri-io/iri-cli/pkg/catalog"
)

func TestResolveOperation(t *testing.T) {
	table, err := catalog.Load()
	require.NoError(t, err)

	method, path, err := resolveOperation(table, "getSite", []Param{{Name: "site_id", Value: "site-1"}})
	require.NoError(t, err)
	assert.Equal(t, "GET", method)
	assert.Equal(t, "/api/v1/facility/sites/site-1", path)
}

func TestResolveOperationIgnoresExtraParams(t *testing.T) {
	table, err := catalog.Load()
	require.NoError(t, err)

	_, path, err := resolveOperation(table, "getSite", []Param{
		{Name: "site_id", Value: "site-1"},
		{Name: "unrelated", Value: "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/facility/sites/site-1", path)
}

func TestResolveOperationMissingParameter(t *testing.T) {
	table, err := catalog.Load()
	require.NoError(t, err)

	_, _, err = resolveOperation(table, "getSite", nil)
	var missing *MissingPathParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "getSite", missing.OperationID)
	assert.Equal(t, "site_id", missing.Parameter)
}

func TestResolveOperationUnknownID(t *testing.T) {
	table, err := catalog.Load()
	require.NoError(t, err)

	_, _, err = resolveOperation(table, "doesNotExist", nil)
	var unknown *UnknownOperationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "doesNotExist", unknown.OperationID)
}

func TestRenderPathEncodesSegments(t *testing.T) {
	op := catalog.OperationDefinition{
		OperationID:  "getSite",
		Method:       "GET",
		PathTemplate: "/api/v1/facility/sites/{site_id}",
		PathParams:   []string{"site_id"},
	}

	// A value containing '/' must not split the path.
	path, err := renderPath(op, []Param{{Name: "site_id", Value: "a/b"}})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/facility/sites/a%2Fb", path)

	path, err = renderPath(op, []Param{{Name: "site_id", Value: "site 1"}})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/facility/sites/site%201", path)
}

func TestRenderPathReportsFirstMissingParameter(t *testing.T) {
	op := catalog.OperationDefinition{
		OperationID:  "getJob",
		Method:       "GET",
		PathTemplate: "/api/v1/compute/jobs/{resource_id}/{job_id}",
		PathParams:   []string{"resource_id", "job_id"},
	}

	_, err := renderPath(op, []Param{{Name: "job_id", Value: "42"}})
	var missing *MissingPathParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "resource_id", missing.Parameter)
}

func TestRenderPathDuplicateParamFirstWins(t *testing.T) {
	op := catalog.OperationDefinition{
		OperationID:  "getSite",
		Method:       "GET",
		PathTemplate: "/api/v1/facility/sites/{site_id}",
		PathParams:   []string{"site_id"},
	}

	path, err := renderPath(op, []Param{
		{Name: "site_id", Value: "first"},
		{Name: "site_id", Value: "second"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/facility/sites/first", path)
}

func TestParseMethod(t *testing.T) {
	method, ok := ParseMethod("get")
	assert.True(t, ok)
	assert.Equal(t, "GET", method)

	method, ok = ParseMethod("DELETE")
	assert.True(t, ok)
	assert.Equal(t, "DELETE", method)

	_, ok = ParseMethod("FROBNICATE")
	assert.False(t, ok)
	_, ok = ParseMethod("")
	assert.False(t, ok)
}
