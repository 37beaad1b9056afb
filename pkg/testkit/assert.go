package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the response code with testify.
func AssertStatusCode(t *testing.T, scenario *Scenario, got int) {
	t.Helper()
	assert.Equal(t, scenario.ExpectedCode, got,
		"[%s] HTTP status code mismatch", scenario.Name)
}

// AssertJSONBody deep-compares the actual response with the expected JSON
// after decoding both, so key order and whitespace never matter.
// Keys listed in scenario.IgnoreKeys are removed from both sides first.
func AssertJSONBody(t *testing.T, scenario *Scenario, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal any

	require.NoError(t,
		json.Unmarshal(expected, &expVal),
		"[%s] expected response is not valid JSON", scenario.Name,
	)

	if !assert.NoError(t,
		json.Unmarshal(actual, &actVal),
		"[%s] actual response is not valid JSON\nbody: %s", scenario.Name, string(actual),
	) {
		return
	}

	ignore := make(map[string]bool, len(scenario.IgnoreKeys))
	for _, k := range scenario.IgnoreKeys {
		ignore[k] = true
	}

	assert.Equal(t, strip(expVal, ignore), strip(actVal, ignore),
		"[%s] response body mismatch", scenario.Name)
}

// strip removes ignored keys from every object in v.
func strip(v any, ignore map[string]bool) any {
	if len(ignore) == 0 {
		return v
	}
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			if !ignore[k] {
				out[k] = strip(val, ignore)
			}
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = strip(val, ignore)
		}
		return out
	default:
		return v
	}
}
