// Package fixtures loads canned JSON-RPC node responses for the
// integration tests.
package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// LoadRPCResponses loads a fixture file mapping JSON-RPC method names
// to canned results. Methods absent from the map are answered with an
// HTTP error by the mock node, which is how fixtures model endpoints
// that do not support a method.
func LoadRPCResponses(t *testing.T, filename string) map[string]interface{} {
	t.Helper()
	path := filepath.Join(fixturesDir(), "rpc", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load fixture RPC responses: %s", filename)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}
