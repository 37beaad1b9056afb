package testkit_test

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-products/pkg/testkit"
)

func echo() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"method":     r.Method,
			"echo":       json.RawMessage(body),
			"created_at": "2026-01-01T00:00:00Z",
		})
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFileSingleAndArray(t *testing.T) {
	dir := t.TempDir()
	single := writeFile(t, dir, "one.json", `{"name":"one","requestUrl":"/x","expectedCode":200}`)
	many := writeFile(t, dir, "many.json", `[
		{"name":"a","requestUrl":"/a","expectedCode":200},
		{"name":"b","requestMethod":"POST","requestUrl":"/b","expectedCode":201}
	]`)

	s, err := testkit.LoadFile(single)
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, "GET", s[0].RequestMethod)

	s, err = testkit.LoadFile(many)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, "POST", s[1].RequestMethod)
}

func TestLoadFileRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	_, err := testkit.LoadFile(writeFile(t, dir, "bad.json", `{"name":"x","expectedCode":200}`))
	assert.ErrorContains(t, err, "requestUrl is required")

	_, err = testkit.LoadFile(writeFile(t, dir, "both.json",
		`{"name":"x","requestUrl":"/","expectedCode":200,"requestFileName":"a.json","requestBody":{}}`))
	assert.ErrorContains(t, err, "not both")
}

func TestRunFileWithIgnoredKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "req.json", `{"name":"Mango Sagoo"}`)
	path := writeFile(t, dir, "echo.json", `[{
		"name": "post echoes body",
		"requestMethod": "POST",
		"requestUrl": "/",
		"requestFileName": "req.json",
		"expectedCode": 201,
		"responseBody": {"method":"POST","echo":{"name":"Mango Sagoo"}},
		"ignoreKeys": ["created_at"]
	}]`)

	testkit.RunFile(t, echo(), path)
}
