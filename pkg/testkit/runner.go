package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// RunFile executes every step of a scenario file in order against handler.
// Steps share state through the handler, so a failing step stops the file.
func RunFile(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	scenarios, err := LoadFile(path)
	if err != nil {
		t.Fatalf("%v", err)
	}

	for _, s := range scenarios {
		if !t.Run(s.Name, func(t *testing.T) { runScenario(t, handler, s) }) {
			return
		}
	}
}

// RunDir runs every *.json file in dir through RunFile. newHandler is called
// once per file so files never see each other's data.
func RunDir(t *testing.T, newHandler func(t *testing.T) http.Handler, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		scenarios, err := LoadFile(path)
		if err != nil {
			t.Errorf("%v", err)
			continue
		}
		if len(scenarios) == 0 {
			continue
		}
		t.Run(strings.TrimSuffix(filepath.Base(path), ".json"), func(t *testing.T) {
			handler := newHandler(t)
			for _, s := range scenarios {
				if !t.Run(s.Name, func(t *testing.T) { runScenario(t, handler, s) }) {
					return
				}
			}
		})
	}
}

// Fire builds the scenario request and returns the recorded response.
func Fire(t *testing.T, handler http.Handler, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := s.requestPayload()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, body)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	rec := Fire(t, handler, s)
	AssertStatusCode(t, s, rec.Code)

	expected, err := s.expectedPayload()
	if err != nil {
		t.Errorf("[%s] read response file: %v", s.Name, err)
		return
	}
	AssertJSONBody(t, s, expected, rec.Body.Bytes())
}
