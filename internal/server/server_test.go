package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itsmostafa/runcode/internal/repl"
	"github.com/itsmostafa/runcode/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *repl.Namespace, *bytes.Buffer) {
	t.Helper()
	ns, err := repl.NewNamespace(nil)
	require.NoError(t, err)

	var logs bytes.Buffer
	return New(Config{Output: &logs}, ns), ns, &logs
}

func postCode(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/run_code", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHomeHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, WelcomeMessage, rec.Body.String())
}

func TestRunCodeHandler_Output(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postCode(t, s, `{"code": "print(\"hi\")\n1 + 1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"output": "hi\n2\n"}, decode(t, rec))
}

func TestRunCodeHandler_SharedState(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postCode(t, s, `{"code": "x = 1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decode(t, rec)["output"])

	rec = postCode(t, s, `{"code": "x += 1\nx"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2\n", decode(t, rec)["output"])
}

func TestRunCodeHandler_ExecutionErrorIsOutput(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postCode(t, s, `{"code": "nope"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Contains(t, out["output"], "nope is not defined")
	assert.NotContains(t, out, "error")
}

func TestRunCodeHandler_NoCode(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing field", body: `{}`},
		{name: "empty string", body: `{"code": ""}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ns, _ := newTestServer(t)

			rec := postCode(t, s, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]string{"error": "No code provided"}, decode(t, rec))

			_, bound := ns.Get("x")
			assert.False(t, bound)
		})
	}
}

func TestRunCodeHandler_MalformedBody(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postCode(t, s, `{"code":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(decode(t, rec)["error"], "invalid request body"))
}

func TestCORS(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/run_code", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://other.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging(t *testing.T) {
	s, _, logs := newTestServer(t)

	rec := postCode(t, s, `{"code": "1"}`)

	id := rec.Header().Get(requestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, version.Product(), rec.Header().Get("Server"))
	assert.Contains(t, logs.String(), "/run_code")
	assert.Contains(t, logs.String(), id)
	assert.Contains(t, logs.String(), "200")
}
