package browser

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitivecopilot/graphkit/internal/config"
	"github.com/cognitivecopilot/graphkit/internal/graph"
	"github.com/cognitivecopilot/graphkit/internal/history"
	"github.com/cognitivecopilot/graphkit/internal/logging"
)

// testServer builds a browser server backed by the given mock driver and
// returns an httptest server wrapping its routes.
func testServer(t *testing.T, driver *graph.MockDriver, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := config.Defaults()
	opts = append([]ServerOption{
		WithDriverFactory(func() graph.Driver { return driver }),
	}, opts...)
	s := New(cfg, logging.Nop(), opts...)

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	ts := httptest.NewServer(withMiddleware(mux, s.log))
	t.Cleanup(ts.Close)
	return ts
}

func postExecute(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/execute", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestExecuteSuccess(t *testing.T) {
	driver := graph.NewMockDriver()
	driver.Enqueue(&graph.Result{
		Headers: []string{"node_count"},
		Rows:    []map[string]any{{"node_count": int64(42)}},
	}, nil)

	ts := testServer(t, driver)
	resp := postExecute(t, ts, `{"query": "MATCH (n) RETURN count(n) as node_count"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, []any{"node_count"}, body["headers"])

	rows, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(42), rows[0].(map[string]any)["node_count"])

	// Driver connection is per-request and closed afterwards.
	assert.True(t, driver.Closed())
	assert.Equal(t, []string{"MATCH (n) RETURN count(n) as node_count"}, driver.Queries())
}

func TestExecuteEmptyQuery(t *testing.T) {
	driver := graph.NewMockDriver()
	ts := testServer(t, driver)

	for _, body := range []string{`{"query": ""}`, `{"query": "   \n\t "}`, `{}`} {
		resp := postExecute(t, ts, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "no query provided", decodeBody(t, resp)["error"])
	}

	// The driver must never be touched for empty queries.
	assert.Empty(t, driver.Queries())
	assert.False(t, driver.Closed())
}

func TestExecuteInvalidBody(t *testing.T) {
	ts := testServer(t, graph.NewMockDriver())

	resp := postExecute(t, ts, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "invalid request body")
}

func TestExecuteZeroRows(t *testing.T) {
	driver := graph.NewMockDriver()
	driver.Enqueue(graph.Empty(), nil)

	ts := testServer(t, driver)
	resp := postExecute(t, ts, `{"query": "CREATE (n:Thing)"}`)

	// Zero rows is a success, not an error.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestExecuteQueryError(t *testing.T) {
	driver := graph.NewMockDriver()
	driver.Enqueue(nil, errors.New("Syntax error at offset 3"))

	ts := testServer(t, driver)
	resp := postExecute(t, ts, `{"query": "MAT (n) RETURN n"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "Syntax error")
	assert.True(t, driver.Closed())
}

func TestExecuteConnectError(t *testing.T) {
	driver := graph.NewMockDriver()
	driver.ConnectErr = errors.New("dial tcp: connection refused")

	ts := testServer(t, driver)
	resp := postExecute(t, ts, `{"query": "MATCH (n) RETURN n"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "connection refused")
	assert.Empty(t, driver.Queries())
}

func TestExecuteRecordsHistory(t *testing.T) {
	driver := graph.NewMockDriver()
	driver.Enqueue(&graph.Result{
		Headers: []string{"n"},
		Rows:    []map[string]any{{"n": "a"}, {"n": "b"}},
	}, nil)
	driver.Enqueue(nil, errors.New("boom"))

	store := history.NewMemoryStore()
	ts := testServer(t, driver, WithHistory(store))

	postExecute(t, ts, `{"query": "MATCH (n) RETURN n"}`)
	postExecute(t, ts, `{"query": "BROKEN"}`)

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "BROKEN", entries[0].Query)
	assert.Equal(t, "error", entries[0].Status)
	assert.Equal(t, "boom", entries[0].Error)

	assert.Equal(t, "MATCH (n) RETURN n", entries[1].Query)
	assert.Equal(t, "ok", entries[1].Status)
	assert.Equal(t, 2, entries[1].RowCount)
}

func TestHistoryEndpoint(t *testing.T) {
	store := history.NewMemoryStore()
	require.NoError(t, store.Append(history.Entry{Query: "MATCH (n) RETURN n", Status: "ok", RowCount: 3}))
	require.NoError(t, store.Append(history.Entry{Query: "BROKEN", Status: "error", Error: "boom"}))

	ts := testServer(t, graph.NewMockDriver(), WithHistory(store))

	resp, err := http.Get(ts.URL + "/api/history")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	queries, ok := body["queries"].([]any)
	require.True(t, ok)
	require.Len(t, queries, 2)
	assert.Equal(t, "BROKEN", queries[0].(map[string]any)["query"])
}

func TestHistoryEndpointLimit(t *testing.T) {
	store := history.NewMemoryStore()
	for _, q := range []string{"q1", "q2", "q3"} {
		require.NoError(t, store.Append(history.Entry{Query: q, Status: "ok"}))
	}

	ts := testServer(t, graph.NewMockDriver(), WithHistory(store))

	resp, err := http.Get(ts.URL + "/api/history?limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := decodeBody(t, resp)
	assert.Len(t, body["queries"], 2)

	resp, err = http.Get(ts.URL + "/api/history?limit=zero")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryEndpointWithoutStore(t *testing.T) {
	ts := testServer(t, graph.NewMockDriver())

	resp, err := http.Get(ts.URL + "/api/history")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{}, decodeBody(t, resp)["queries"])
}

func TestIndexPage(t *testing.T) {
	ts := testServer(t, graph.NewMockDriver())

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "FalkorDB Browser")
	assert.Contains(t, buf.String(), "/execute")
}

func TestHealthEndpoint(t *testing.T) {
	ts := testServer(t, graph.NewMockDriver())

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeBody(t, resp)["status"])
}

func TestNotFound(t *testing.T) {
	ts := testServer(t, graph.NewMockDriver())

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "/nope", decodeBody(t, resp)["path"])
}

func TestRequestIDMiddleware(t *testing.T) {
	ts := testServer(t, graph.NewMockDriver())

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "fixed-id")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "fixed-id", resp.Header.Get("X-Request-ID"))
}

func TestResolveBindAddr(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.BrowserConfig
		want string
	}{
		{"all", config.BrowserConfig{Port: 5000, Bind: "all"}, "0.0.0.0:5000"},
		{"loopback", config.BrowserConfig{Port: 5000, Bind: "loopback"}, "127.0.0.1:5000"},
		{"custom", config.BrowserConfig{Port: 8080, Bind: "custom", CustomBindHost: "10.0.0.5"}, "10.0.0.5:8080"},
		{"custom without host", config.BrowserConfig{Port: 8080, Bind: "custom"}, "0.0.0.0:8080"},
		{"unknown falls back to all", config.BrowserConfig{Port: 5000, Bind: "weird"}, "0.0.0.0:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveBindAddr(tt.cfg))
		})
	}
}
