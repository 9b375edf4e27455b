package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/leapstack-labs/js2py/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = testutil.NewTestLogger(t)
	}
	ts := httptest.NewServer(NewServer(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "text/javascript", strings.NewReader(body)) //nolint:noctx // test helper
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx // test helper
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestTranslate(t *testing.T) {
	ts := newTestServer(t, Config{})

	tests := []struct {
		name  string
		query string
		body  string
		want  string
	}{
		{
			name: "if else",
			body: "if (x > 0) { y = 1; } else { y = 2; }",
			want: "if x > 0:\n    y = 1\nelse:\n    y = 2",
		},
		{
			name:  "indent override",
			query: "?indent=2",
			body:  "while (n) { n = n - 1; }",
			want:  "while n:\n  n = n - 1",
		},
		{
			name:  "typescript",
			query: "?lang=ts",
			body:  "let n: number = parseFloat(s);",
			want:  "n = float(s)",
		},
		{
			name: "empty program",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts.URL+"/translate"+tt.query, tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			var got TranslateResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestTranslate_Errors(t *testing.T) {
	ts := newTestServer(t, Config{MaxBody: 64})

	t.Run("unsupported construct", func(t *testing.T) {
		resp, body := post(t, ts.URL+"/translate", "x = a ** b;")
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "binary operator **", got.Kind)
		assert.Equal(t, "a ** b", got.Source)
		require.NotNil(t, got.Span)
		assert.Equal(t, 4, got.Span.Start)
		assert.Equal(t, 10, got.Span.End)
	})

	t.Run("missing operand", func(t *testing.T) {
		resp, body := post(t, ts.URL+"/translate", "let x;")
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Contains(t, got.Error, "missing required operand")
		assert.Equal(t, "initializer for x", got.Kind)
	})

	t.Run("syntax error", func(t *testing.T) {
		resp, body := post(t, ts.URL+"/translate", "let = ;")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Contains(t, got.Error, "syntax error")
		assert.Equal(t, 1, got.Line)
	})

	t.Run("bad indent", func(t *testing.T) {
		for _, q := range []string{"abc", "0", "17"} {
			resp, _ := post(t, ts.URL+"/translate?indent="+q, "x = 1;")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		}
	})

	t.Run("body too large", func(t *testing.T) {
		resp, body := post(t, ts.URL+"/translate", strings.Repeat("x = 1;\n", 20))
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		assert.Contains(t, string(body), "exceeds 64 bytes")
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, _ := get(t, ts.URL+"/translate")
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestCheck(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, body := post(t, ts.URL+"/check", "let x;\nif (a === b) { y = typeof z; }")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Diagnostics []struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
			Snippet  string `json:"snippet"`
			Line     int    `json:"line"`
			Column   int    `json:"column"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Diagnostics, 3)

	assert.Equal(t, "JP02", got.Diagnostics[0].Code)
	assert.Equal(t, "error", got.Diagnostics[0].Severity)
	assert.Equal(t, 1, got.Diagnostics[0].Line)

	assert.Equal(t, "JP11", got.Diagnostics[1].Code)
	assert.Equal(t, "warning", got.Diagnostics[1].Severity)
	assert.Equal(t, 2, got.Diagnostics[1].Line)
	assert.Equal(t, 5, got.Diagnostics[1].Column)

	assert.Equal(t, "JP01", got.Diagnostics[2].Code)
	assert.Equal(t, "typeof z", got.Diagnostics[2].Snippet)
}

func TestCheck_Clean(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, body := post(t, ts.URL+"/check", "x = 1;")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"diagnostics": []}`, string(body))
}

func TestRuns(t *testing.T) {
	t.Run("without store", func(t *testing.T) {
		ts := newTestServer(t, Config{})
		resp, _ := get(t, ts.URL+"/runs/latest")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	store := state.NewSQLiteStore(nil)
	require.NoError(t, store.Open(state.MemoryPath))
	require.NoError(t, store.Migrate())
	defer store.Close()

	ts := newTestServer(t, Config{Store: store})

	resp, _ := get(t, ts.URL+"/runs/latest")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "no runs yet")

	ctx := context.Background()
	run, err := store.CreateRun(ctx, "/project")
	require.NoError(t, err)
	require.NoError(t, store.RecordFile(ctx, &state.RunFile{RunID: run.ID, FilePath: "a.js", Status: state.FileStatusTranslated}))
	require.NoError(t, store.CompleteRun(ctx, run.ID, state.RunStatusCompleted, state.RunStats{Total: 1, Translated: 1}, ""))

	for _, path := range []string{"/runs/latest", "/runs/" + run.ID} {
		resp, body := get(t, ts.URL+path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		var got RunResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, state.RunStatusCompleted, got.Status)
		require.Len(t, got.Files, 1)
		assert.Equal(t, "a.js", got.Files[0].FilePath)
	}

	resp, _ = get(t, ts.URL+"/runs/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRunStream(t *testing.T) {
	t.Run("not enabled", func(t *testing.T) {
		ts := newTestServer(t, Config{})
		resp, _ := get(t, ts.URL+"/runs/events")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	store := state.NewSQLiteStore(nil)
	require.NoError(t, store.Open(state.MemoryPath))
	require.NoError(t, store.Migrate())
	defer store.Close()

	events := NewRunEvents()
	ts := newTestServer(t, Config{Store: store, Events: events})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/runs/events", nil)
	require.NoError(t, err)
	responses := make(chan *http.Response, 1)
	go func() {
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			close(responses)
			return
		}
		responses <- resp
	}()

	require.Eventually(t, func() bool { return events.Listeners() == 1 }, 2*time.Second, 10*time.Millisecond)

	run, err := store.CreateRun(ctx, "/project")
	require.NoError(t, err)
	require.NoError(t, store.CompleteRun(ctx, run.ID, state.RunStatusCompleted, state.RunStats{Total: 2, Translated: 2}, ""))
	events.Publish(run.ID)

	resp, ok := <-responses
	require.True(t, ok, "event stream request failed")
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	var patch strings.Builder
	for !strings.Contains(patch.String(), run.ID) {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		patch.WriteString(line)
	}
	assert.Contains(t, patch.String(), "datastar-patch-signals")
	assert.Contains(t, patch.String(), `"latestRun"`)

	cancel()
	require.Eventually(t, func() bool { return events.Listeners() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeListener_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(Config{Logger: testutil.NewTestLogger(t)})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.ServeListener(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz") //nolint:noctx // test
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewServer_Defaults(t *testing.T) {
	srv := NewServer(Config{})
	assert.Equal(t, DefaultAddr, srv.Addr())
	assert.Equal(t, DefaultReadTimeout, srv.readTimeout)
	assert.Equal(t, int64(DefaultMaxBody), srv.maxBody)
}
