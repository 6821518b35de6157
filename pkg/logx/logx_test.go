package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-pkgz/requester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestChain_RequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := slog.New(&Chain{
		Middleware: []Middleware{RequestID},
		Handler:    slog.HandlerOptions{}.NewJSONHandler(buf),
	})

	ctx := ContextWithRequestID(context.Background(), "req-1")
	lg.With(slog.String("prefix", "test")).InfoCtx(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "test", rec["prefix"])
}

func TestNoOp(t *testing.T) {
	lg := slog.New(NoOp())
	assert.False(t, lg.Handler().Enabled(context.Background(), slog.LevelError))
	lg.Error("dropped", slog.String("k", "v"))
}

func TestLoggingRoundTripper(t *testing.T) {
	var gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"ok"}`))
		require.NoError(t, err)
	}))
	defer ts.Close()

	buf := &bytes.Buffer{}
	lg := slog.New(&Chain{
		Middleware: []Middleware{RequestID},
		Handler:    slog.HandlerOptions{Level: slog.LevelDebug}.NewJSONHandler(buf),
	})

	rq := requester.New(http.Client{},
		LoggingRoundTripper(lg, RoundTripperOpts{Level: slog.LevelDebug, SecretHeaders: []string{"Authorization"}}),
		RequestIDRoundTripper(),
	)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/health", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "secret")

	resp, err := rq.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok"}`, string(body), "body must stay readable after logging")
	assert.Equal(t, "req-42", gotReqID)

	logs := buf.String()
	assert.Contains(t, logs, "request sent")
	assert.Contains(t, logs, "response received")
	assert.Contains(t, logs, `"request_id":"req-42"`)
	assert.NotContains(t, logs, "secret")
}

func TestRequestIDRoundTripper_Generates(t *testing.T) {
	var gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(RequestIDHeader)
	}))
	defer ts.Close()

	rq := requester.New(http.Client{}, RequestIDRoundTripper())
	req, err := http.NewRequest(http.MethodGet, ts.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := rq.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Len(t, gotReqID, 36)
}

func TestCopyAndTrim(t *testing.T) {
	long := strings.Repeat("a", trimBodyAt+10)
	rd, res := copyAndTrim(io.NopCloser(strings.NewReader(long)))
	assert.Equal(t, strings.Repeat("a", trimBodyAt)+"...", res)

	full, err := io.ReadAll(rd)
	require.NoError(t, err)
	assert.Equal(t, long, string(full))

	rd, res = copyAndTrim(io.NopCloser(strings.NewReader("line\n\tnext")))
	assert.Equal(t, "linenext", res)
	full, err = io.ReadAll(rd)
	require.NoError(t, err)
	assert.Equal(t, "line\n\tnext", string(full))
}
