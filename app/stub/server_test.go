package stub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Semior001/newsdigest/app/revisor"
	"github.com/Semior001/newsdigest/app/store"
	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

func prepServer(t *testing.T, svc Service) *httptest.Server {
	s := &Server{
		Service:         svc,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		Log:             slog.New(logx.NoOp()),
	}

	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts
}

func prepService(t *testing.T) (*revisor.Service, *store.Bolt) {
	b, err := store.NewBolt(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, b.Close()) })

	lg := slog.New(logx.NoOp())
	return revisor.NewService(lg, b, revisor.Synthetic{}, revisor.NewSummarizer(time.Hour, 100)), b
}

func call(t *testing.T, method, u string, dst any) *http.Response {
	req, err := http.NewRequest(method, u, http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp
}

func TestServer_Health(t *testing.T) {
	svc, _ := prepService(t)
	ts := prepServer(t, svc)

	var body map[string]string
	resp := call(t, http.MethodGet, ts.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, body)
	assert.NotEmpty(t, resp.Header.Get(logx.RequestIDHeader))
}

func TestServer_ListArticles(t *testing.T) {
	svc, b := prepService(t)
	ts := prepServer(t, svc)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		src := lo.Ternary(i%2 == 0, "Reuters", "CNBC")
		require.NoError(t, b.Add(ctx, store.Article{
			ID:            strings.Repeat("0", 3) + string(rune('a'+i)),
			Title:         "article",
			Source:        src,
			SearchKeyword: lo.Ternary(i < 5, "gold", "markets"),
			PublishedAt:   lo.ToPtr(time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)),
		}))
	}

	var page store.ArticlePage
	resp := call(t, http.MethodGet, ts.URL+"/articles", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Len(t, page.Results, 20)
	assert.Equal(t, 25, page.Results[0].PublishedAt.Day(), "newest first")

	page = store.ArticlePage{}
	resp = call(t, http.MethodGet, ts.URL+"/articles?page=3&page_size=10", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, page.Results, 5)
	assert.Equal(t, 3, page.Page)

	page = store.ArticlePage{}
	resp = call(t, http.MethodGet, ts.URL+"/articles?search_keyword=gold&source=reuters", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, page.Total)

	for _, q := range []string{"page=0", "page=abc", "page_size=0", "page_size=101", "page_size=x"} {
		var e errorResponse
		resp = call(t, http.MethodGet, ts.URL+"/articles?"+q, &e)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, q)
		assert.NotEmpty(t, e.Detail, q)
		assert.NotEmpty(t, e.RequestID, q)
	}
}

func TestServer_GetArticle(t *testing.T) {
	svc, b := prepService(t)
	ts := prepServer(t, svc)
	require.NoError(t, b.Add(context.Background(), store.Article{ID: "a1", Title: "Gold", Content: lo.ToPtr("Body.")}))

	var a store.Article
	resp := call(t, http.MethodGet, ts.URL+"/articles/a1", &a)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Gold", a.Title)

	var e errorResponse
	resp = call(t, http.MethodGet, ts.URL+"/articles/missing", &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Article not found", e.Detail)
	assert.Equal(t, resp.Header.Get(logx.RequestIDHeader), e.RequestID)
}

func TestServer_GetSummary(t *testing.T) {
	svc, b := prepService(t)
	ts := prepServer(t, svc)
	ctx := context.Background()
	require.NoError(t, b.Add(ctx, store.Article{ID: "a1", Title: "Gold", Content: lo.ToPtr("One. Two. Three. Four.")}))
	require.NoError(t, b.Add(ctx, store.Article{ID: "a2", Title: "Empty"}))

	var raw map[string]any
	resp := call(t, http.MethodGet, ts.URL+"/articles/a1/summary", &raw)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"id": "a1", "title": "Gold", "summary": "One. Two. Three.", "cached": false}, raw)

	var sum store.Summary
	resp = call(t, http.MethodGet, ts.URL+"/articles/a1/summary", &sum)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, sum.Cached)

	var e errorResponse
	resp = call(t, http.MethodGet, ts.URL+"/articles/a2/summary", &e)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Article has no content to summarize", e.Detail)

	resp = call(t, http.MethodGet, ts.URL+"/articles/missing/summary", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Fetch(t *testing.T) {
	svc, _ := prepService(t)
	ts := prepServer(t, svc)

	var res store.FetchResult
	resp := call(t, http.MethodPost, ts.URL+"/articles/fetch?keyword=markets", &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, store.FetchResult{Fetched: revisor.SyntheticItems - 1, Failed: 1}, res)

	res = store.FetchResult{}
	resp = call(t, http.MethodPost, ts.URL+"/articles/fetch?keyword=markets", &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, store.FetchResult{Skipped: revisor.SyntheticItems - 1, Failed: 1}, res)

	for _, q := range []string{"", "?keyword=", "?keyword=%20%20"} {
		resp = call(t, http.MethodPost, ts.URL+"/articles/fetch"+q, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, q)
	}

	resp = call(t, http.MethodGet, ts.URL+"/articles/fetch", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "GET treats fetch as an article id")
}

func TestServer_InternalError(t *testing.T) {
	svc := &ServiceMock{
		ListArticlesFunc: func(context.Context, store.ListRequest) (store.ArticlePage, error) {
			return store.ArticlePage{}, errors.New("disk is on fire")
		},
		GetArticleFunc: func(context.Context, string) (store.Article, error) {
			panic("boom")
		},
	}
	ts := prepServer(t, svc)

	var e errorResponse
	resp := call(t, http.MethodGet, ts.URL+"/articles?page=2", &e)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", e.Detail)
	require.Len(t, svc.ListArticlesCalls(), 1)
	assert.Equal(t, store.ListRequest{Page: 2, PageSize: 20}, svc.ListArticlesCalls()[0].Req)

	resp = call(t, http.MethodGet, ts.URL+"/articles/a1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_Throttle(t *testing.T) {
	svc := &ServiceMock{FetchFunc: func(context.Context, string) (store.FetchResult, error) {
		return store.FetchResult{Fetched: 1}, nil
	}}
	s := &Server{
		Service:         svc,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		FetchLimit:      rate.NewLimiter(rate.Every(time.Minute), 1),
		Log:             slog.New(logx.NoOp()),
	}
	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp := call(t, http.MethodPost, ts.URL+"/articles/fetch?keyword=gold", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var e errorResponse
	resp = call(t, http.MethodPost, ts.URL+"/articles/fetch?keyword=gold", &e)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
	assert.Equal(t, "Too many requests", e.Detail)
	assert.Len(t, svc.FetchCalls(), 1)
}

func TestRequestID_Propagates(t *testing.T) {
	var got string
	h := middleware.RequestID(RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := logx.RequestIDFromContext(r.Context())
		assert.True(t, ok)
		got = id
	})))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(logx.RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", got)
	assert.Equal(t, "req-1", rec.Header().Get(logx.RequestIDHeader))

	// generated by chi when the client sends none
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "req-1", got)
	assert.Equal(t, got, rec.Header().Get(logx.RequestIDHeader))
}

func TestRecover(t *testing.T) {
	lg := slog.New(logx.NoOp())

	t.Run("before response", func(t *testing.T) {
		h := Recover(lg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("after response started", func(t *testing.T) {
		h := Recover(lg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("partial"))
			panic("boom")
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		assert.Equal(t, http.StatusAccepted, rec.Code, "status already sent must be kept")
		assert.Equal(t, "partial", rec.Body.String())
	})

	t.Run("abort handler", func(t *testing.T) {
		h := Recover(lg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		})
	})
}
