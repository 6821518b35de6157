// Package stub implements a development HTTP server for the news service API.
package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Semior001/newsdigest/app/revisor"
	"github.com/Semior001/newsdigest/app/store"
	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

//go:generate moq -out mock_service.go . Service

// Service provides articles, summaries and ingestion.
type Service interface {
	ListArticles(ctx context.Context, req store.ListRequest) (store.ArticlePage, error)
	GetArticle(ctx context.Context, id string) (store.Article, error)
	Summary(ctx context.Context, id string) (store.Summary, error)
	Fetch(ctx context.Context, keyword string) (store.FetchResult, error)
}

// Server serves the news API over HTTP.
type Server struct {
	Addr            string
	Service         Service
	DefaultPageSize int
	MaxPageSize     int
	// FetchLimit limits the rate of fetch requests, unlimited if nil.
	FetchLimit *rate.Limiter
	Log        *slog.Logger
}

// Run starts the server and blocks until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.InfoCtx(ctx, "starting server", slog.String("addr", s.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, RequestID, middleware.RealIP)
	r.Use(Logger(s.Log), Recover(s.Log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", s.listArticles)
		r.With(Throttle(s.FetchLimit)).Post("/fetch", s.fetch)
		r.Get("/{id}", s.getArticle)
		r.Get("/{id}/summary", s.getSummary)
	})

	return r
}

// GET /articles?page=1&page_size=20&search_keyword=markets&source=reuters
func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1)
	if err != nil || page < 1 {
		s.renderError(w, r, http.StatusUnprocessableEntity, "page must be a positive integer")
		return
	}

	size, err := intParam(q.Get("page_size"), s.DefaultPageSize)
	if err != nil || size < 1 || size > s.MaxPageSize {
		s.renderError(w, r, http.StatusUnprocessableEntity,
			fmt.Sprintf("page_size must be between 1 and %d", s.MaxPageSize))
		return
	}

	res, err := s.Service.ListArticles(r.Context(), store.ListRequest{
		Page:     page,
		PageSize: size,
		Keyword:  q.Get("search_keyword"),
		Source:   q.Get("source"),
	})
	if err != nil {
		s.internalError(w, r, "list articles", err)
		return
	}

	s.render(w, r, http.StatusOK, res)
}

// GET /articles/{id}
func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.Service.GetArticle(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.renderError(w, r, http.StatusNotFound, "Article not found")
	case err != nil:
		s.internalError(w, r, "get article", err)
	default:
		s.render(w, r, http.StatusOK, a)
	}
}

// GET /articles/{id}/summary
func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.Service.Summary(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.renderError(w, r, http.StatusNotFound, "Article not found")
	case errors.Is(err, revisor.ErrNoContent):
		s.renderError(w, r, http.StatusUnprocessableEntity, "Article has no content to summarize")
	case err != nil:
		s.internalError(w, r, "get summary", err)
	default:
		s.render(w, r, http.StatusOK, sum)
	}
}

// POST /articles/fetch?keyword=markets
func (s *Server) fetch(w http.ResponseWriter, r *http.Request) {
	res, err := s.Service.Fetch(r.Context(), r.URL.Query().Get("keyword"))
	switch {
	case errors.Is(err, revisor.ErrEmptyKeyword):
		s.renderError(w, r, http.StatusUnprocessableEntity, "keyword must not be empty")
	case err != nil:
		s.internalError(w, r, "fetch articles", err)
	default:
		s.render(w, r, http.StatusOK, res)
	}
}

type errorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.Log.ErrorCtx(r.Context(), "failed to "+op, slog.Any("err", err))
	s.renderError(w, r, http.StatusInternalServerError, "Internal server error")
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	reqID, _ := logx.RequestIDFromContext(r.Context())
	s.render(w, r, status, errorResponse{Detail: detail, RequestID: reqID})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.WarnCtx(r.Context(), "failed to write response", slog.Any("err", err))
	}
}

func intParam(v string, def int) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
