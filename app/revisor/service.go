// Package revisor contains services for ingesting and summarizing articles.
package revisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Semior001/newsdigest/app/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// ErrEmptyKeyword is returned when a fetch is requested without a keyword.
var ErrEmptyKeyword = errors.New("keyword must not be empty")

//go:generate moq -out mock_source.go . Source

// Source searches for news items by keyword.
type Source interface {
	Search(ctx context.Context, keyword string) ([]Item, error)
}

// Item is a news item as the source reports it.
// Content is nil when the page could not be scraped.
type Item struct {
	ExternalID  string
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt *time.Time
	Content     *string
}

// Service is a main application service.
type Service struct {
	log        *slog.Logger
	store      store.Interface
	source     Source
	summarizer *Summarizer
	now        func() time.Time
}

// NewService creates new service.
func NewService(lg *slog.Logger, s store.Interface, src Source, summarizer *Summarizer) *Service {
	return &Service{
		log:        lg,
		store:      s,
		source:     src,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// GetArticle returns the article by its id.
func (s *Service) GetArticle(ctx context.Context, id string) (store.Article, error) {
	return s.store.Get(ctx, id)
}

// ListArticles returns the requested page of articles.
func (s *Service) ListArticles(ctx context.Context, req store.ListRequest) (store.ArticlePage, error) {
	return s.store.List(ctx, req)
}

// Summary returns the summary of the article.
func (s *Service) Summary(ctx context.Context, id string) (store.Summary, error) {
	article, err := s.store.Get(ctx, id)
	if err != nil {
		return store.Summary{}, fmt.Errorf("get article: %w", err)
	}

	res, err := s.summarizer.Summarize(article)
	if err != nil {
		return store.Summary{}, err
	}

	s.log.DebugCtx(ctx, "summary prepared",
		slog.String("article_id", id),
		slog.Bool("cached", res.Cached))

	return res, nil
}

// Fetch searches for new items and stores those that are not known yet.
func (s *Service) Fetch(ctx context.Context, keyword string) (store.FetchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return store.FetchResult{}, ErrEmptyKeyword
	}

	items, err := s.source.Search(ctx, keyword)
	if err != nil {
		return store.FetchResult{}, fmt.Errorf("search %q: %w", keyword, err)
	}

	var res store.FetchResult
	for _, item := range items {
		if item.ExternalID == "" {
			res.Failed++
			continue
		}

		err = s.store.Add(ctx, store.Article{
			ID:            uuid.New().String(),
			ExternalID:    item.ExternalID,
			Title:         item.Title,
			Source:        item.Source,
			PublishedAt:   item.PublishedAt,
			Content:       item.Content,
			Description:   emptyToNil(item.Description),
			URL:           item.URL,
			SearchKeyword: keyword,
			FetchedAt:     lo.ToPtr(s.now().UTC()),
		})
		switch {
		case errors.Is(err, store.ErrDuplicate):
			res.Skipped++
		case err != nil:
			return store.FetchResult{}, fmt.Errorf("add article %s: %w", item.ExternalID, err)
		default:
			res.Fetched++
		}
	}

	s.log.InfoCtx(ctx, "fetch complete",
		slog.String("keyword", keyword),
		slog.Int("fetched", res.Fetched),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed))

	return res, nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
