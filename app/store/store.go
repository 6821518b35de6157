// Package store contains entities and services to process and contain them.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is an error that is returned when the requested entity is not found.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an article with the same external id is already stored.
var ErrDuplicate = errors.New("duplicate")

// Interface defines methods for article store.
type Interface interface {
	Add(ctx context.Context, a Article) error
	Get(ctx context.Context, id string) (Article, error)
	List(ctx context.Context, req ListRequest) (ArticlePage, error)
}

// ListRequest defines parameters for listing articles from store.
type ListRequest struct {
	Page     int
	PageSize int
	Keyword  string
	Source   string
}

// Article is a collected news article.
// Content, Description and PublishedAt may be absent, absent content
// means the upstream scrape failed and is never retried.
type Article struct {
	ID            string     `json:"id"`
	ExternalID    string     `json:"external_uuid,omitempty"`
	Title         string     `json:"title"`
	Source        string     `json:"source"`
	PublishedAt   *time.Time `json:"published_at"`
	Content       *string    `json:"content"`
	Description   *string    `json:"description"`
	URL           string     `json:"url"`
	SearchKeyword string     `json:"search_keyword,omitempty"`
	FetchedAt     *time.Time `json:"fetched_at,omitempty"`
}

// HasContent reports whether the article has a body. Only nil or empty
// content is absent, whitespace is left for the summarizer to judge.
func (a Article) HasContent() bool {
	return a.Content != nil && *a.Content != ""
}

// ArticlePage is a single page of articles.
// Total is the count across all pages.
type ArticlePage struct {
	Results  []Article `json:"results"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// TotalPages returns the number of pages needed to show Total articles.
func (p ArticlePage) TotalPages() int {
	return TotalPages(p.Total, p.PageSize)
}

// TotalPages returns ceil(total / pageSize), or zero for a non-positive page size.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Summary is a generated summary of a single article.
type Summary struct {
	ArticleID string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"summary"`
	Cached    bool   `json:"cached"`
}

// Badge returns the label telling whether the summary was served from cache.
func (s Summary) Badge() string {
	if s.Cached {
		return "Cached"
	}
	return "Fresh"
}

// FetchResult contains counters of a single ingestion run.
type FetchResult struct {
	Fetched int `json:"fetched"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
