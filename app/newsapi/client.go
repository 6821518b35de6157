// Package newsapi provides a client for the news summarization service.
// Every remote operation is a single call without retries, non-2xx responses
// are reported as typed errors.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Semior001/newsdigest/app/store"
	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Client makes requests to the news service.
type Client struct {
	log  *slog.Logger
	base string
	rq   *requester.Requester
}

// NewClient makes new Client. Timeouts are left to the given http.Client.
func NewClient(lg *slog.Logger, baseURL string, cl http.Client) *Client {
	return &Client{
		log:  lg,
		base: strings.TrimRight(baseURL, "/"),
		rq: requester.New(cl,
			middleware.Header("Accept", "application/json"),
			logx.RequestIDRoundTripper(),
			logx.LoggingRoundTripper(lg, logx.RoundTripperOpts{Level: slog.LevelDebug}),
		),
	}
}

// ListArticles returns a page of articles.
func (c *Client) ListArticles(ctx context.Context, page, pageSize int) (store.ArticlePage, error) {
	if page < 1 || pageSize <= 0 {
		return store.ArticlePage{}, fmt.Errorf("%s: page %d, page size %d: %w",
			OpListArticles, page, pageSize, ErrInvalidArgument)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var resp store.ArticlePage
	if err := c.do(ctx, OpListArticles, http.MethodGet, "/articles", q, &resp); err != nil {
		return store.ArticlePage{}, err
	}

	if resp.Results == nil {
		resp.Results = []store.Article{}
	}
	// older servers don't echo paging parameters back
	if resp.Page == 0 {
		resp.Page = page
	}
	if resp.PageSize == 0 {
		resp.PageSize = pageSize
	}

	return resp, nil
}

// GetArticle returns a single article by its id.
func (c *Client) GetArticle(ctx context.Context, id string) (store.Article, error) {
	var resp store.Article
	if err := c.do(ctx, OpGetArticle, http.MethodGet, "/articles/"+url.PathEscape(id), nil, &resp); err != nil {
		return store.Article{}, err
	}
	return resp, nil
}

// GetSummary returns a summary of the article, the server generates it
// if it is not cached yet. ErrNoContent is returned if the article
// has no content to summarize.
func (c *Client) GetSummary(ctx context.Context, id string) (store.Summary, error) {
	var resp store.Summary
	err := c.do(ctx, OpGetSummary, http.MethodGet, "/articles/"+url.PathEscape(id)+"/summary", nil, &resp)
	if err != nil {
		var rfErr *RequestFailedError
		if errors.As(err, &rfErr) && rfErr.Status == http.StatusUnprocessableEntity {
			return store.Summary{}, fmt.Errorf("%s: %w", OpGetSummary, ErrNoContent)
		}
		return store.Summary{}, err
	}

	if resp.ArticleID == "" {
		resp.ArticleID = id
	}

	return resp, nil
}

// TriggerFetch asks the server to fetch new articles for the keyword.
func (c *Client) TriggerFetch(ctx context.Context, keyword string) (store.FetchResult, error) {
	if strings.TrimSpace(keyword) == "" {
		return store.FetchResult{}, fmt.Errorf("%s: empty keyword: %w", OpTriggerFetch, ErrInvalidArgument)
	}

	q := url.Values{}
	q.Set("keyword", keyword)

	var resp store.FetchResult
	if err := c.do(ctx, OpTriggerFetch, http.MethodPost, "/articles/fetch", q, &resp); err != nil {
		return store.FetchResult{}, err
	}

	return resp, nil
}

// do sends the request and decodes a successful response into dst.
// Any returned error is *RequestFailedError.
func (c *Client) do(ctx context.Context, op, method, path string, q url.Values, dst any) error {
	if _, ok := logx.RequestIDFromContext(ctx); !ok {
		ctx = logx.ContextWithRequestID(ctx, uuid.New().String())
	}

	u := c.base + path
	if len(q) > 0 {
		// spaces are percent-encoded instead of form encoding
		u += "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
	}

	req, err := http.NewRequestWithContext(ctx, method, u, http.NoBody)
	if err != nil {
		return &RequestFailedError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := c.rq.Do(req)
	if err != nil {
		return &RequestFailedError{Op: op, Err: fmt.Errorf("do request: %w", err)}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	if !isSuccess(resp.StatusCode) {
		c.log.DebugCtx(ctx, "request failed",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
		)
		return &RequestFailedError{Op: op, Status: resp.StatusCode}
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &RequestFailedError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
