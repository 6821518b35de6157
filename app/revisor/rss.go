package revisor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// maxParallelFeeds limits the number of feeds downloaded at once.
const maxParallelFeeds = 4

// RSS is a Source that searches for the keyword in the items of RSS and
// Atom feeds. Items without a guid and a link have no external id.
type RSS struct {
	log   *slog.Logger
	rq    *requester.Requester
	feeds []string
}

// NewRSS makes a new RSS source over the given feed URLs.
func NewRSS(lg *slog.Logger, cl http.Client, feeds []string) *RSS {
	return &RSS{
		log:   lg,
		rq:    requester.New(cl, middleware.Header("User-Agent", "newsdigest")),
		feeds: feeds,
	}
}

// Search downloads all feeds and returns items mentioning the keyword.
// A feed that failed to download is skipped, Search fails only if all feeds failed.
func (s *RSS) Search(ctx context.Context, keyword string) ([]Item, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	var (
		mu     sync.Mutex
		items  []Item
		failed int
	)

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.SetLimit(maxParallelFeeds)

	for _, u := range s.feeds {
		ewg.Go(func() error {
			found, err := s.search(ctx, u, kw)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				s.log.WarnCtx(ctx, "failed to search in feed", slog.String("url", u), slog.Any("err", err))
				failed++
				return nil
			}

			items = append(items, found...)
			return nil
		})
	}

	_ = ewg.Wait()

	if len(s.feeds) > 0 && failed == len(s.feeds) {
		return nil, fmt.Errorf("all %d feeds failed", failed)
	}

	return items, nil
}

func (s *RSS) search(ctx context.Context, u, kw string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.rq.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	matched := lo.Filter(feed.Items, func(item *gofeed.Item, _ int) bool {
		return item != nil && strings.Contains(
			strings.ToLower(item.Title+" "+item.Description+" "+item.Content),
			kw,
		)
	})

	return lo.Map(matched, func(item *gofeed.Item, _ int) Item {
		res := Item{
			ExternalID:  lo.Ternary(item.GUID != "", item.GUID, item.Link),
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			Source:      feed.Title,
			PublishedAt: item.PublishedParsed,
		}
		if strings.TrimSpace(item.Content) != "" {
			res.Content = lo.ToPtr(item.Content)
		}
		return res
	}), nil
}
