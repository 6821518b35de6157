package revisor

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/Semior001/newsdigest/app/store"
	cache "github.com/go-pkgz/expirable-cache/v2"
)

// ErrNoContent is returned when the article has nothing to summarize.
var ErrNoContent = errors.New("article has no content to summarize")

// maxSentences is the length of a summary in sentences.
const maxSentences = 3

// Summarizer makes short extractive summaries of articles and keeps them
// for the configured TTL.
type Summarizer struct {
	cache cache.Cache[string, string]
}

// NewSummarizer makes a new Summarizer, summaries live for ttl.
func NewSummarizer(ttl time.Duration, maxKeys int) *Summarizer {
	return &Summarizer{
		cache: cache.NewCache[string, string]().
			WithTTL(ttl).
			WithMaxKeys(maxKeys).
			WithLRU(),
	}
}

// CacheStat returns cache stats.
func (s *Summarizer) CacheStat() cache.Stats { return s.cache.Stat() }

// Summarize returns the summary of the article, Cached is set if it
// was served from the cache.
func (s *Summarizer) Summarize(article store.Article) (store.Summary, error) {
	res := store.Summary{ArticleID: article.ID, Title: article.Title}

	if text, ok := s.cache.Get(article.ID); ok {
		res.Text, res.Cached = text, true
		return res, nil
	}

	if !article.HasContent() {
		return store.Summary{}, ErrNoContent
	}

	sents := sentences(*article.Content, maxSentences)
	if len(sents) == 0 {
		return store.Summary{}, ErrNoContent
	}

	res.Text = strings.Join(sents, " ")
	s.cache.Set(article.ID, res.Text, 0)
	return res, nil
}

// sentences returns up to n first sentences of the text.
func sentences(text string, n int) []string {
	var res []string
	runes := []rune(strings.Join(strings.Fields(text), " "))

	start := 0
	for i, r := range runes {
		if len(res) == n {
			break
		}
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			res = append(res, s)
		}
		start = i + 1
	}

	if len(res) < n {
		if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
			res = append(res, tail)
		}
	}

	return res
}
