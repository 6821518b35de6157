package revisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// SyntheticItems is the number of items a Synthetic source returns per search.
const SyntheticItems = 8

var (
	syntheticSources   = []string{"Reuters", "Bloomberg", "Financial Times", "CNBC"}
	syntheticHeadlines = []string{
		"%s rally extends into a third session",
		"Analysts split over the outlook for %s",
		"What the latest data means for %s",
		"Regulators take a closer look at %s",
		"Investors rotate out of %s as yields climb",
		"%s volatility hits a six-month high",
		"Five charts that explain %s this week",
		"Why %s could surprise in the next quarter",
	}
)

// Synthetic is a Source that makes up a deterministic batch of items for
// every keyword. Repeated searches return the same external ids. Every third
// item comes without content, the seventh has no external id at all.
type Synthetic struct {
	// Now is used to date the items, defaults to time.Now.
	Now func() time.Time
}

// Search returns the batch for the keyword.
func (s Synthetic) Search(_ context.Context, keyword string) ([]Item, error) {
	now := lo.Ternary(s.Now != nil, s.Now, time.Now)().UTC().Truncate(time.Hour)
	kw := strings.ToLower(strings.TrimSpace(keyword))

	items := make([]Item, 0, SyntheticItems)
	for i := 0; i < SyntheticItems; i++ {
		title := fmt.Sprintf(syntheticHeadlines[i%len(syntheticHeadlines)], kw)
		if r := []rune(title); len(r) > 0 {
			title = strings.ToUpper(string(r[0])) + string(r[1:])
		}
		extID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("synthetic/%s/%d", kw, i))).String()

		item := Item{
			ExternalID:  extID,
			Title:       title,
			Description: fmt.Sprintf("Coverage of %s from %s.", kw, syntheticSources[i%len(syntheticSources)]),
			URL:         fmt.Sprintf("https://news.example.com/%s/%s", kw, extID),
			Source:      syntheticSources[i%len(syntheticSources)],
			PublishedAt: lo.ToPtr(now.Add(-time.Duration(i) * time.Hour)),
		}

		if i%3 != 2 {
			item.Content = lo.ToPtr(fmt.Sprintf("%s. Traders said moves in %s were driven by fresh "+
				"economic data released earlier in the day. Market participants expect "+
				"further swings as central banks signal their next steps. Some strategists "+
				"warned that positioning in %s has become crowded.", title, kw, kw))
		}

		if i == 6 {
			item.ExternalID = ""
		}

		items = append(items, item)
	}

	return items, nil
}
