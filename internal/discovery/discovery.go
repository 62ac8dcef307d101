// Package discovery exposes read-only derived views over published content:
// trending, recommended, popular, related and recent. The query layer is
// deterministic; ranking metrics come from a pluggable Ranker collaborator
// and every metadata field is optional.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contentforge/content-service/internal/cms"
)

// Kind names a discovery view, used for cache keys and ranker dispatch.
type Kind string

const (
	KindTrending    Kind = "trending"
	KindRecommended Kind = "recommended"
	KindPopular     Kind = "popular"
	KindRelated     Kind = "related"
	KindRecent      Kind = "recent"
)

// MaxLimit bounds discovery page sizes regardless of what the caller asks for.
const MaxLimit = 50

// ErrUnknownPeriod is returned for a period token outside the closed set.
var ErrUnknownPeriod = errors.New("unknown period")

// periodWindows maps the popular-content period token to a lookback window.
// A zero window means no lower bound.
var periodWindows = map[string]time.Duration{
	"day":   24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
	"all":   0,
}

// Query carries the filters shared by all discovery views.
type Query struct {
	Category *string
	Language *string
	Page     int
	Limit    int
}

func (q *Query) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// Meta is the open-ended discovery metadata bag. Every field is
// collaborator-supplied and optional.
type Meta struct {
	ViewCount           *int     `json:"viewCount,omitempty"`
	LikeCount           *int     `json:"likeCount,omitempty"`
	ShareCount          *int     `json:"shareCount,omitempty"`
	TrendingScore       *float64 `json:"trending_score,omitempty"`
	PopularityRank      *int     `json:"popularity_rank,omitempty"`
	RecommendationScore *float64 `json:"recommendation_score,omitempty"`
	SimilarityScore     *float64 `json:"similarity_score,omitempty"`
}

// Item is a content record decorated with discovery metadata.
type Item struct {
	Content cms.Content
	Meta    Meta
}

// Result is one page of a discovery view.
type Result struct {
	Items     []Item
	Total     int
	Page      int
	Limit     int
	UpdatedAt time.Time
}

// Ranker decorates a deterministically queried page with scores and ranks.
// The actual scoring algorithm is an external design concern.
type Ranker interface {
	Rank(ctx context.Context, kind Kind, items []cms.Content) ([]Item, error)
}

// NoopRanker passes items through without metrics. It is the default until a
// real scoring strategy is plugged in.
type NoopRanker struct{}

func (NoopRanker) Rank(_ context.Context, _ Kind, items []cms.Content) ([]Item, error) {
	result := make([]Item, len(items))
	for i := range items {
		result[i] = Item{Content: items[i]}
	}
	return result, nil
}

// ContentProvider is the slice of the cms manager the facade reads through.
type ContentProvider interface {
	ContentByFilter(ctx context.Context, filter cms.Filter) ([]cms.Content, int, error)
	PublishedContentByID(ctx context.Context, id string) (*cms.Content, error)
}

// Cacher is the advisory TTL cache collaborator.
type Cacher interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

type Manager struct {
	content ContentProvider
	cache   Cacher
	ranker  Ranker
}

// NewManager wires the facade. cache may be nil to disable caching and
// ranker may be nil to fall back to NoopRanker.
func NewManager(content ContentProvider, c Cacher, ranker Ranker) *Manager {
	if ranker == nil {
		ranker = NoopRanker{}
	}

	return &Manager{
		content: content,
		cache:   c,
		ranker:  ranker,
	}
}

// Trending returns recently published content in the requested window,
// decorated by the ranker.
func (m *Manager) Trending(ctx context.Context, query Query) (*Result, error) {
	return m.page(ctx, KindTrending, query, cacheKey{Kind: KindTrending, Query: query}, nil)
}

// Recommended returns candidate content for recommendation.
func (m *Manager) Recommended(ctx context.Context, query Query) (*Result, error) {
	return m.page(ctx, KindRecommended, query, cacheKey{Kind: KindRecommended, Query: query}, nil)
}

// Recent returns the newest published content.
func (m *Manager) Recent(ctx context.Context, query Query) (*Result, error) {
	return m.page(ctx, KindRecent, query, cacheKey{Kind: KindRecent, Query: query}, nil)
}

// Popular restricts the candidate set to the given period before ranking.
func (m *Manager) Popular(ctx context.Context, query Query, period string) (*Result, error) {
	if period == "" {
		period = "all"
	}
	window, ok := periodWindows[period]
	if !ok {
		return nil, fmt.Errorf("period %q: %w", period, ErrUnknownPeriod)
	}

	var from *time.Time
	if window > 0 {
		t := time.Now().Add(-window)
		from = &t
	}

	return m.page(ctx, KindPopular, query, cacheKey{Kind: KindPopular, Query: query, Period: period}, func(f *cms.Filter) {
		f.PublishedFrom = from
	})
}

// Related returns published content sharing the source record's category,
// with the source itself excluded. The exclusion happens in the query so the
// reported total and page sizes stay exact.
func (m *Manager) Related(ctx context.Context, id string, query Query) (*Result, error) {
	src, err := m.content.PublishedContentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source content: %w", err)
	}

	return m.page(ctx, KindRelated, query, cacheKey{Kind: KindRelated, Query: query, ContentID: id}, func(f *cms.Filter) {
		f.Category = &src.Category
		f.ExcludeID = &id
	})
}

type cacheKey struct {
	Kind      Kind
	Query     Query
	Period    string
	ContentID string
}

func (m *Manager) page(ctx context.Context, kind Kind, query Query, key cacheKey, adjust func(*cms.Filter)) (*Result, error) {
	query.normalize()
	key.Query = query

	var keyStr string
	if m.cache != nil {
		keyStr = generateKey(key)
		if cached, ok := m.cache.Get(keyStr); ok {
			if result, ok := cached.(*Result); ok {
				return result, nil
			}
		}
	}

	published := cms.StatusPublished
	filter := cms.Filter{
		Category:  query.Category,
		Language:  query.Language,
		Status:    &published,
		SortBy:    "published_at",
		SortOrder: "desc",
		Page:      query.Page,
		Limit:     query.Limit,
	}
	if adjust != nil {
		adjust(&filter)
	}

	list, total, err := m.content.ContentByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query %s content: %w", kind, err)
	}

	items, err := m.ranker.Rank(ctx, kind, list)
	if err != nil {
		return nil, fmt.Errorf("rank %s content: %w", kind, err)
	}

	result := &Result{
		Items:     items,
		Total:     total,
		Page:      query.Page,
		Limit:     query.Limit,
		UpdatedAt: time.Now(),
	}

	if m.cache != nil {
		m.cache.Set(keyStr, result)
	}

	return result, nil
}
