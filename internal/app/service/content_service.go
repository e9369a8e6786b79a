// Package service provides application use cases.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"intranet-portal/internal/domain"
)

// ContentService handles content listing and search.
type ContentService struct {
	store    domain.Store
	cache    domain.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewContentService creates a new ContentService. cache may be nil, in which
// case search responses are computed on every request.
func NewContentService(store domain.Store, cache domain.Cache, cacheTTL time.Duration, logger *zap.Logger) *ContentService {
	return &ContentService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// List returns a filtered, sorted, paginated page of content items.
// Pagination is validated before any other work happens.
func (s *ContentService) List(ctx context.Context, q domain.ContentQuery) ([]*domain.ContentItem, domain.PageMeta, error) {
	if err := q.Pagination.Validate(); err != nil {
		return nil, domain.PageMeta{}, err
	}

	items, err := s.store.Contents(ctx)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	filtered := domain.FilterContent(items, q.Filters())

	// Sort on a copy so the store snapshot keeps its original order.
	ordered := slices.Clone(filtered)
	domain.SortContent(ordered, q.SortBy, q.SortOrder)

	page, meta := domain.Paginate(ordered, q.Pagination)

	s.logger.Debug("content listed",
		zap.Int("total", meta.Total),
		zap.Int("page", meta.Page),
		zap.Int("count", len(page)),
	)

	return page, meta, nil
}

// SearchOutput holds a page of scored results plus pagination metadata.
type SearchOutput struct {
	Results []domain.SearchResult `json:"results"`
	Meta    domain.PageMeta       `json:"meta"`
}

// Search filters, scores, sorts and paginates content against the query.
// When a cache is configured the computed page is cached by normalized query.
func (s *ContentService) Search(ctx context.Context, q domain.SearchQuery) (*SearchOutput, error) {
	if err := q.Pagination.Validate(); err != nil {
		return nil, err
	}

	cacheKey := searchCacheKey(q)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			var out SearchOutput
			if err := json.Unmarshal(cached, &out); err == nil {
				return &out, nil
			}
			// Corrupt entry: fall through and recompute
			_ = s.cache.Delete(ctx, cacheKey)
		}
	}

	items, err := s.store.Contents(ctx)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterContent(items, q.Filters())
	results := domain.ScoreContent(filtered, q.Query)
	domain.SortResults(results, q.SortBy, q.SortOrder)

	page, meta := domain.Paginate(results, q.Pagination)
	out := &SearchOutput{Results: page, Meta: meta}

	if s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
				s.logger.Warn("search cache set failed", zap.Error(err))
			}
		}
	}

	s.logger.Debug("search completed",
		zap.String("query", q.Query),
		zap.Int("total", meta.Total),
		zap.Int("count", len(page)),
	)

	return out, nil
}

// searchCacheKey derives a stable cache key from the full query.
func searchCacheKey(q domain.SearchQuery) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%+v", q)))
	return "search:" + hex.EncodeToString(sum[:16])
}
