package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/georgeey123/ghanada-works/internal/cache"
	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

// ContentService implements content.Service by fronting a content.Source
// with the keyed cache. Backend failures pass through untranslated; the
// handlers decide the user-visible shape.
type ContentService struct {
	source content.Source
	store  *cache.Store
	log    *zap.Logger
}

func NewContentService(source content.Source, store *cache.Store, log *zap.Logger) *ContentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{
		source: source,
		store:  store,
		log:    log,
	}
}

func (s *ContentService) Categories(ctx context.Context) ([]content.Category, error) {
	return cache.Get(ctx, s.store, cache.CategoriesKey(), s.source.Categories)
}

func (s *ContentService) Category(ctx context.Context, slug string) (*content.Category, error) {
	return cache.Get(ctx, s.store, cache.CategoryKey(slug), func(ctx context.Context) (*content.Category, error) {
		return s.source.Category(ctx, slug)
	})
}

func (s *ContentService) Projects(ctx context.Context, categorySlug string) ([]content.Project, error) {
	return cache.Get(ctx, s.store, cache.ProjectsKey(categorySlug), func(ctx context.Context) ([]content.Project, error) {
		return s.source.Projects(ctx, categorySlug)
	})
}

func (s *ContentService) Project(ctx context.Context, slug string) (*content.Project, error) {
	return cache.Get(ctx, s.store, cache.ProjectKey(slug), func(ctx context.Context) (*content.Project, error) {
		return s.source.Project(ctx, slug)
	})
}

func (s *ContentService) SiteSettings(ctx context.Context) (content.SiteSettings, error) {
	return cache.Get(ctx, s.store, cache.SiteSettingsKey(), s.source.SiteSettings)
}

// RecentWork treats count <= 0 as "use the count from site settings". The
// settings lookup happens before the cache key is computed, so the key always
// carries the resolved count.
func (s *ContentService) RecentWork(ctx context.Context, count int) ([]content.Project, error) {
	if count <= 0 {
		settings, err := s.SiteSettings(ctx)
		if err != nil {
			return nil, err
		}
		count = settings.RecentWorkCount
		if count <= 0 {
			count = content.DefaultRecentWorkCount
		}
	}
	return cache.Get(ctx, s.store, cache.RecentWorkKey(count), func(ctx context.Context) ([]content.Project, error) {
		return s.source.RecentWork(ctx, count)
	})
}

func (s *ContentService) Refresh() {
	s.log.Info("clearing content cache")
	s.store.Reset()
}
