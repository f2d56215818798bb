package mockcms

import (
	"context"
	"sort"
	"time"

	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

// Source serves the built-in demo dataset. It implements content.Source with
// a small artificial delay so consumers still exercise their loading states,
// but is otherwise deterministic.
type Source struct {
	delay      time.Duration
	categories []content.Category
	projects   []content.Project
	settings   content.SiteSettings
}

func NewSource(delay time.Duration) *Source {
	categories := buildCategories()
	return &Source{
		delay:      delay,
		categories: categories,
		projects:   buildProjects(categories),
		settings:   buildSiteSettings(),
	}
}

func (s *Source) Categories(ctx context.Context) ([]content.Category, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]content.Category, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

func (s *Source) Category(ctx context.Context, slug string) (*content.Category, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	for _, c := range s.categories {
		if c.Slug == slug {
			cat := c
			return &cat, nil
		}
	}
	return nil, content.ErrCategoryNotFound
}

func (s *Source) Projects(ctx context.Context, categorySlug string) ([]content.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]content.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if categorySlug == "" || p.Category.Slug == categorySlug {
			out = append(out, p)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (s *Source) Project(ctx context.Context, slug string) (*content.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	for _, p := range s.projects {
		if p.Slug == slug {
			proj := p
			return &proj, nil
		}
	}
	return nil, content.ErrProjectNotFound
}

func (s *Source) SiteSettings(ctx context.Context) (content.SiteSettings, error) {
	if err := s.wait(ctx); err != nil {
		return content.SiteSettings{}, err
	}
	return s.settings, nil
}

func (s *Source) RecentWork(ctx context.Context, count int) ([]content.Project, error) {
	if count <= 0 {
		return []content.Project{}, nil
	}
	projects, err := s.Projects(ctx, "")
	if err != nil {
		return nil, err
	}
	if count < len(projects) {
		projects = projects[:count]
	}
	return projects, nil
}

// sortByDateDesc orders by published date descending. ISO dates compare
// correctly as strings; the sort is stable so ties keep listing order.
func sortByDateDesc(projects []content.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].PublishedDate > projects[j].PublishedDate
	})
}

func (s *Source) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
