package content

import "context"

// Source is a content backend: either the live CMS client or the built-in
// demo dataset. Which one serves a process is decided once at startup.
type Source interface {
	// Categories returns all categories sorted by SortOrder ascending.
	Categories(ctx context.Context) ([]Category, error)
	// Category returns one category by slug, or ErrCategoryNotFound.
	Category(ctx context.Context, slug string) (*Category, error)
	// Projects returns projects sorted by PublishedDate descending,
	// optionally filtered by category slug. An unknown category slug
	// yields an empty result, not an error.
	Projects(ctx context.Context, categorySlug string) ([]Project, error)
	// Project returns one project by slug, or ErrProjectNotFound.
	Project(ctx context.Context, slug string) (*Project, error)
	// SiteSettings returns the site-wide singleton, or a default instance
	// when none exists.
	SiteSettings(ctx context.Context) (SiteSettings, error)
	// RecentWork returns the count most recently published projects,
	// descending by date, ties keeping listing order.
	RecentWork(ctx context.Context, count int) ([]Project, error)
}
