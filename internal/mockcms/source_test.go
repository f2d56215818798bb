package mockcms

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

func TestCategories(t *testing.T) {
	src := NewSource(0)

	categories, err := src.Categories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1].SortOrder, categories[i].SortOrder)
	}
}

func TestCategory(t *testing.T) {
	src := NewSource(0)

	t.Run("found by slug", func(t *testing.T) {
		cat, err := src.Category(context.Background(), "weddings")
		require.NoError(t, err)
		assert.Equal(t, "Weddings", cat.Name)
	})

	t.Run("nonexistent slug is a sentinel, not a failure", func(t *testing.T) {
		_, err := src.Category(context.Background(), "nonexistent-slug")
		assert.ErrorIs(t, err, content.ErrCategoryNotFound)
	})
}

func TestProjects(t *testing.T) {
	src := NewSource(0)

	t.Run("sorted by published date descending", func(t *testing.T) {
		projects, err := src.Projects(context.Background(), "")
		require.NoError(t, err)
		require.NotEmpty(t, projects)
		for i := 1; i < len(projects); i++ {
			assert.GreaterOrEqual(t, projects[i-1].PublishedDate, projects[i].PublishedDate)
		}
	})

	t.Run("category filter returns only matching projects with https images", func(t *testing.T) {
		projects, err := src.Projects(context.Background(), "weddings")
		require.NoError(t, err)
		require.NotEmpty(t, projects)
		for _, p := range projects {
			assert.Equal(t, "weddings", p.Category.Slug)
			require.NotEmpty(t, p.Images)
			for _, img := range p.Images {
				assert.True(t, strings.HasPrefix(img.URL, "https://"), img.URL)
			}
		}
	})

	t.Run("unknown category yields empty result, not an error", func(t *testing.T) {
		projects, err := src.Projects(context.Background(), "underwater")
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestProject(t *testing.T) {
	src := NewSource(0)

	t.Run("found by slug with resolved category", func(t *testing.T) {
		p, err := src.Project(context.Background(), "sarah-james-wedding")
		require.NoError(t, err)
		assert.Equal(t, "Sarah & James", p.Title)
		assert.Equal(t, "weddings", p.Category.Slug)
	})

	t.Run("nonexistent slug is a sentinel", func(t *testing.T) {
		_, err := src.Project(context.Background(), "missing")
		assert.ErrorIs(t, err, content.ErrProjectNotFound)
	})
}

func TestSiteSettings(t *testing.T) {
	src := NewSource(0)

	settings, err := src.SiteSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content.DefaultRecentWorkCount, settings.RecentWorkCount)
	assert.Equal(t, "hello@ghanadaworks.com", settings.Email)
	assert.NotEmpty(t, settings.SocialLinks)
	require.NotNil(t, settings.HeroImage)
	assert.True(t, strings.HasPrefix(settings.HeroImage.URL, "https://"))
}

func TestRecentWork(t *testing.T) {
	src := NewSource(0)

	t.Run("returns the count most recent projects in order", func(t *testing.T) {
		projects, err := src.RecentWork(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, "johnson-family", projects[0].Slug)
		assert.Equal(t, "morning-rituals", projects[1].Slug)
		assert.Equal(t, "creative-expressions", projects[2].Slug)
	})

	t.Run("count larger than dataset returns everything", func(t *testing.T) {
		projects, err := src.RecentWork(context.Background(), 1000)
		require.NoError(t, err)
		assert.Len(t, projects, 15)
	})

	t.Run("non-positive count returns empty, not everything", func(t *testing.T) {
		projects, err := src.RecentWork(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestSortStability(t *testing.T) {
	t.Run("categories with equal sort order keep input order", func(t *testing.T) {
		src := &Source{categories: []content.Category{
			{ID: "c1", Slug: "later", SortOrder: 2},
			{ID: "c2", Slug: "first-tie", SortOrder: 1},
			{ID: "c3", Slug: "second-tie", SortOrder: 1},
		}}

		categories, err := src.Categories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "first-tie", categories[0].Slug)
		assert.Equal(t, "second-tie", categories[1].Slug)
		assert.Equal(t, "later", categories[2].Slug)
	})

	t.Run("published-date ties keep listing order", func(t *testing.T) {
		src := &Source{projects: []content.Project{
			{ID: "p1", Slug: "old-tie-a", PublishedDate: "2024-06-01"},
			{ID: "p2", Slug: "newest", PublishedDate: "2024-07-01"},
			{ID: "p3", Slug: "old-tie-b", PublishedDate: "2024-06-01"},
		}}

		projects, err := src.Projects(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, "newest", projects[0].Slug)
		assert.Equal(t, "old-tie-a", projects[1].Slug)
		assert.Equal(t, "old-tie-b", projects[2].Slug)

		recent, err := src.RecentWork(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "newest", recent[0].Slug)
		assert.Equal(t, "old-tie-a", recent[1].Slug)
	})
}

func TestDelayRespectsContext(t *testing.T) {
	src := NewSource(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Categories(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
