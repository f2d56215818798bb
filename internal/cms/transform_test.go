package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

func rawAsset(url string, width, height float64) map[string]any {
	file := map[string]any{"url": url}
	if width > 0 || height > 0 {
		file["details"] = map[string]any{
			"image": map[string]any{"width": width, "height": height},
		}
	}
	return map[string]any{
		"sys":    map[string]any{"id": "asset-1", "type": "Asset"},
		"fields": map[string]any{"title": "A title", "file": file},
	}
}

func TestNormalizeAsset(t *testing.T) {
	t.Run("absent for nil input", func(t *testing.T) {
		_, ok := normalizeAsset(nil)
		assert.False(t, ok)
	})

	t.Run("absent when fields are missing", func(t *testing.T) {
		_, ok := normalizeAsset(map[string]any{"sys": map[string]any{"id": "x"}})
		assert.False(t, ok)
	})

	t.Run("absent when file has no URL", func(t *testing.T) {
		_, ok := normalizeAsset(map[string]any{
			"fields": map[string]any{"file": map[string]any{}},
		})
		assert.False(t, ok)
	})

	t.Run("absent when file URL is wrong type", func(t *testing.T) {
		_, ok := normalizeAsset(map[string]any{
			"fields": map[string]any{"file": map[string]any{"url": 42.0}},
		})
		assert.False(t, ok)
	})

	t.Run("protocol-relative URL rewritten to https", func(t *testing.T) {
		img, ok := normalizeAsset(rawAsset("//images.ctfassets.net/s/a.jpg", 0, 0))
		require.True(t, ok)
		assert.Equal(t, "https://images.ctfassets.net/s/a.jpg", img.URL)
	})

	t.Run("absolute URL passes through", func(t *testing.T) {
		img, ok := normalizeAsset(rawAsset("https://cdn.example.com/a.jpg", 0, 0))
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/a.jpg", img.URL)
	})

	t.Run("dimensions default to zero without metadata", func(t *testing.T) {
		img, ok := normalizeAsset(rawAsset("//h/a.jpg", 0, 0))
		require.True(t, ok)
		assert.Equal(t, 0, img.Width)
		assert.Equal(t, 0, img.Height)
	})

	t.Run("dimensions read from nested metadata", func(t *testing.T) {
		img, ok := normalizeAsset(rawAsset("//h/a.jpg", 1200, 800))
		require.True(t, ok)
		assert.Equal(t, 1200, img.Width)
		assert.Equal(t, 800, img.Height)
	})

	t.Run("title passes through", func(t *testing.T) {
		img, ok := normalizeAsset(rawAsset("//h/a.jpg", 0, 0))
		require.True(t, ok)
		assert.Equal(t, "A title", img.Title)
	})
}

func TestToCategory(t *testing.T) {
	tr := NewTransformer(nil)

	t.Run("maps a full entry", func(t *testing.T) {
		cat := tr.ToCategory(map[string]any{
			"sys": map[string]any{"id": "cat-1"},
			"fields": map[string]any{
				"name":        "Weddings",
				"slug":        "weddings",
				"description": "Wedding photography",
				"sortOrder":   3.0,
				"heroImage":   rawAsset("//h/hero.jpg", 1920, 1080),
			},
		})
		assert.Equal(t, "cat-1", cat.ID)
		assert.Equal(t, "Weddings", cat.Name)
		assert.Equal(t, "weddings", cat.Slug)
		assert.Equal(t, "Wedding photography", cat.Description)
		assert.Equal(t, 3, cat.SortOrder)
		require.NotNil(t, cat.HeroImage)
		assert.Equal(t, "https://h/hero.jpg", cat.HeroImage.URL)
	})

	t.Run("coerces missing fields to defaults", func(t *testing.T) {
		cat := tr.ToCategory(map[string]any{"sys": map[string]any{"id": "cat-2"}})
		assert.Equal(t, "cat-2", cat.ID)
		assert.Empty(t, cat.Name)
		assert.Empty(t, cat.Slug)
		assert.Equal(t, 0, cat.SortOrder)
		assert.Nil(t, cat.HeroImage)
	})

	t.Run("coerces wrong-typed fields", func(t *testing.T) {
		cat := tr.ToCategory(map[string]any{
			"sys": map[string]any{"id": "cat-3"},
			"fields": map[string]any{
				"name":      12.0,
				"sortOrder": "first",
			},
		})
		assert.Empty(t, cat.Name)
		assert.Equal(t, 0, cat.SortOrder)
	})

	t.Run("total over nil record", func(t *testing.T) {
		cat := tr.ToCategory(nil)
		assert.Empty(t, cat.ID)
	})
}

func TestToProject(t *testing.T) {
	tr := NewTransformer(nil)

	categoryEntry := map[string]any{
		"sys":    map[string]any{"id": "cat-1"},
		"fields": map[string]any{"name": "Weddings", "slug": "weddings", "sortOrder": 1.0},
	}

	t.Run("maps a full entry and resolves category", func(t *testing.T) {
		p := tr.ToProject(map[string]any{
			"sys": map[string]any{"id": "proj-1"},
			"fields": map[string]any{
				"title":         "Sarah & James",
				"slug":          "sarah-james-wedding",
				"category":      categoryEntry,
				"images":        []any{rawAsset("//h/1.jpg", 1200, 800), rawAsset("//h/2.jpg", 800, 1200)},
				"featured":      true,
				"publishedDate": "2024-10-15",
				"location":      "Botanical Gardens",
				"tags":          []any{"outdoor", "garden"},
			},
		})
		assert.Equal(t, "proj-1", p.ID)
		assert.Equal(t, "weddings", p.Category.Slug)
		assert.True(t, p.Featured)
		assert.Equal(t, "2024-10-15", p.PublishedDate)
		assert.Equal(t, []string{"outdoor", "garden"}, p.Tags)
		require.Len(t, p.Images, 2)
		assert.Equal(t, "https://h/1.jpg", p.Images[0].URL)
	})

	t.Run("missing images field yields empty slice, not nil", func(t *testing.T) {
		p := tr.ToProject(map[string]any{
			"sys":    map[string]any{"id": "proj-2"},
			"fields": map[string]any{"title": "Bare", "category": categoryEntry},
		})
		require.NotNil(t, p.Images)
		assert.Empty(t, p.Images)
	})

	t.Run("broken images are dropped silently", func(t *testing.T) {
		p := tr.ToProject(map[string]any{
			"sys": map[string]any{"id": "proj-3"},
			"fields": map[string]any{
				"category": categoryEntry,
				"images": []any{
					rawAsset("//h/good.jpg", 0, 0),
					map[string]any{"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": "gone"}},
					nil,
				},
			},
		})
		require.Len(t, p.Images, 1)
		assert.Equal(t, "https://h/good.jpg", p.Images[0].URL)
	})

	t.Run("unresolved category link keeps zero-value category", func(t *testing.T) {
		p := tr.ToProject(map[string]any{
			"sys": map[string]any{"id": "proj-4"},
			"fields": map[string]any{
				"title":    "Orphan",
				"category": map[string]any{"sys": map[string]any{"type": "Link", "linkType": "Entry", "id": "gone"}},
			},
		})
		assert.Empty(t, p.Category.ID)
		assert.Empty(t, p.Category.Slug)
	})

	t.Run("featured defaults to false", func(t *testing.T) {
		p := tr.ToProject(map[string]any{
			"sys":    map[string]any{"id": "proj-5"},
			"fields": map[string]any{"category": categoryEntry},
		})
		assert.False(t, p.Featured)
	})
}

func TestToSiteSettings(t *testing.T) {
	tr := NewTransformer(nil)

	t.Run("maps a full entry", func(t *testing.T) {
		s := tr.ToSiteSettings(map[string]any{
			"sys": map[string]any{"id": "settings"},
			"fields": map[string]any{
				"heroTitle":       "Authentic Moments",
				"heroSubtitle":    "Captured with Heart",
				"recentWorkCount": 9.0,
				"email":           "hello@ghanadaworks.com",
				"phone":           "+1 555",
				"location":        "LA",
				"heroImage":       rawAsset("//h/hero.jpg", 1920, 1080),
				"socialLinks": []any{
					map[string]any{"platform": "Instagram", "url": "https://instagram.com/x"},
					"not a link",
				},
			},
		})
		assert.Equal(t, "Authentic Moments", s.HeroTitle)
		assert.Equal(t, 9, s.RecentWorkCount)
		assert.Equal(t, "hello@ghanadaworks.com", s.Email)
		require.NotNil(t, s.HeroImage)
		require.Len(t, s.SocialLinks, 1)
		assert.Equal(t, "Instagram", s.SocialLinks[0].Platform)
	})

	t.Run("empty entry yields the documented defaults", func(t *testing.T) {
		s := tr.ToSiteSettings(map[string]any{"sys": map[string]any{"id": "settings"}})
		assert.Equal(t, content.DefaultRecentWorkCount, s.RecentWorkCount)
		assert.Empty(t, s.Email)
		assert.Empty(t, s.Phone)
		assert.Empty(t, s.Location)
		require.NotNil(t, s.SocialLinks)
		assert.Empty(t, s.SocialLinks)
		assert.Nil(t, s.HeroImage)
		assert.Nil(t, s.PhotographerPhoto)
	})
}
