package cms

import (
	"strings"

	"go.uber.org/zap"

	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

// Transformer maps raw CMS records onto the flat content model. Every method
// is total over sparse or malformed input: missing and wrong-typed fields
// coerce to safe defaults, and data-quality problems are logged rather than
// surfaced as errors, so an incomplete entry still renders.
type Transformer struct {
	log *zap.Logger
}

func NewTransformer(log *zap.Logger) *Transformer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transformer{log: log}
}

// normalizeAsset converts a raw media asset record into an Image. The false
// return means "no image provided", which is a normal state, not an error.
// Protocol-relative URLs are rewritten to https at this point so nothing
// downstream ever sees a "//" URL.
func normalizeAsset(raw any) (content.Image, bool) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return content.Image{}, false
	}
	fields, ok := rec["fields"].(map[string]any)
	if !ok {
		return content.Image{}, false
	}
	file, ok := fields["file"].(map[string]any)
	if !ok {
		return content.Image{}, false
	}
	url, _ := file["url"].(string)
	if url == "" {
		return content.Image{}, false
	}
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	}

	img := content.Image{
		URL:         url,
		Title:       stringValue(fields["title"]),
		Description: stringValue(fields["description"]),
	}
	if details, ok := file["details"].(map[string]any); ok {
		if dim, ok := details["image"].(map[string]any); ok {
			img.Width = intValue(dim["width"])
			img.Height = intValue(dim["height"])
		}
	}
	return img, true
}

func (t *Transformer) ToCategory(rec map[string]any) content.Category {
	fields := entryFields(rec)
	c := content.Category{
		ID:          recordID(rec),
		Name:        stringValue(fields["name"]),
		Slug:        stringValue(fields["slug"]),
		Description: stringValue(fields["description"]),
		SortOrder:   intValue(fields["sortOrder"]),
	}
	if img, ok := normalizeAsset(fields["heroImage"]); ok {
		c.HeroImage = &img
	}
	return c
}

func (t *Transformer) ToProject(rec map[string]any) content.Project {
	fields := entryFields(rec)
	p := content.Project{
		ID:            recordID(rec),
		Title:         stringValue(fields["title"]),
		Slug:          stringValue(fields["slug"]),
		Images:        []content.Image{},
		Featured:      boolValue(fields["featured"]),
		PublishedDate: stringValue(fields["publishedDate"]),
		Description:   stringValue(fields["description"]),
		Location:      stringValue(fields["location"]),
		ClientName:    stringValue(fields["clientName"]),
		Tags:          stringSliceValue(fields["tags"]),
	}

	// A project without a resolvable category link keeps the zero-value
	// category instead of failing the whole mapping.
	catRec, ok := fields["category"].(map[string]any)
	if ok && entryFields(catRec) != nil {
		p.Category = t.ToCategory(catRec)
	} else {
		t.log.Warn("project category link is missing or unresolved",
			zap.String("project_id", p.ID),
			zap.String("project_slug", p.Slug))
	}

	if items, ok := fields["images"].([]any); ok {
		for _, item := range items {
			img, ok := normalizeAsset(item)
			if !ok {
				t.log.Warn("dropping project image without a file URL",
					zap.String("project_id", p.ID))
				continue
			}
			p.Images = append(p.Images, img)
		}
	}
	return p
}

func (t *Transformer) ToSiteSettings(rec map[string]any) content.SiteSettings {
	fields := entryFields(rec)
	s := content.DefaultSiteSettings()

	s.HeroTitle = stringValue(fields["heroTitle"])
	s.HeroSubtitle = stringValue(fields["heroSubtitle"])
	s.Bio = stringValue(fields["bio"])
	s.ProcessContent = stringValue(fields["processContent"])
	s.Email = stringValue(fields["email"])
	s.Phone = stringValue(fields["phone"])
	s.Location = stringValue(fields["location"])
	if n, ok := numberValue(fields["recentWorkCount"]); ok {
		s.RecentWorkCount = n
	}
	if img, ok := normalizeAsset(fields["heroImage"]); ok {
		s.HeroImage = &img
	}
	if img, ok := normalizeAsset(fields["photographerPhoto"]); ok {
		s.PhotographerPhoto = &img
	}
	if links, ok := fields["socialLinks"].([]any); ok {
		for _, raw := range links {
			link, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			s.SocialLinks = append(s.SocialLinks, content.SocialLink{
				Platform: stringValue(link["platform"]),
				URL:      stringValue(link["url"]),
				Icon:     stringValue(link["icon"]),
			})
		}
	}
	return s
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func numberValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func intValue(v any) int {
	n, _ := numberValue(v)
	return n
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

func stringSliceValue(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
