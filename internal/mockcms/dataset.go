package mockcms

import (
	"fmt"

	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

// Demo dataset served when no CMS credentials are configured. Image URLs
// point at picsum.photos so the gallery renders real photos out of the box.

func image(id, width, height int) content.Image {
	return content.Image{
		URL:    fmt.Sprintf("https://picsum.photos/id/%d/%d/%d", id, width, height),
		Title:  fmt.Sprintf("Image %d", id),
		Width:  width,
		Height: height,
	}
}

func imagePtr(id, width, height int) *content.Image {
	img := image(id, width, height)
	return &img
}

// projectImages mixes landscape and portrait shots for variety, or produces
// all-portrait sets for headshot-style sessions.
func projectImages(startID, count int, portrait bool) []content.Image {
	images := make([]content.Image, 0, count)
	for i := 0; i < count; i++ {
		id := startID + i
		switch {
		case portrait:
			images = append(images, image(id, 800, 1200))
		case i%3 == 0:
			images = append(images, image(id, 800, 1200))
		default:
			images = append(images, image(id, 1200, 800))
		}
	}
	return images
}

func buildCategories() []content.Category {
	return []content.Category{
		{
			ID:          "cat-1",
			Name:        "Weddings",
			Slug:        "weddings",
			Description: "Capturing the magic of your special day with authentic, heartfelt imagery that tells your unique love story.",
			HeroImage:   imagePtr(1015, 1920, 1080),
			SortOrder:   1,
		},
		{
			ID:          "cat-2",
			Name:        "Glamour",
			Slug:        "glamour",
			Description: "Elegant and sophisticated portraits that showcase your beauty and confidence.",
			HeroImage:   imagePtr(1027, 1920, 1080),
			SortOrder:   2,
		},
		{
			ID:          "cat-3",
			Name:        "Family",
			Slug:        "family",
			Description: "Preserving precious family moments and connections that will be treasured for generations.",
			HeroImage:   imagePtr(1025, 1920, 1080),
			SortOrder:   3,
		},
		{
			ID:          "cat-4",
			Name:        "Portrait",
			Slug:        "portrait",
			Description: "Personal portraits that capture your essence and tell your individual story.",
			HeroImage:   imagePtr(1005, 1920, 1080),
			SortOrder:   4,
		},
		{
			ID:          "cat-5",
			Name:        "Headshots",
			Slug:        "headshots",
			Description: "Professional headshots for business, acting, and personal branding.",
			HeroImage:   imagePtr(1074, 1920, 1080),
			SortOrder:   5,
		},
		{
			ID:          "cat-6",
			Name:        "Lifestyle",
			Slug:        "lifestyle",
			Description: "Natural, candid photography that captures the beauty of everyday moments.",
			HeroImage:   imagePtr(1011, 1920, 1080),
			SortOrder:   6,
		},
	}
}

func buildProjects(categories []content.Category) []content.Project {
	return []content.Project{
		{
			ID:            "proj-1",
			Title:         "Sarah & James",
			Slug:          "sarah-james-wedding",
			Category:      categories[0],
			Images:        projectImages(100, 45, false),
			Featured:      true,
			PublishedDate: "2024-10-15",
			Description:   "An intimate garden ceremony filled with love and laughter.",
			Location:      "Botanical Gardens",
		},
		{
			ID:            "proj-2",
			Title:         "Emma & Michael",
			Slug:          "emma-michael-wedding",
			Category:      categories[0],
			Images:        projectImages(150, 52, false),
			PublishedDate: "2024-09-22",
			Description:   "A stunning beachside celebration at sunset.",
			Location:      "Malibu Beach",
		},
		{
			ID:            "proj-3",
			Title:         "Olivia & Daniel",
			Slug:          "olivia-daniel-wedding",
			Category:      categories[0],
			Images:        projectImages(200, 38, false),
			PublishedDate: "2024-08-10",
			Description:   "Classic elegance meets modern romance.",
			Location:      "Grand Estate",
		},
		{
			ID:            "proj-4",
			Title:         "Elegance Collection",
			Slug:          "elegance-collection",
			Category:      categories[1],
			Images:        projectImages(250, 24, true),
			Featured:      true,
			PublishedDate: "2024-11-01",
			Description:   "A series celebrating timeless beauty and grace.",
		},
		{
			ID:            "proj-5",
			Title:         "Golden Hour",
			Slug:          "golden-hour-glamour",
			Category:      categories[1],
			Images:        projectImages(280, 18, true),
			PublishedDate: "2024-10-05",
			Description:   "Capturing natural light at its most magical.",
		},
		{
			ID:            "proj-6",
			Title:         "The Johnson Family",
			Slug:          "johnson-family",
			Category:      categories[2],
			Images:        projectImages(300, 28, false),
			Featured:      true,
			PublishedDate: "2024-11-10",
			Description:   "Three generations coming together for a special portrait session.",
			Location:      "City Park",
		},
		{
			ID:            "proj-7",
			Title:         "Summer with the Petersons",
			Slug:          "peterson-summer",
			Category:      categories[2],
			Images:        projectImages(330, 35, false),
			PublishedDate: "2024-07-15",
			Description:   "A fun-filled summer session by the lake.",
			Location:      "Lake House",
		},
		{
			ID:            "proj-8",
			Title:         "Williams Family Reunion",
			Slug:          "williams-reunion",
			Category:      categories[2],
			Images:        projectImages(370, 42, false),
			PublishedDate: "2024-06-20",
			Description:   "Capturing the joy of family coming together.",
		},
		{
			ID:            "proj-9",
			Title:         "Creative Expressions",
			Slug:          "creative-expressions",
			Category:      categories[3],
			Images:        projectImages(420, 20, true),
			Featured:      true,
			PublishedDate: "2024-11-05",
			Description:   "Artistic portraits exploring light and shadow.",
		},
		{
			ID:            "proj-10",
			Title:         "Natural Beauty",
			Slug:          "natural-beauty-portraits",
			Category:      categories[3],
			Images:        projectImages(450, 16, true),
			PublishedDate: "2024-09-18",
			Description:   "Celebrating authentic, unfiltered beauty.",
		},
		{
			ID:            "proj-11",
			Title:         "Executive Portraits",
			Slug:          "executive-portraits",
			Category:      categories[4],
			Images:        projectImages(480, 15, true),
			Featured:      true,
			PublishedDate: "2024-10-28",
			Description:   "Professional headshots for corporate leaders.",
		},
		{
			ID:            "proj-12",
			Title:         "Actor Headshots",
			Slug:          "actor-headshots",
			Category:      categories[4],
			Images:        projectImages(500, 22, true),
			PublishedDate: "2024-09-12",
			Description:   "Dynamic headshots for performers and artists.",
		},
		{
			ID:            "proj-13",
			Title:         "Morning Rituals",
			Slug:          "morning-rituals",
			Category:      categories[5],
			Images:        projectImages(520, 26, false),
			Featured:      true,
			PublishedDate: "2024-11-08",
			Description:   "Quiet moments at the start of the day.",
		},
		{
			ID:            "proj-14",
			Title:         "Urban Adventures",
			Slug:          "urban-adventures",
			Category:      categories[5],
			Images:        projectImages(550, 25, false),
			PublishedDate: "2024-10-01",
			Description:   "Exploring the city through a candid lens.",
			Location:      "Downtown",
		},
		{
			ID:            "proj-15",
			Title:         "Weekend Wanderings",
			Slug:          "weekend-wanderings",
			Category:      categories[5],
			Images:        projectImages(580, 30, false),
			PublishedDate: "2024-08-25",
			Description:   "Capturing the joy of spontaneous moments.",
		},
	}
}

func buildSiteSettings() content.SiteSettings {
	return content.SiteSettings{
		HeroImage:         imagePtr(1018, 1920, 1080),
		HeroTitle:         "Authentic Moments",
		HeroSubtitle:      "Captured with Heart",
		RecentWorkCount:   content.DefaultRecentWorkCount,
		PhotographerPhoto: imagePtr(1012, 800, 1000),
		Bio: "I'm a passionate photographer based in the heart of the city, dedicated to capturing life's most precious moments with authenticity and heart.\n\n" +
			"With over a decade of experience, I've had the privilege of documenting countless love stories, family milestones, and personal journeys. My approach is simple: create a comfortable, relaxed environment where genuine emotions can shine through.\n\n" +
			"Every photograph tells a story, and I'm honored to help tell yours.",
		ProcessContent: "## My Process\n\n" +
			"**1. Consultation**\nWe start with a conversation about your vision, preferences, and the story you want to tell. This helps me understand your unique needs and style.\n\n" +
			"**2. The Session**\nOn the day of your shoot, I create a relaxed atmosphere where you can be yourself. I guide you through poses while capturing authentic moments in between.\n\n" +
			"**3. Curation & Editing**\nI carefully select and edit the best images from our session, enhancing them while maintaining a natural, timeless feel.\n\n" +
			"**4. Delivery**\nYour final images are delivered through a private online gallery, ready for you to download, share, and print.",
		Email:    "hello@ghanadaworks.com",
		Phone:    "+1 (555) 123-4567",
		Location: "Los Angeles, California",
		SocialLinks: []content.SocialLink{
			{Platform: "Instagram", URL: "https://instagram.com/ghanadaworks"},
			{Platform: "Facebook", URL: "https://facebook.com/ghanadaworks"},
			{Platform: "Pinterest", URL: "https://pinterest.com/ghanadaworks"},
		},
	}
}
