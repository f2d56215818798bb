package content

// DefaultRecentWorkCount is used when site settings do not specify how many
// projects the landing page should show.
const DefaultRecentWorkCount = 6

// Image is a normalized media descriptor. URL is always absolute https;
// Width/Height are 0 when the source asset carries no dimension metadata.
type Image struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Category groups projects for portfolio browsing. Identified externally by Slug.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	HeroImage   *Image `json:"hero_image,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

// Project is a published shoot. Category is embedded (denormalized), never a
// dangling reference. Images is display-ordered and may be empty, never nil.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Category      Category `json:"category"`
	Images        []Image  `json:"images"`
	Featured      bool     `json:"featured"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description,omitempty"`
	Location      string   `json:"location,omitempty"`
	ClientName    string   `json:"client_name,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// SocialLink is one entry in the site-wide social navigation.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// SiteSettings is the site-wide singleton. SocialLinks is never nil.
type SiteSettings struct {
	HeroImage         *Image       `json:"hero_image,omitempty"`
	HeroTitle         string       `json:"hero_title,omitempty"`
	HeroSubtitle      string       `json:"hero_subtitle,omitempty"`
	RecentWorkCount   int          `json:"recent_work_count"`
	PhotographerPhoto *Image       `json:"photographer_photo,omitempty"`
	Bio               string       `json:"bio,omitempty"`
	ProcessContent    string       `json:"process_content,omitempty"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	Location          string       `json:"location"`
	SocialLinks       []SocialLink `json:"social_links"`
}

// DefaultSiteSettings is returned when the backing entry does not exist.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		RecentWorkCount: DefaultRecentWorkCount,
		SocialLinks:     []SocialLink{},
	}
}
