package content

// Service is the cached query surface consumed by the HTTP handlers.
// RecentWork accepts count <= 0, meaning "use the count from site settings".
type Service interface {
	Source

	// Refresh drops all cached results so the next request re-fetches.
	Refresh()
}
