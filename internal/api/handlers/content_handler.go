package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/georgeey123/ghanada-works/internal/api/response"
	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

// maxRecentWorkCount bounds client-supplied counts so an oversized value
// never reaches the CMS page limit.
const maxRecentWorkCount = 100

// ContentHandler handles the public portfolio content routes.
type ContentHandler struct {
	contentService content.Service
	log            *zap.Logger
}

func NewContentHandler(contentService content.Service, log *zap.Logger) *ContentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentHandler{
		contentService: contentService,
		log:            log,
	}
}

// RegisterRoutes registers the public content routes.
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:slug", h.GetCategory)
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/:slug", h.GetProject)
	rg.GET("/settings", h.GetSiteSettings)
	rg.GET("/recent-work", h.GetRecentWork)
}

// RegisterAdminRoutes registers cache management routes (no auth, local use).
func (h *ContentHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/cache/refresh", h.RefreshCache)
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories, err := h.contentService.Categories(c.Request.Context())
	if err != nil {
		h.contentError(c, "Failed to load categories", err)
		return
	}
	response.Success(c, categories)
}

func (h *ContentHandler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")
	category, err := h.contentService.Category(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrCategoryNotFound) {
			response.NotFound(c, response.ErrNotFound, "Category not found", "")
			return
		}
		h.contentError(c, "Failed to load category", err)
		return
	}
	response.Success(c, category)
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentService.Projects(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.contentError(c, "Failed to load projects", err)
		return
	}
	response.Success(c, projects)
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	slug := c.Param("slug")
	project, err := h.contentService.Project(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrProjectNotFound) {
			response.NotFound(c, response.ErrNotFound, "Project not found", "")
			return
		}
		h.contentError(c, "Failed to load project", err)
		return
	}
	response.Success(c, project)
}

func (h *ContentHandler) GetSiteSettings(c *gin.Context) {
	settings, err := h.contentService.SiteSettings(c.Request.Context())
	if err != nil {
		h.contentError(c, "Failed to load site settings", err)
		return
	}
	response.Success(c, settings)
}

func (h *ContentHandler) GetRecentWork(c *gin.Context) {
	count := 0
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxRecentWorkCount {
			response.BadRequest(c, response.ErrValidationFailed, "count must be between 1 and 100", "")
			return
		}
		count = parsed
	}

	projects, err := h.contentService.RecentWork(c.Request.Context(), count)
	if err != nil {
		h.contentError(c, "Failed to load recent work", err)
		return
	}
	response.Success(c, projects)
}

func (h *ContentHandler) RefreshCache(c *gin.Context) {
	h.contentService.Refresh()
	response.Success(c, gin.H{"refreshed": true})
}

func (h *ContentHandler) contentError(c *gin.Context, message string, err error) {
	if errors.Is(err, content.ErrBackendUnavailable) {
		h.log.Warn(message, zap.Error(err))
		response.ServiceUnavailable(c, response.ErrBackendUnavailable, message, err.Error())
		return
	}
	h.log.Error(message, zap.Error(err))
	response.InternalError(c, response.ErrGetFailed, message, err.Error())
}
