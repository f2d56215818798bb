package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	handler "github.com/georgeey123/ghanada-works/internal/api/handlers"
)

// HealthCheckResponse represents the structure of the health check response
type HealthCheckResponse struct {
	Status      string `json:"status"`
	Timestamp   int64  `json:"timestamp"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	GoVersion   string `json:"go_version"`
	CPUCount    int    `json:"cpu_count"`
	Backend     string `json:"backend"`
	MemoryStats struct {
		Alloc      uint64 `json:"alloc_bytes"`
		TotalAlloc uint64 `json:"total_alloc_bytes"`
		Sys        uint64 `json:"sys_bytes"`
		NumGC      uint32 `json:"num_gc"`
	} `json:"memory_stats"`
}

var startTime = time.Now()

func getHealthCheck(backend string) HealthCheckResponse {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	resp := HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
		GoVersion: runtime.Version(),
		CPUCount:  runtime.NumCPU(),
		Backend:   backend,
	}
	resp.MemoryStats.Alloc = memStats.Alloc
	resp.MemoryStats.TotalAlloc = memStats.TotalAlloc
	resp.MemoryStats.Sys = memStats.Sys
	resp.MemoryStats.NumGC = memStats.NumGC
	return resp
}

// SetupRouter configures and returns the Gin router. backend names the
// content source serving this process ("cms" or "mock") and only surfaces
// in the health payload.
func SetupRouter(contentHandler *handler.ContentHandler, backend string) *gin.Engine {
	router := gin.Default()

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// API v1
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, getHealthCheck(backend))
	})

	// Public content routes
	contentHandler.RegisterRoutes(v1)

	// Cache management (no auth — local use only)
	contentHandler.RegisterAdminRoutes(v1)

	return router
}
