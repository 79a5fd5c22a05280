// Package v1 provides the versioned HTTP handlers for the interview
// backend.
package v1

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akshajravi/Intervue/internal/config"
	"github.com/akshajravi/Intervue/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.AIService
}

// NewHandler creates a new handler.
func NewHandler(service *service.AIService) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers all routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/health/detailed", h.DetailedHealth)

	chat := api.Group("/chat")
	chat.POST("/message", h.SendMessage)
	chat.POST("/voice", h.SendVoiceMessage)
	chat.GET("/conversation/:session_id", h.GetConversationHistory)
	chat.POST("/session", h.CreateSession)
	chat.PUT("/session/:session_id/context", h.UpdateSessionContext)
}

// Root confirms the API is up.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Intervue API is running!",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   config.Version,
	})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   config.ServiceName,
		"version":   config.Version,
	})
}

// DetailedHealth returns health status with runtime information.
func (h *Handler) DetailedHealth(c echo.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   config.ServiceName,
		"version":   config.Version,
		"system": map[string]any{
			"go_version":    runtime.Version(),
			"goroutines":    runtime.NumGoroutine(),
			"heap_alloc_mb": float64(mem.HeapAlloc) / (1024 * 1024),
			"heap_sys_mb":   float64(mem.HeapSys) / (1024 * 1024),
			"num_gc":        mem.NumGC,
		},
	})
}
