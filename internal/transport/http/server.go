// Package http provides the HTTP server for the interview backend.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/akshajravi/Intervue/internal/config"
	"github.com/akshajravi/Intervue/internal/service"
	v1 "github.com/akshajravi/Intervue/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server. The CORS allow-list
// comes from configuration; everything else is standard middleware.
func NewServer(svc *service.AIService, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	// Handlers
	handler := v1.NewHandler(svc)
	handler.RegisterRoutes(e)

	return e
}
