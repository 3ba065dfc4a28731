// Package router registers the HTTP routes and the middleware chain applied
// to the API group.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/docs"
	"github.com/samurun/portfolio-api/internal/handler"
	"github.com/samurun/portfolio-api/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth       *handler.AuthHandler
	Tech       *handler.TechHandler
	Summary    *handler.SummaryHandler
	Experience *handler.ExperienceHandler
}

// Register mounts all routes on e. The extra middleware (rate limiter,
// response cache) wraps the whole API group, followed by the auth gate so
// that cached GETs still pass through the limiter.
func Register(e *echo.Echo, h Handlers, jwtSecret string, extra ...echo.MiddlewareFunc) {
	e.GET("/health", handler.Health)
	docs.Register(e)

	v1 := e.Group("/api/v1", extra...)
	v1.Use(middleware.AuthGate(jwtSecret))

	auth := v1.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)

	tech := v1.Group("/tech")
	tech.POST("", h.Tech.Create)
	tech.GET("", h.Tech.GetAll)
	tech.GET("/:id", h.Tech.GetByID)
	tech.DELETE("/:id", h.Tech.Delete)

	summary := v1.Group("/summary")
	summary.POST("", h.Summary.Create)
	summary.GET("", h.Summary.GetAll)
	summary.PUT("/:id", h.Summary.Update)

	experience := v1.Group("/experience")
	experience.POST("", h.Experience.Create)
	experience.GET("", h.Experience.GetAll)
	experience.GET("/:id", h.Experience.GetByID)
	experience.PUT("/:id", h.Experience.Update)
	experience.DELETE("/:id", h.Experience.Delete)
}
