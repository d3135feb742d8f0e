package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/sajidul-dev/adboard/backend/internal/handlers"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

// SetupMiddleware configures global Echo middleware and the error response
// shape. Errors render as {"error": message}.
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = errorHandler
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
func SetupRoutes(e *echo.Echo, st store.Store) {
	locks := store.NewLocker()

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	documentRepo := repositories.NewStoreDocumentRepository(st, locks)
	userRepo := repositories.NewStoreUserRepository(st, locks)
	likeRepo := repositories.NewStoreLikeRepository(st, locks)
	reportRepo := repositories.NewStoreReportRepository(documentRepo)

	// Auth routes
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(userRepo)
	followHandler.RegisterFollowRoutes(e)
	log.Println("Follow routes configured.")

	// Report routes
	reportHandler := handlers.NewReportHandler(reportRepo)
	reportHandler.RegisterReportRoutes(e)
	log.Println("Report routes configured.")

	// Moderation routes
	moderationHandler := handlers.NewModerationHandler(documentRepo)
	moderationHandler.RegisterModerationRoutes(e)
	log.Println("Moderation routes configured.")

	// Generic collection routes; registered last so every static route above
	// takes precedence over the :collection parameters.
	documentHandler := handlers.NewDocumentHandler(documentRepo, likeRepo)
	documentHandler.RegisterDocumentRoutes(e)
	log.Println("Collection routes configured.")

	log.Println("All routes configured.")
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case error:
			message = m.Error()
		}
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"error": message})
}
