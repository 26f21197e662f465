package v1

import (
	"log/slog"
	"net/http"

	"github.com/cosmic-missions/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RouterConfig carries what the router needs besides the database.
type RouterConfig struct {
	Logger *slog.Logger
	// AllowedOrigins empty means any origin.
	AllowedOrigins []string
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(db *gorm.DB, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		cors.New(corsConfig),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	RegisterRoutes(&router.RouterGroup, db, cfg.Logger)
	return router
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, logger *slog.Logger) {
	router.GET("/", Home)
	router.GET("/health", HealthCheck)

	NewScientistController(db, logger).RegisterRoutes(router)
	NewPlanetController(db, logger).RegisterRoutes(router)
	NewMissionController(db, logger).RegisterRoutes(router)
}
