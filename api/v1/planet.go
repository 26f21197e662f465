package v1

import (
	"log/slog"
	"net/http"

	"github.com/cosmic-missions/dto"
	"github.com/cosmic-missions/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlanetController handles planet-related API endpoints
type PlanetController struct {
	planetService *services.PlanetService
	logger        *slog.Logger
}

// NewPlanetController creates a new planet controller
func NewPlanetController(db *gorm.DB, logger *slog.Logger) *PlanetController {
	return &PlanetController{
		planetService: services.NewPlanetService(db),
		logger:        logger,
	}
}

// RegisterRoutes registers planet routes
func (c *PlanetController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/planets", c.ListPlanets)
}

// ListPlanets returns every planet without its missions
func (c *PlanetController) ListPlanets(ctx *gin.Context) {
	planets, err := c.planetService.ListPlanets(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusOK, dto.PlanetList(planets))
}
