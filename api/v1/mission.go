package v1

import (
	"log/slog"
	"net/http"

	"github.com/cosmic-missions/dto"
	"github.com/cosmic-missions/models"
	"github.com/cosmic-missions/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MissionController handles mission-related API endpoints
type MissionController struct {
	missionService *services.MissionService
	logger         *slog.Logger
}

// NewMissionController creates a new mission controller
func NewMissionController(db *gorm.DB, logger *slog.Logger) *MissionController {
	return &MissionController{
		missionService: services.NewMissionService(db, logger),
		logger:         logger,
	}
}

// RegisterRoutes registers mission routes
func (c *MissionController) RegisterRoutes(router *gin.RouterGroup) {
	missions := router.Group("/missions")
	{
		missions.GET("", c.ListMissions)
		missions.POST("", c.CreateMission)
	}
}

// ListMissions returns every mission without its scientist or planet
func (c *MissionController) ListMissions(ctx *gin.Context) {
	missions, err := c.missionService.ListMissions(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusOK, dto.MissionList(missions))
}

// CreateMission creates a mission for an existing scientist and planet
func (c *MissionController) CreateMission(ctx *gin.Context) {
	var request dto.CreateMissionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadBody(ctx, c.logger, err)
		return
	}

	mission, err := c.missionService.CreateMission(ctx.Request.Context(), models.Mission{
		Name:        request.Name,
		ScientistID: request.ScientistID,
		PlanetID:    request.PlanetID,
	})
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusCreated, dto.MissionDetail(mission))
}
