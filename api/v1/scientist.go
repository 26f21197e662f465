package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cosmic-missions/dto"
	"github.com/cosmic-missions/services"
	"github.com/cosmic-missions/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScientistController handles scientist-related API endpoints
type ScientistController struct {
	scientistService *services.ScientistService
	logger           *slog.Logger
}

// NewScientistController creates a new scientist controller
func NewScientistController(db *gorm.DB, logger *slog.Logger) *ScientistController {
	return &ScientistController{
		scientistService: services.NewScientistService(db, logger),
		logger:           logger,
	}
}

// RegisterRoutes registers scientist routes
func (c *ScientistController) RegisterRoutes(router *gin.RouterGroup) {
	scientists := router.Group("/scientists")
	{
		scientists.GET("", c.ListScientists)
		scientists.POST("", c.CreateScientist)
		scientists.GET("/:id", c.GetScientist)
		scientists.PATCH("/:id", c.UpdateScientist)
		scientists.DELETE("/:id", c.DeleteScientist)
	}
}

// ListScientists returns every scientist without relationships
func (c *ScientistController) ListScientists(ctx *gin.Context) {
	scientists, err := c.scientistService.ListScientists(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusOK, dto.ScientistList(scientists))
}

// CreateScientist creates a new scientist
func (c *ScientistController) CreateScientist(ctx *gin.Context) {
	var request dto.CreateScientistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadBody(ctx, c.logger, err)
		return
	}

	scientist, err := c.scientistService.CreateScientist(ctx.Request.Context(), request.Name, request.FieldOfStudy)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusCreated, dto.ScientistDetail(scientist))
}

// GetScientist returns one scientist with its missions and planets
func (c *ScientistController) GetScientist(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		respondError(ctx, c.logger, services.ErrScientistNotFound)
		return
	}

	scientist, err := c.scientistService.GetScientistDetail(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusOK, dto.ScientistDetail(scientist))
}

// UpdateScientist applies a partial update and answers 202 with the
// list-mode projection
func (c *ScientistController) UpdateScientist(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		respondError(ctx, c.logger, services.ErrScientistNotFound)
		return
	}

	var fields map[string]interface{}
	bindErr := ctx.ShouldBindJSON(&fields)
	if bindErr == nil && fields == nil {
		bindErr = errors.New("request body must be a JSON object")
	}
	if bindErr != nil {
		// A missing scientist is reported before a malformed body.
		if _, err := c.scientistService.GetScientist(ctx.Request.Context(), id); err != nil {
			respondError(ctx, c.logger, err)
			return
		}
		respondBadBody(ctx, c.logger, bindErr)
		return
	}

	scientist, err := c.scientistService.UpdateScientist(ctx.Request.Context(), id, fields)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.IndentedJSON(http.StatusAccepted, dto.ScientistSummary(scientist))
}

// DeleteScientist deletes a scientist and its missions
func (c *ScientistController) DeleteScientist(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		respondError(ctx, c.logger, services.ErrScientistNotFound)
		return
	}

	if err := c.scientistService.DeleteScientist(ctx.Request.Context(), id); err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
