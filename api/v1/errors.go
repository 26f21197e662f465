package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cosmic-missions/dto"
	"github.com/cosmic-missions/services"
	"github.com/gin-gonic/gin"
)

var notFoundMessages = map[error]string{
	services.ErrScientistNotFound: "Scientist not found",
	services.ErrMissionNotFound:   "Mission not found",
}

// respondError maps a service error onto a status code and body.
func respondError(ctx *gin.Context, logger *slog.Logger, err error) {
	for sentinel, message := range notFoundMessages {
		if errors.Is(err, sentinel) {
			ctx.IndentedJSON(http.StatusNotFound, dto.ErrorResponse{Error: message})
			return
		}
	}

	if services.IsValidation(err) {
		logger.Debug("validation failed", "path", ctx.Request.URL.Path, "error", err)
		ctx.IndentedJSON(http.StatusBadRequest, dto.ValidationErrors())
		return
	}

	logger.Error("request failed", "path", ctx.Request.URL.Path, "error", err)
	ctx.IndentedJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}

func respondBadBody(ctx *gin.Context, logger *slog.Logger, err error) {
	logger.Debug("invalid request body", "path", ctx.Request.URL.Path, "error", err)
	ctx.IndentedJSON(http.StatusBadRequest, dto.ValidationErrors())
}
