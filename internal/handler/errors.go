package handler

import (
	"errors"
	"net/http"

	"inventory-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"retailer with this name already exists"`
}

// respondError maps service errors onto status codes. Anything unrecognised is a 500
// whose detail stays in the log.
func respondError(c *gin.Context, err error) {
	var conflict *models.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: conflict.Error()})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: models.ErrDuplicate.Error()})
	case errors.Is(err, models.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: models.ErrInvalidReference.Error()})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// idParam is bound from the :id path segment.
type idParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func bindID(c *gin.Context) (int64, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return p.ID, true
}
