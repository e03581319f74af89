package handler

import (
	"context"
	"net/http"

	"inventory-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SodaService interface for dependency injection
type SodaService interface {
	List(ctx context.Context) ([]models.Soda, error)
	Get(ctx context.Context, id int64) (*models.Soda, error)
	Create(ctx context.Context, in models.SodaInput) (*models.Soda, error)
	Update(ctx context.Context, id int64, in models.SodaInput) (*models.Soda, error)
	Delete(ctx context.Context, id int64) error
	Retailers(ctx context.Context, id int64) ([]models.Retailer, error)
}

// SodaRequest is the body of POST and PUT /sodas.
type SodaRequest struct {
	Name         string `json:"name" binding:"required,max=100" example:"Coke Zero"`
	Abbreviation string `json:"abbreviation" binding:"required,max=2" example:"CZ"`
	LowCalorie   bool   `json:"low_calorie" example:"true"`
}

func (r SodaRequest) input() models.SodaInput {
	return models.SodaInput{
		Name:         r.Name,
		Abbreviation: r.Abbreviation,
		LowCalorie:   r.LowCalorie,
	}
}

// SodaHandler handles the /sodas resource
type SodaHandler struct {
	service SodaService
}

// NewSodaHandler creates a new soda handler
func NewSodaHandler(svc SodaService) *SodaHandler {
	return &SodaHandler{service: svc}
}

// Register mounts the soda routes on r.
func (h *SodaHandler) Register(r gin.IRouter) {
	g := r.Group("/sodas")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/retailers", h.Retailers)
}

// List godoc
// @Summary  List sodas
// @Tags     sodas
// @Produce  json
// @Success  200  {array}  models.Soda
// @Router   /sodas [get]
func (h *SodaHandler) List(c *gin.Context) {
	sodas, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sodas)
}

// Get godoc
// @Summary  Get a soda
// @Tags     sodas
// @Produce  json
// @Param    id   path      int  true  "soda id"
// @Success  200  {object}  models.Soda
// @Failure  404  {object}  ErrorResponse
// @Router   /sodas/{id} [get]
func (h *SodaHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	soda, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, soda)
}

// Create godoc
// @Summary      Create a soda
// @Description  The abbreviation is stored uppercased.
// @Tags         sodas
// @Accept       json
// @Produce      json
// @Param        soda  body      SodaRequest  true  "soda"
// @Success      201   {object}  models.Soda
// @Failure      400   {object}  ErrorResponse
// @Router       /sodas [post]
func (h *SodaHandler) Create(c *gin.Context) {
	var req SodaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	soda, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, soda)
}

// Update godoc
// @Summary  Update a soda
// @Tags     sodas
// @Accept   json
// @Produce  json
// @Param    id    path      int          true  "soda id"
// @Param    soda  body      SodaRequest  true  "soda"
// @Success  200   {object}  models.Soda
// @Failure  400   {object}  ErrorResponse
// @Failure  404   {object}  ErrorResponse
// @Router   /sodas/{id} [put]
func (h *SodaHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req SodaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	soda, err := h.service.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, soda)
}

// Delete godoc
// @Summary  Delete a soda
// @Tags     sodas
// @Param    id   path  int  true  "soda id"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /sodas/{id} [delete]
func (h *SodaHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Retailers godoc
// @Summary  Retailers carrying a soda
// @Tags     sodas
// @Produce  json
// @Param    id   path      int  true  "soda id"
// @Success  200  {array}   models.Retailer
// @Failure  404  {object}  ErrorResponse
// @Router   /sodas/{id}/retailers [get]
func (h *SodaHandler) Retailers(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	retailers, err := h.service.Retailers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, retailers)
}
