package handler

import (
	"context"
	"net/http"
	"strconv"

	"inventory-api/internal/models"
	"inventory-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RetailerService interface for dependency injection
type RetailerService interface {
	List(ctx context.Context, filter service.RetailerFilter) ([]models.Retailer, error)
	Get(ctx context.Context, id int64) (*models.Retailer, error)
	Create(ctx context.Context, in models.RetailerInput) (*models.Retailer, error)
	Update(ctx context.Context, id int64, in models.RetailerInput) (*models.Retailer, error)
	Delete(ctx context.Context, id int64) error
	Sodas(ctx context.Context, id int64) ([]models.Soda, error)
}

// RetailerRequest is the body of POST and PUT /retailers.
type RetailerRequest struct {
	Name          string  `json:"name" binding:"required,max=100" example:"Corner Shop"`
	StreetAddress string  `json:"street_address" binding:"required,max=200" example:"1 Martin Place"`
	City          string  `json:"city" binding:"required,max=100" example:"Sydney"`
	Postcode      *int    `json:"postcode" binding:"omitempty,min=0,max=2147483647" example:"2000"`
	Country       string  `json:"country" binding:"max=100" example:"Australia"`
	Sodas         []int64 `json:"sodas" binding:"omitempty,dive,min=1"`
}

func (r RetailerRequest) input() models.RetailerInput {
	return models.RetailerInput{
		Name:          r.Name,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		Postcode:      r.Postcode,
		Country:       r.Country,
		SodaIDs:       r.Sodas,
	}
}

// RetailerHandler handles the /retailers resource
type RetailerHandler struct {
	service RetailerService
}

// NewRetailerHandler creates a new retailer handler
func NewRetailerHandler(svc RetailerService) *RetailerHandler {
	return &RetailerHandler{service: svc}
}

// Register mounts the retailer routes on r.
func (h *RetailerHandler) Register(r gin.IRouter) {
	g := r.Group("/retailers")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/sodas", h.Sodas)
}

// List godoc
// @Summary      List retailers
// @Description  Retailers ordered by id. With sodas, a retailer must carry every listed code.
// @Description  Blank entries in sodas are ignored, so an empty sodas parameter applies no constraint.
// @Tags         retailers
// @Produce      json
// @Param        postcode  query     int     false  "exact postcode"
// @Param        sodas     query     string  false  "comma-separated soda abbreviations"
// @Success      200       {array}   models.Retailer
// @Failure      400       {object}  ErrorResponse
// @Router       /retailers [get]
func (h *RetailerHandler) List(c *gin.Context) {
	var filter service.RetailerFilter

	if raw := c.Query("postcode"); raw != "" {
		postcode, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid postcode format"})
			return
		}
		filter.Postcode = &postcode
	}
	filter.SodaCodes = service.ParseSodaCodes(c.Query("sodas"))

	retailers, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, retailers)
}

// Get godoc
// @Summary  Get a retailer
// @Tags     retailers
// @Produce  json
// @Param    id   path      int  true  "retailer id"
// @Success  200  {object}  models.Retailer
// @Failure  404  {object}  ErrorResponse
// @Router   /retailers/{id} [get]
func (h *RetailerHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	retailer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, retailer)
}

// Create godoc
// @Summary      Create a retailer
// @Description  Stores the retailer, then geocodes its address. A failed lookup still returns 201, without coordinates.
// @Tags         retailers
// @Accept       json
// @Produce      json
// @Param        retailer  body      RetailerRequest  true  "retailer"
// @Success      201       {object}  models.Retailer
// @Failure      400       {object}  ErrorResponse
// @Router       /retailers [post]
func (h *RetailerHandler) Create(c *gin.Context) {
	var req RetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	retailer, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, retailer)
}

// Update godoc
// @Summary      Update a retailer
// @Description  Replaces the editable fields and the soda set. Coordinates are kept.
// @Tags         retailers
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "retailer id"
// @Param        retailer  body      RetailerRequest  true  "retailer"
// @Success      200       {object}  models.Retailer
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /retailers/{id} [put]
func (h *RetailerHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req RetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	retailer, err := h.service.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, retailer)
}

// Delete godoc
// @Summary  Delete a retailer
// @Tags     retailers
// @Param    id   path  int  true  "retailer id"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /retailers/{id} [delete]
func (h *RetailerHandler) Delete(c *gin.Context) {
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

// Sodas godoc
// @Summary  Sodas carried by a retailer
// @Tags     retailers
// @Produce  json
// @Param    id   path      int  true  "retailer id"
// @Success  200  {array}   models.Soda
// @Failure  404  {object}  ErrorResponse
// @Router   /retailers/{id}/sodas [get]
func (h *RetailerHandler) Sodas(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	sodas, err := h.service.Sodas(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sodas)
}
