package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citycab/taxi-dispatch/pkg/common"
)

// Handler handles HTTP requests for pricing
type Handler struct {
	service *Service
}

// NewHandler creates a new pricing handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetPriceConfig returns the global price configuration
func (h *Handler) GetPriceConfig(c *gin.Context) {
	cfg, err := h.service.GetPriceConfig(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdatePriceConfig overwrites the global price configuration
func (h *Handler) UpdatePriceConfig(c *gin.Context) {
	var req UpdatePriceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	cfg, err := h.service.UpdatePriceConfig(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// Estimate returns a fare breakdown for a prospective trip
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	estimate, err := h.service.Estimate(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// RegisterRoutes registers pricing routes. The admin group must already be
// gated by auth and role middleware.
func (h *Handler) RegisterRoutes(admin, customer *gin.RouterGroup) {
	admin.GET("/price-config", h.GetPriceConfig)
	admin.PUT("/price-config", h.UpdatePriceConfig)

	customer.POST("/fare-estimate", h.Estimate)
}
