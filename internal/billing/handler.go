package billing

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
)

// Handler handles HTTP requests for billing
type Handler struct {
	service *Service
}

// NewHandler creates a new billing handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetBill returns the bill for a booking
func (h *Handler) GetBill(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	bill, err := h.service.GetBill(c.Request.Context(), bookingID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

// UpdateBill persists admin edits to a bill
func (h *Handler) UpdateBill(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	bill, err := h.service.UpdateBill(c.Request.Context(), bookingID, &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

// DownloadInvoice streams the rendered invoice for a booking
func (h *Handler) DownloadInvoice(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	callerID, err := middleware.GetUserID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	filename, document, err := h.service.RenderInvoice(c.Request.Context(), bookingID, callerID, middleware.GetUserRole(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}

// RegisterRoutes registers billing routes on the admin and customer groups
func (h *Handler) RegisterRoutes(admin, customer *gin.RouterGroup) {
	admin.GET("/bill/:bookingId", h.GetBill)
	admin.PUT("/bill/update/:bookingId", h.UpdateBill)

	customer.GET("/view-bill/:bookingId", h.DownloadInvoice)
}
