package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	service *Service
}

// NewHandler creates a new bookings handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking submits a customer trip request
func (h *Handler) CreateBooking(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), customerID, &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListAll returns all bookings for the admin dashboard
func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListByCustomer returns the bookings of the customer in the path. Customers
// may only view their own; admins may view anyone's.
func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	callerID, err := middleware.GetUserID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}
	if callerID != customerID && middleware.GetUserRole(c) != "admin" {
		common.ErrorResponse(c, http.StatusForbidden, "not authorized to view these bookings")
		return
	}

	list, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// AcceptBooking moves a booking to Accepted
func (h *Handler) AcceptBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.service.AcceptBooking(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking soft-deletes a booking
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	callerID, err := middleware.GetUserID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id, callerID, middleware.GetUserRole(c)); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"bookingId": id})
}

// RegisterRoutes registers booking routes on the admin and customer groups
func (h *Handler) RegisterRoutes(admin, customer *gin.RouterGroup) {
	admin.GET("/all-bookings", h.ListAll)
	admin.PUT("/accept-booking/:id", h.AcceptBooking)

	customer.GET("/view-bookings/:id", h.ListByCustomer)
	customer.POST("/add-booking", h.CreateBooking)
	customer.DELETE("/delete-booking/:id", h.DeleteBooking)
}
