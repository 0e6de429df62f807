package fleet

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citycab/taxi-dispatch/pkg/common"
)

// Handler handles HTTP requests for the fleet registries
type Handler struct {
	service *Service
}

// NewHandler creates a new fleet handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterDriver registers a new driver
func (h *Handler) RegisterDriver(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	driver, err := h.service.RegisterDriver(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// RegisterCar registers a new car
func (h *Handler) RegisterCar(c *gin.Context) {
	var req RegisterCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	car, err := h.service.RegisterCar(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, car)
}

// ListAvailableCars returns cars without a driver
func (h *Handler) ListAvailableCars(c *gin.Context) {
	cars, err := h.service.ListAvailableCars(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cars)
}

// ListDriversWithoutCar returns drivers without a car
func (h *Handler) ListDriversWithoutCar(c *gin.Context) {
	drivers, err := h.service.ListDriversWithoutCar(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// ListDriversWithCars returns paired drivers for the customer booking view
func (h *Handler) ListDriversWithCars(c *gin.Context) {
	drivers, err := h.service.ListDriversWithCars(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// AssignCarToDriver pairs a car with a driver. The admin client sends both
// ids as query parameters.
func (h *Handler) AssignCarToDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Query("driverId"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid driverId")
		return
	}

	carID, err := uuid.Parse(c.Query("carId"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid carId")
		return
	}

	if err := h.service.AssignCarToDriver(c.Request.Context(), driverID, carID); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{
		"driverId": driverID,
		"carId":    carID,
	})
}

// RegisterRoutes registers fleet routes. Registry mutations and back-office
// listings go on the role-gated admin group; the drivers-with-cars listing
// goes on the auth-only group because customers browse it to pick a driver
// when booking.
func (h *Handler) RegisterRoutes(admin, authed *gin.RouterGroup) {
	admin.GET("/available-cars", h.ListAvailableCars)
	admin.POST("/add-car", h.RegisterCar)
	admin.GET("/available-drivers-withoutCar", h.ListDriversWithoutCar)
	admin.POST("/add-driver", h.RegisterDriver)
	admin.POST("/assign-car-to-driver", h.AssignCarToDriver)

	authed.GET("/drivers-with-cars", h.ListDriversWithCars)
}
