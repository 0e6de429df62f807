package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service   *Service
	jwtSecret string
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

// Login verifies credentials and returns a session token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Register creates a customer account
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	session, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// CheckSession reports whether the presented token is still valid. The auth
// middleware has already rejected invalid tokens by the time this runs.
func (h *Handler) CheckSession(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "session expired")
		return
	}

	common.SuccessResponse(c, gin.H{
		"id":   userID,
		"role": middleware.GetUserRole(c),
	})
}

// RegisterRoutes registers auth routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/login", h.Login)
		user.POST("/add-user", h.Register)
		user.GET("/check-session", middleware.AuthRequired(h.jwtSecret), h.CheckSession)
	}
}
