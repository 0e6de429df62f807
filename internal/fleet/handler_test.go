package fleet_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/citycab/taxi-dispatch/internal/fleet"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
	"github.com/citycab/taxi-dispatch/test/mocks"
)

// asUser injects an authenticated identity the way the auth middleware does.
func asUser(id uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}

// newTestRouter mirrors the production gating: everything under /admin needs
// a session, and all fleet routes except drivers-with-cars need the admin
// role on top.
func newTestRouter(repo *mocks.MockFleetRepository, callerID uuid.UUID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := fleet.NewHandler(fleet.NewService(repo))

	adminAuthed := router.Group("/admin", asUser(callerID, role))
	admin := adminAuthed.Group("", middleware.RequireRole("admin"))
	handler.RegisterRoutes(admin, adminAuthed)

	return router
}

func TestDriversWithCarsVisibleToCustomers(t *testing.T) {
	model := "Toyota Prius"
	plate := "CAB-1234"
	repo := new(mocks.MockFleetRepository)
	repo.On("ListDriversWithCars", mock.Anything).Return([]*fleet.Driver{
		{DriverID: uuid.New(), Name: "Kasun Perera", IsAvailable: true, CarModel: &model, CarPlate: &plate},
	}, nil)
	router := newTestRouter(repo, uuid.New(), "customer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/drivers-with-cars", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []*fleet.Driver
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kasun Perera", got[0].Name)
	assert.True(t, got[0].IsAvailable)
	repo.AssertExpectations(t)
}

func TestRegistryRoutesStayAdminOnly(t *testing.T) {
	adminID := uuid.New()
	customerID := uuid.New()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/available-cars"},
		{http.MethodPost, "/admin/add-car"},
		{http.MethodGet, "/admin/available-drivers-withoutCar"},
		{http.MethodPost, "/admin/add-driver"},
		{http.MethodPost, "/admin/assign-car-to-driver"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			repo := new(mocks.MockFleetRepository)
			router := newTestRouter(repo, customerID, "customer")

			w := httptest.NewRecorder()
			req := httptest.NewRequest(rt.method, rt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}

	t.Run("admin still reaches the registry", func(t *testing.T) {
		repo := new(mocks.MockFleetRepository)
		repo.On("ListAvailableCars", mock.Anything).Return([]*fleet.Car{}, nil)
		router := newTestRouter(repo, adminID, "admin")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/available-cars", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
