package fleet_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/citycab/taxi-dispatch/internal/fleet"
	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/test/mocks"
)

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestRegisterDriver(t *testing.T) {
	repo := new(mocks.MockFleetRepository)
	repo.On("CreateDriver", mock.Anything, mock.AnythingOfType("*fleet.Driver")).Return(nil)
	svc := fleet.NewService(repo)

	driver, err := svc.RegisterDriver(context.Background(), &fleet.RegisterDriverRequest{
		Name:          "Kasun Perera",
		LicenseNumber: "B1234567",
		Phone:         "0771234567",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, driver.DriverID)
	assert.Equal(t, "Kasun Perera", driver.Name)
	assert.True(t, driver.IsAvailable)
	assert.Nil(t, driver.CarModel)
	repo.AssertExpectations(t)
}

func TestRegisterCar(t *testing.T) {
	repo := new(mocks.MockFleetRepository)
	repo.On("CreateCar", mock.Anything, mock.AnythingOfType("*fleet.Car")).Return(nil)
	svc := fleet.NewService(repo)

	car, err := svc.RegisterCar(context.Background(), &fleet.RegisterCarRequest{
		Model:        "Toyota Prius",
		LicensePlate: "CAB-1234",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, car.CarID)
	assert.True(t, car.IsAvailable)
	assert.Nil(t, car.DriverID)
	repo.AssertExpectations(t)
}

func TestAssignCarToDriver(t *testing.T) {
	driverID := uuid.New()
	carID := uuid.New()

	tests := []struct {
		name     string
		repoErr  error
		wantCode int
	}{
		{
			name: "pairing established",
		},
		{
			name:     "unknown driver",
			repoErr:  fleet.ErrDriverNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown car",
			repoErr:  fleet.ErrCarNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "driver already paired",
			repoErr:  fleet.ErrDriverHasCar,
			wantCode: http.StatusConflict,
		},
		{
			name:     "car already paired",
			repoErr:  fleet.ErrCarAssigned,
			wantCode: http.StatusConflict,
		},
		{
			name:     "database failure",
			repoErr:  errors.New("db down"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockFleetRepository)
			repo.On("AssignCarToDriver", mock.Anything, driverID, carID).Return(tt.repoErr)
			svc := fleet.NewService(repo)

			err := svc.AssignCarToDriver(context.Background(), driverID, carID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, appErrCode(t, err))
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestListDriversWithCars(t *testing.T) {
	model := "Toyota Prius"
	plate := "CAB-1234"
	repo := new(mocks.MockFleetRepository)
	repo.On("ListDriversWithCars", mock.Anything).Return([]*fleet.Driver{
		{DriverID: uuid.New(), Name: "Kasun Perera", IsAvailable: false, CarModel: &model, CarPlate: &plate},
	}, nil)
	svc := fleet.NewService(repo)

	drivers, err := svc.ListDriversWithCars(context.Background())

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.False(t, drivers[0].IsAvailable)
	assert.Equal(t, "Toyota Prius", *drivers[0].CarModel)
}
