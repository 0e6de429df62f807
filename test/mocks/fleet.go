package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/citycab/taxi-dispatch/internal/fleet"
)

// MockFleetRepository is a mock implementation of fleet.RepositoryInterface
type MockFleetRepository struct {
	mock.Mock
}

func (m *MockFleetRepository) CreateDriver(ctx context.Context, d *fleet.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockFleetRepository) CreateCar(ctx context.Context, c *fleet.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockFleetRepository) ListAvailableCars(ctx context.Context) ([]*fleet.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleet.Car), args.Error(1)
}

func (m *MockFleetRepository) ListDriversWithoutCar(ctx context.Context) ([]*fleet.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleet.Driver), args.Error(1)
}

func (m *MockFleetRepository) ListDriversWithCars(ctx context.Context) ([]*fleet.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fleet.Driver), args.Error(1)
}

func (m *MockFleetRepository) AssignCarToDriver(ctx context.Context, driverID, carID uuid.UUID) error {
	args := m.Called(ctx, driverID, carID)
	return args.Error(0)
}
