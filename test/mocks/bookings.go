package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/citycab/taxi-dispatch/internal/bookings"
	"github.com/citycab/taxi-dispatch/internal/pricing"
)

// MockBookingsRepository is a mock implementation of bookings.RepositoryInterface
type MockBookingsRepository struct {
	mock.Mock
}

func (m *MockBookingsRepository) CreateBookingWithBill(ctx context.Context, b *bookings.Booking, breakdown pricing.FareBreakdown) error {
	args := m.Called(ctx, b, breakdown)
	return args.Error(0)
}

func (m *MockBookingsRepository) GetBooking(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingsRepository) ListAll(ctx context.Context) ([]*bookings.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingsRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*bookings.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingsRepository) SetStatus(ctx context.Context, id uuid.UUID, status bookings.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingsRepository) ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*bookings.Booking, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingsRepository) DriverHasAssignedCar(ctx context.Context, driverID uuid.UUID) (bool, error) {
	args := m.Called(ctx, driverID)
	return args.Bool(0), args.Error(1)
}

// MockPricingService is a mock implementation of bookings.PricingService
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) GetPriceConfig(ctx context.Context) (*pricing.PriceConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PriceConfig), args.Error(1)
}
