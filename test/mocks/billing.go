package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/citycab/taxi-dispatch/internal/billing"
)

// MockBillingRepository is a mock implementation of billing.RepositoryInterface
type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) GetBill(ctx context.Context, bookingID uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillingRepository) GetBillWithTrip(ctx context.Context, bookingID uuid.UUID) (*billing.BillWithTrip, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.BillWithTrip), args.Error(1)
}

func (m *MockBillingRepository) UpdateBill(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillingRepository) BookingOwner(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
