package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/citycab/taxi-dispatch/internal/pricing"
)

// RepositoryInterface defines the persistence operations for bookings
type RepositoryInterface interface {
	// CreateBookingWithBill inserts the booking and its frozen bill in one
	// transaction.
	CreateBookingWithBill(ctx context.Context, b *Booking, breakdown pricing.FareBreakdown) error
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	// ListActiveByDriver returns the Pending and Accepted bookings that
	// reference a driver; IsDriverAssignable decides bookability from them.
	ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*Booking, error)
	DriverHasAssignedCar(ctx context.Context, driverID uuid.UUID) (bool, error)
}

// PricingService supplies the current price configuration for fare freezing
type PricingService interface {
	GetPriceConfig(ctx context.Context) (*pricing.PriceConfig, error)
}
