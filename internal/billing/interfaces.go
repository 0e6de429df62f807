package billing

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the persistence operations for bills
type RepositoryInterface interface {
	GetBill(ctx context.Context, bookingID uuid.UUID) (*Bill, error)
	GetBillWithTrip(ctx context.Context, bookingID uuid.UUID) (*BillWithTrip, error)
	UpdateBill(ctx context.Context, bill *Bill) error
	// BookingOwner returns the customer that owns the booking backing a bill.
	BookingOwner(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error)
}
