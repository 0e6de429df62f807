package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no bill exists for a booking
var ErrNotFound = errors.New("bill not found")

// Repository handles database operations for bills
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new billing repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetBill returns the bill for a booking
func (r *Repository) GetBill(ctx context.Context, bookingID uuid.UUID) (*Bill, error) {
	query := `
		SELECT booking_id, base_fare, waiting_time_charge, taxes, discount, total_amount, updated_at
		FROM bills
		WHERE booking_id = $1
	`

	bill := &Bill{}
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&bill.BookingID,
		&bill.BaseFare,
		&bill.WaitingTimeCharge,
		&bill.Taxes,
		&bill.Discount,
		&bill.TotalAmount,
		&bill.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return bill, nil
}

// GetBillWithTrip returns the bill joined with the booking and driver facts
// needed to render the invoice
func (r *Repository) GetBillWithTrip(ctx context.Context, bookingID uuid.UUID) (*BillWithTrip, error) {
	query := `
		SELECT bl.booking_id, bl.base_fare, bl.waiting_time_charge, bl.taxes, bl.discount,
		       bl.total_amount, bl.updated_at,
		       d.name, b.start_location, b.end_location, b.distance
		FROM bills bl
		JOIN bookings b ON b.id = bl.booking_id
		JOIN drivers d ON d.id = b.driver_id
		WHERE bl.booking_id = $1
	`

	result := &BillWithTrip{}
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&result.Bill.BookingID,
		&result.Bill.BaseFare,
		&result.Bill.WaitingTimeCharge,
		&result.Bill.Taxes,
		&result.Bill.Discount,
		&result.Bill.TotalAmount,
		&result.Bill.UpdatedAt,
		&result.DriverName,
		&result.StartLocation,
		&result.EndLocation,
		&result.Distance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bill with trip: %w", err)
	}

	return result, nil
}

// UpdateBill persists admin-edited bill components and the recomputed total
func (r *Repository) UpdateBill(ctx context.Context, bill *Bill) error {
	query := `
		UPDATE bills
		SET base_fare = $1,
		    waiting_time_charge = $2,
		    taxes = $3,
		    discount = $4,
		    total_amount = $5,
		    updated_at = NOW()
		WHERE booking_id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		bill.BaseFare,
		bill.WaitingTimeCharge,
		bill.Taxes,
		bill.Discount,
		bill.TotalAmount,
		bill.BookingID,
	).Scan(&bill.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update bill: %w", err)
	}

	return nil
}

// BookingOwner returns the customer id behind a booking
func (r *Repository) BookingOwner(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error) {
	var owner uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT customer_id FROM bookings WHERE id = $1`, bookingID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get booking owner: %w", err)
	}
	return owner, nil
}
