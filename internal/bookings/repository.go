package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citycab/taxi-dispatch/internal/pricing"
)

// ErrNotFound is returned when a booking does not exist
var ErrNotFound = errors.New("booking not found")

// Repository handles database operations for bookings
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new bookings repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `id, customer_id, driver_id, start_location, end_location, distance, fare, status, created_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	b := &Booking{}
	err := row.Scan(
		&b.BookingID,
		&b.CustomerID,
		&b.DriverID,
		&b.StartLocation,
		&b.EndLocation,
		&b.Distance,
		&b.Fare,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBookingWithBill inserts the booking and freezes its fare breakdown
// into a bill, atomically. One bill per booking.
func (r *Repository) CreateBookingWithBill(ctx context.Context, b *Booking, breakdown pricing.FareBreakdown) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingQuery := `
		INSERT INTO bookings (id, customer_id, driver_id, start_location, end_location, distance, fare, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, bookingQuery,
		b.BookingID,
		b.CustomerID,
		b.DriverID,
		b.StartLocation,
		b.EndLocation,
		b.Distance,
		b.Fare,
		b.Status,
	).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	billQuery := `
		INSERT INTO bills (booking_id, base_fare, waiting_time_charge, taxes, discount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, billQuery,
		b.BookingID,
		breakdown.BaseFare,
		breakdown.WaitingTimeCharge,
		breakdown.Taxes,
		breakdown.Discount,
		breakdown.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil
}

// GetBooking returns a booking by ID, including soft-deleted ones
func (r *Repository) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

// ListAll returns every non-deleted booking, newest first
func (r *Repository) ListAll(ctx context.Context) ([]*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status <> 'Deleted'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListByCustomer returns a customer's non-deleted bookings, newest first
func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1 AND status <> 'Deleted'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*Booking, error) {
	bookings := make([]*Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// SetStatus updates a booking's lifecycle state
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActiveByDriver returns the Pending and Accepted bookings referencing
// the driver
func (r *Repository) ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE driver_id = $1 AND status IN ('Pending', 'Accepted')
	`

	rows, err := r.db.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// DriverHasAssignedCar reports whether the driver is paired with a car
func (r *Repository) DriverHasAssignedCar(ctx context.Context, driverID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cars WHERE driver_id = $1)`, driverID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check driver car: %w", err)
	}
	return exists, nil
}
