package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Assignment conflicts surfaced by AssignCarToDriver
var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrCarNotFound    = errors.New("car not found")
	ErrDriverHasCar   = errors.New("driver already has a car assigned")
	ErrCarAssigned    = errors.New("car already assigned to a driver")
)

// Repository handles database operations for drivers and cars
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new fleet repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateDriver registers a new driver
func (r *Repository) CreateDriver(ctx context.Context, d *Driver) error {
	query := `
		INSERT INTO drivers (id, name, license_number, phone, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		d.DriverID,
		d.Name,
		d.LicenseNumber,
		d.Phone,
		d.IsAvailable,
	).Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	return nil
}

// CreateCar registers a new car
func (r *Repository) CreateCar(ctx context.Context, c *Car) error {
	query := `
		INSERT INTO cars (id, model, license_plate, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.CarID,
		c.Model,
		c.LicensePlate,
		c.IsAvailable,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	return nil
}

// ListAvailableCars returns cars not yet assigned to a driver
func (r *Repository) ListAvailableCars(ctx context.Context) ([]*Car, error) {
	query := `
		SELECT id, model, license_plate, is_available, driver_id, created_at
		FROM cars
		WHERE driver_id IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available cars: %w", err)
	}
	defer rows.Close()

	cars := make([]*Car, 0)
	for rows.Next() {
		car := &Car{}
		if err := rows.Scan(&car.CarID, &car.Model, &car.LicensePlate, &car.IsAvailable, &car.DriverID, &car.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}

// ListDriversWithoutCar returns drivers that can still be paired with a car
func (r *Repository) ListDriversWithoutCar(ctx context.Context) ([]*Driver, error) {
	query := `
		SELECT d.id, d.name, d.license_number, d.phone, d.is_available, d.created_at
		FROM drivers d
		WHERE NOT EXISTS (SELECT 1 FROM cars c WHERE c.driver_id = d.id)
		ORDER BY d.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers without car: %w", err)
	}
	defer rows.Close()

	drivers := make([]*Driver, 0)
	for rows.Next() {
		d := &Driver{}
		if err := rows.Scan(&d.DriverID, &d.Name, &d.LicenseNumber, &d.Phone, &d.IsAvailable, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// ListDriversWithCars returns drivers paired with a car, with availability
// derived from active bookings: a driver referenced by a Pending or Accepted
// booking is not available.
func (r *Repository) ListDriversWithCars(ctx context.Context) ([]*Driver, error) {
	query := `
		SELECT d.id, d.name, d.license_number, d.phone,
		       NOT EXISTS (
		           SELECT 1 FROM bookings b
		           WHERE b.driver_id = d.id AND b.status IN ('Pending', 'Accepted')
		       ) AS is_available,
		       c.model, c.license_plate, d.created_at
		FROM drivers d
		JOIN cars c ON c.driver_id = d.id
		ORDER BY d.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers with cars: %w", err)
	}
	defer rows.Close()

	drivers := make([]*Driver, 0)
	for rows.Next() {
		d := &Driver{}
		if err := rows.Scan(&d.DriverID, &d.Name, &d.LicenseNumber, &d.Phone, &d.IsAvailable, &d.CarModel, &d.CarPlate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// AssignCarToDriver links a car to a driver 1:1. Both rows are checked and
// updated inside one transaction; the row locks keep a racing assignment from
// pairing either party twice.
func (r *Repository) AssignCarToDriver(ctx context.Context, driverID, carID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin assignment: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedDriverID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM drivers WHERE id = $1 FOR UPDATE`, driverID).Scan(&lockedDriverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDriverNotFound
		}
		return fmt.Errorf("failed to check driver: %w", err)
	}

	var hasCar bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cars WHERE driver_id = $1)`, driverID).Scan(&hasCar)
	if err != nil {
		return fmt.Errorf("failed to check driver assignment: %w", err)
	}
	if hasCar {
		return ErrDriverHasCar
	}

	var assignedTo *uuid.UUID
	err = tx.QueryRow(ctx, `SELECT driver_id FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&assignedTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCarNotFound
		}
		return fmt.Errorf("failed to check car: %w", err)
	}
	if assignedTo != nil {
		return ErrCarAssigned
	}

	if _, err := tx.Exec(ctx, `UPDATE cars SET driver_id = $1, is_available = false WHERE id = $2`, driverID, carID); err != nil {
		return fmt.Errorf("failed to assign car: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE drivers SET is_available = false WHERE id = $1`, driverID); err != nil {
		return fmt.Errorf("failed to update driver availability: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assignment: %w", err)
	}

	return nil
}
