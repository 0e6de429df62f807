package fleet

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the persistence operations for the fleet
// registries
type RepositoryInterface interface {
	CreateDriver(ctx context.Context, d *Driver) error
	CreateCar(ctx context.Context, c *Car) error
	ListAvailableCars(ctx context.Context) ([]*Car, error)
	ListDriversWithoutCar(ctx context.Context) ([]*Driver, error)
	ListDriversWithCars(ctx context.Context) ([]*Driver, error)
	AssignCarToDriver(ctx context.Context, driverID, carID uuid.UUID) error
}
