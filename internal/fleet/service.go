package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/logger"
)

// Service handles fleet business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new fleet service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// RegisterDriver registers a new driver. A fresh driver has no car, so it is
// not yet bookable regardless of the availability flag.
func (s *Service) RegisterDriver(ctx context.Context, req *RegisterDriverRequest) (*Driver, error) {
	driver := &Driver{
		DriverID:      uuid.New(),
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		IsAvailable:   true,
	}

	if err := s.repo.CreateDriver(ctx, driver); err != nil {
		return nil, common.NewInternalServerError("failed to register driver")
	}

	logger.WithContext(ctx).Info("Driver registered",
		zap.String("driver_id", driver.DriverID.String()),
		zap.String("license_number", driver.LicenseNumber),
	)

	return driver, nil
}

// RegisterCar registers a new car
func (s *Service) RegisterCar(ctx context.Context, req *RegisterCarRequest) (*Car, error) {
	car := &Car{
		CarID:        uuid.New(),
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		IsAvailable:  true,
	}

	if err := s.repo.CreateCar(ctx, car); err != nil {
		return nil, common.NewInternalServerError("failed to register car")
	}

	logger.WithContext(ctx).Info("Car registered",
		zap.String("car_id", car.CarID.String()),
		zap.String("license_plate", car.LicensePlate),
	)

	return car, nil
}

// ListAvailableCars returns cars not yet paired with a driver
func (s *Service) ListAvailableCars(ctx context.Context) ([]*Car, error) {
	cars, err := s.repo.ListAvailableCars(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to list available cars")
	}
	return cars, nil
}

// ListDriversWithoutCar returns drivers still waiting for a car
func (s *Service) ListDriversWithoutCar(ctx context.Context) ([]*Driver, error) {
	drivers, err := s.repo.ListDriversWithoutCar(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to list drivers")
	}
	return drivers, nil
}

// ListDriversWithCars returns paired drivers with booking-derived availability
func (s *Service) ListDriversWithCars(ctx context.Context) ([]*Driver, error) {
	drivers, err := s.repo.ListDriversWithCars(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to list drivers")
	}
	return drivers, nil
}

// AssignCarToDriver establishes the 1:1 driver/car pairing. A driver that
// already has a car, or a car that already has a driver, is a conflict.
func (s *Service) AssignCarToDriver(ctx context.Context, driverID, carID uuid.UUID) error {
	err := s.repo.AssignCarToDriver(ctx, driverID, carID)
	switch {
	case err == nil:
	case errors.Is(err, ErrDriverNotFound):
		return common.NewNotFoundError("driver not found", err)
	case errors.Is(err, ErrCarNotFound):
		return common.NewNotFoundError("car not found", err)
	case errors.Is(err, ErrDriverHasCar):
		return common.NewConflictError("driver already has a car assigned", err)
	case errors.Is(err, ErrCarAssigned):
		return common.NewConflictError("car is already assigned to a driver", err)
	default:
		return common.NewInternalServerError("failed to assign car to driver")
	}

	logger.WithContext(ctx).Info("Car assigned to driver",
		zap.String("driver_id", driverID.String()),
		zap.String("car_id", carID.String()),
	)

	return nil
}
