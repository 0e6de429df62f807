package bookings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/citycab/taxi-dispatch/internal/pricing"
	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/logger"
)

// Service handles booking lifecycle business logic
type Service struct {
	repo    RepositoryInterface
	pricing PricingService
}

// NewService creates a new bookings service
func NewService(repo RepositoryInterface, pricingService PricingService) *Service {
	return &Service{repo: repo, pricing: pricingService}
}

// CreateBooking validates and submits a trip request. The fare is computed
// from the current price configuration and frozen into a bill together with
// the booking. A distance of zero means no route was found and is rejected
// before anything is persisted.
func (s *Service) CreateBooking(ctx context.Context, customerID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	if req.Distance <= 0 {
		return nil, common.NewBadRequestError("distance must be greater than zero", nil)
	}

	hasCar, err := s.repo.DriverHasAssignedCar(ctx, req.DriverID)
	if err != nil {
		return nil, common.NewInternalServerError("failed to verify driver")
	}
	if !hasCar {
		return nil, common.NewConflictError("driver is not paired with a car", nil)
	}

	active, err := s.repo.ListActiveByDriver(ctx, req.DriverID)
	if err != nil {
		return nil, common.NewInternalServerError("failed to verify driver availability")
	}
	if !IsDriverAssignable(req.DriverID, active) {
		return nil, common.NewConflictError("driver is not available", nil)
	}

	cfg, err := s.pricing.GetPriceConfig(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.ComputeFare(req.Distance, req.WaitingUnits, *cfg)

	booking := &Booking{
		BookingID:     uuid.New(),
		CustomerID:    customerID,
		DriverID:      req.DriverID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Distance:      req.Distance,
		Fare:          breakdown.TotalAmount,
		Status:        StatusPending,
	}

	if err := s.repo.CreateBookingWithBill(ctx, booking, breakdown); err != nil {
		return nil, common.NewInternalServerError("failed to create booking")
	}

	logger.WithContext(ctx).Info("Booking created",
		zap.String("booking_id", booking.BookingID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("driver_id", req.DriverID.String()),
		zap.Float64("distance", req.Distance),
		zap.Float64("fare", booking.Fare),
	)

	return booking, nil
}

// ListAll returns all bookings for the admin dashboard
func (s *Service) ListAll(ctx context.Context) ([]*Booking, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to list bookings")
	}
	return list, nil
}

// ListByCustomer returns a customer's bookings
func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error) {
	list, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, common.NewInternalServerError("failed to list bookings")
	}
	return list, nil
}

// AcceptBooking moves a Pending booking to Accepted. Accepting an already
// Accepted booking is a no-op; the client-side button guard may be bypassed.
// A Deleted booking cannot be accepted.
func (s *Service) AcceptBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case StatusAccepted:
		return booking, nil
	case StatusDeleted:
		return nil, common.NewConflictError("booking has been deleted", nil)
	}

	if err := s.repo.SetStatus(ctx, id, StatusAccepted); err != nil {
		return nil, common.NewInternalServerError("failed to accept booking")
	}
	booking.Status = StatusAccepted

	logger.WithContext(ctx).Info("Booking accepted", zap.String("booking_id", id.String()))

	return booking, nil
}

// DeleteBooking soft-deletes a booking. Customers may only delete their own;
// admins may delete any. Deleting an already Deleted booking is a no-op.
// There is no transition out of Deleted.
func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID, callerID uuid.UUID, callerRole string) error {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if callerRole != "admin" && booking.CustomerID != callerID {
		return common.NewForbiddenError("not authorized to delete this booking")
	}

	if booking.Status == StatusDeleted {
		return nil
	}

	if err := s.repo.SetStatus(ctx, id, StatusDeleted); err != nil {
		return common.NewInternalServerError("failed to delete booking")
	}

	logger.WithContext(ctx).Info("Booking deleted", zap.String("booking_id", id.String()))

	return nil
}

func (s *Service) getBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, common.NewNotFoundError("booking not found", err)
		}
		return nil, common.NewInternalServerError("failed to get booking")
	}
	return booking, nil
}
