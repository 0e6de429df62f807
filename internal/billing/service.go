package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/citycab/taxi-dispatch/internal/invoice"
	"github.com/citycab/taxi-dispatch/internal/pricing"
	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/logger"
)

// Service handles billing business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new billing service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// GetBill returns the bill for a booking
func (s *Service) GetBill(ctx context.Context, bookingID uuid.UUID) (*Bill, error) {
	bill, err := s.repo.GetBill(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, common.NewNotFoundError("no bill for this booking", err)
		}
		return nil, common.NewInternalServerError("failed to get bill")
	}
	return bill, nil
}

// UpdateBill persists admin edits to a bill. The total is always recomputed
// from the four components with the fare formula, so an inconsistent stored
// total cannot be submitted.
func (s *Service) UpdateBill(ctx context.Context, bookingID uuid.UUID, req *UpdateBillRequest) (*Bill, error) {
	breakdown := pricing.RecomputeTotal(pricing.FareBreakdown{
		BaseFare:          *req.BaseFare,
		WaitingTimeCharge: *req.WaitingTimeCharge,
		Taxes:             *req.Taxes,
		Discount:          *req.Discount,
	})

	bill := &Bill{
		BookingID:         bookingID,
		BaseFare:          breakdown.BaseFare,
		WaitingTimeCharge: breakdown.WaitingTimeCharge,
		Taxes:             breakdown.Taxes,
		Discount:          breakdown.Discount,
		TotalAmount:       breakdown.TotalAmount,
	}

	if err := s.repo.UpdateBill(ctx, bill); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, common.NewNotFoundError("no bill for this booking", err)
		}
		return nil, common.NewInternalServerError("failed to update bill")
	}

	logger.WithContext(ctx).Info("Bill updated",
		zap.String("booking_id", bookingID.String()),
		zap.Float64("total_amount", bill.TotalAmount),
	)

	return bill, nil
}

// RenderInvoice produces the downloadable invoice document for a booking.
// Customers may only download their own; admins may download any.
func (s *Service) RenderInvoice(ctx context.Context, bookingID uuid.UUID, callerID uuid.UUID, callerRole string) (string, []byte, error) {
	if callerRole != "admin" {
		owner, err := s.repo.BookingOwner(ctx, bookingID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return "", nil, common.NewNotFoundError("booking not found", err)
			}
			return "", nil, common.NewInternalServerError("failed to verify booking owner")
		}
		if owner != callerID {
			return "", nil, common.NewForbiddenError("not authorized to view this bill")
		}
	}

	record, err := s.repo.GetBillWithTrip(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, common.NewNotFoundError("no bill for this booking", err)
		}
		return "", nil, common.NewInternalServerError("failed to load bill")
	}

	facts := invoice.TripFacts{
		DriverName:    &record.DriverName,
		StartLocation: &record.StartLocation,
		EndLocation:   &record.EndLocation,
		Distance:      &record.Distance,
	}
	breakdown := pricing.FareBreakdown{
		BaseFare:          record.Bill.BaseFare,
		WaitingTimeCharge: record.Bill.WaitingTimeCharge,
		Taxes:             record.Bill.Taxes,
		Discount:          record.Bill.Discount,
		TotalAmount:       record.Bill.TotalAmount,
	}

	return invoice.Filename(bookingID.String()), invoice.Render(facts, breakdown), nil
}
