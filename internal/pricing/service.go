package pricing

import (
	"context"

	"go.uber.org/zap"

	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/logger"
)

// Service handles pricing business logic
type Service struct {
	repo  RepositoryInterface
	cache Cache
}

// NewService creates a new pricing service. The cache may be nil, in which
// case every read hits the database.
func NewService(repo RepositoryInterface, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// GetPriceConfig returns the current global price configuration
func (s *Service) GetPriceConfig(ctx context.Context) (*PriceConfig, error) {
	if s.cache != nil {
		if cfg, ok := s.cache.GetPriceConfig(ctx); ok {
			return cfg, nil
		}
	}

	cfg, err := s.repo.GetPriceConfig(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to load price configuration")
	}

	if s.cache != nil {
		s.cache.SetPriceConfig(ctx, cfg)
	}

	return cfg, nil
}

// UpdatePriceConfig overwrites the global price configuration and drops the
// cached copy so the next read observes the new values
func (s *Service) UpdatePriceConfig(ctx context.Context, req *UpdatePriceConfigRequest) (*PriceConfig, error) {
	cfg := &PriceConfig{
		BaseFarePerKm:        *req.BaseFarePerKm,
		WaitingChargePerUnit: *req.WaitingChargePerUnit,
		TaxRatePct:           *req.TaxRatePct,
		DiscountRatePct:      *req.DiscountRatePct,
	}

	if err := s.repo.UpdatePriceConfig(ctx, cfg); err != nil {
		return nil, common.NewInternalServerError("failed to update price configuration")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	logger.WithContext(ctx).Info("Price configuration updated",
		zap.Float64("base_fare_per_km", cfg.BaseFarePerKm),
		zap.Float64("tax_rate_pct", cfg.TaxRatePct),
		zap.Float64("discount_rate_pct", cfg.DiscountRatePct),
		zap.Float64("waiting_charge_per_unit", cfg.WaitingChargePerUnit),
	)

	return cfg, nil
}

// Estimate computes a fare breakdown for a prospective trip
func (s *Service) Estimate(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error) {
	cfg, err := s.GetPriceConfig(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeFare(req.Distance, req.WaitingUnits, *cfg)

	return &EstimateResponse{
		Distance:        req.Distance,
		Breakdown:       breakdown,
		DiscountPercent: breakdown.DiscountPercent(),
	}, nil
}
