package pricing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for the price configuration
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new pricing repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetPriceConfig returns the single global price configuration row
func (r *Repository) GetPriceConfig(ctx context.Context) (*PriceConfig, error) {
	query := `
		SELECT base_fare_per_km, waiting_charge_per_unit, tax_rate_pct, discount_rate_pct, updated_at
		FROM price_config
		WHERE id = 1
	`

	cfg := &PriceConfig{}
	err := r.db.QueryRow(ctx, query).Scan(
		&cfg.BaseFarePerKm,
		&cfg.WaitingChargePerUnit,
		&cfg.TaxRatePct,
		&cfg.DiscountRatePct,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get price config: %w", err)
	}

	return cfg, nil
}

// UpdatePriceConfig overwrites the global price configuration. No history is
// kept.
func (r *Repository) UpdatePriceConfig(ctx context.Context, cfg *PriceConfig) error {
	query := `
		UPDATE price_config
		SET base_fare_per_km = $1,
		    waiting_charge_per_unit = $2,
		    tax_rate_pct = $3,
		    discount_rate_pct = $4,
		    updated_at = NOW()
		WHERE id = 1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		cfg.BaseFarePerKm,
		cfg.WaitingChargePerUnit,
		cfg.TaxRatePct,
		cfg.DiscountRatePct,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update price config: %w", err)
	}

	return nil
}
