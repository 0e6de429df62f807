package pricing

import "context"

// RepositoryInterface defines the persistence operations for the price
// configuration table
type RepositoryInterface interface {
	GetPriceConfig(ctx context.Context) (*PriceConfig, error)
	UpdatePriceConfig(ctx context.Context, cfg *PriceConfig) error
}

// Cache is the read-through cache in front of the pricing table. Last write
// wins; there is no fencing between racing writers.
type Cache interface {
	GetPriceConfig(ctx context.Context) (*PriceConfig, bool)
	SetPriceConfig(ctx context.Context, cfg *PriceConfig)
	Invalidate(ctx context.Context)
}
