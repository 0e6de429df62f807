package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/citycab/taxi-dispatch/internal/pricing"
)

// MockPricingRepository is a mock implementation of pricing.RepositoryInterface
type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) GetPriceConfig(ctx context.Context) (*pricing.PriceConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PriceConfig), args.Error(1)
}

func (m *MockPricingRepository) UpdatePriceConfig(ctx context.Context, cfg *pricing.PriceConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockPriceConfigCache is a mock implementation of pricing.Cache
type MockPriceConfigCache struct {
	mock.Mock
}

func (m *MockPriceConfigCache) GetPriceConfig(ctx context.Context) (*pricing.PriceConfig, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*pricing.PriceConfig), args.Bool(1)
}

func (m *MockPriceConfigCache) SetPriceConfig(ctx context.Context, cfg *pricing.PriceConfig) {
	m.Called(ctx, cfg)
}

func (m *MockPriceConfigCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
