package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestComputeFare(t *testing.T) {
	tests := []struct {
		name         string
		distance     float64
		waitingUnits float64
		cfg          PriceConfig
		want         FareBreakdown
	}{
		{
			name:     "rates applied to base fare",
			distance: 10,
			cfg: PriceConfig{
				BaseFarePerKm:   100,
				TaxRatePct:      5,
				DiscountRatePct: 10,
			},
			want: FareBreakdown{
				BaseFare:    1000,
				Discount:    100,
				Taxes:       50,
				TotalAmount: 950,
			},
		},
		{
			name:         "waiting charge added before discount",
			distance:     10,
			waitingUnits: 2,
			cfg: PriceConfig{
				BaseFarePerKm:        100,
				WaitingChargePerUnit: 50,
				TaxRatePct:           5,
				DiscountRatePct:      10,
			},
			want: FareBreakdown{
				BaseFare:          1000,
				Discount:          100,
				Taxes:             50,
				WaitingTimeCharge: 100,
				TotalAmount:       1050,
			},
		},
		{
			name:     "default config charges distance only",
			distance: 7.5,
			cfg:      DefaultPriceConfig,
			want: FareBreakdown{
				BaseFare:    750,
				TotalAmount: 750,
			},
		},
		{
			name:     "zero distance yields zero everywhere",
			distance: 0,
			cfg: PriceConfig{
				BaseFarePerKm:   100,
				TaxRatePct:      5,
				DiscountRatePct: 10,
			},
			want: FareBreakdown{},
		},
		{
			name:         "negative inputs clamped to zero",
			distance:     -3,
			waitingUnits: -1,
			cfg: PriceConfig{
				BaseFarePerKm:        100,
				WaitingChargePerUnit: 50,
			},
			want: FareBreakdown{},
		},
		{
			name:     "fractional distance",
			distance: 3.3,
			cfg: PriceConfig{
				BaseFarePerKm: 100,
				TaxRatePct:    10,
			},
			want: FareBreakdown{
				BaseFare:    330,
				Taxes:       33,
				TotalAmount: 363,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFare(tt.distance, tt.waitingUnits, tt.cfg)

			assert.InDelta(t, tt.want.BaseFare, got.BaseFare, tolerance)
			assert.InDelta(t, tt.want.Discount, got.Discount, tolerance)
			assert.InDelta(t, tt.want.Taxes, got.Taxes, tolerance)
			assert.InDelta(t, tt.want.WaitingTimeCharge, got.WaitingTimeCharge, tolerance)
			assert.InDelta(t, tt.want.TotalAmount, got.TotalAmount, tolerance)
		})
	}
}

func TestComputeFareDeterministic(t *testing.T) {
	cfg := PriceConfig{BaseFarePerKm: 123.45, TaxRatePct: 7.5, DiscountRatePct: 2.5, WaitingChargePerUnit: 10}

	first := ComputeFare(12.7, 3, cfg)
	second := ComputeFare(12.7, 3, cfg)

	assert.Equal(t, first, second)
}

func TestRecomputeTotal(t *testing.T) {
	b := FareBreakdown{
		BaseFare:          1000,
		WaitingTimeCharge: 100,
		Taxes:             50,
		Discount:          200,
		TotalAmount:       999999, // stale, must be ignored
	}

	got := RecomputeTotal(b)

	assert.InDelta(t, 950.0, got.TotalAmount, tolerance)
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name string
		b    FareBreakdown
		want float64
	}{
		{
			name: "ratio of discount to base fare",
			b:    FareBreakdown{BaseFare: 1000, Discount: 100},
			want: 10,
		},
		{
			name: "zero base fare is defined as zero",
			b:    FareBreakdown{BaseFare: 0, Discount: 50},
			want: 0,
		},
		{
			name: "no discount",
			b:    FareBreakdown{BaseFare: 500},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.b.DiscountPercent()
			assert.InDelta(t, tt.want, got, tolerance)
			assert.False(t, got != got, "must never be NaN")
		})
	}
}
