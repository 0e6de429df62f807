package pricing

import "time"

// PriceConfig is the single global pricing table maintained by admins.
// Rates are percentages applied to the base fare, not to the distance.
type PriceConfig struct {
	BaseFarePerKm        float64   `json:"baseFare" db:"base_fare_per_km"`
	WaitingChargePerUnit float64   `json:"waitingTimeCharge" db:"waiting_charge_per_unit"`
	TaxRatePct           float64   `json:"taxRate" db:"tax_rate_pct"`
	DiscountRatePct      float64   `json:"discountRate" db:"discount_rate_pct"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

// FareBreakdown decomposes a trip's cost into its components
type FareBreakdown struct {
	BaseFare          float64 `json:"baseFare"`
	Discount          float64 `json:"discount"`
	Taxes             float64 `json:"taxes"`
	WaitingTimeCharge float64 `json:"waitingTimeCharge"`
	TotalAmount       float64 `json:"totalAmount"`
}

// UpdatePriceConfigRequest is the admin payload overwriting the pricing table
type UpdatePriceConfigRequest struct {
	BaseFarePerKm        *float64 `json:"baseFare" binding:"required,gte=0"`
	WaitingChargePerUnit *float64 `json:"waitingTimeCharge" binding:"required,gte=0"`
	TaxRatePct           *float64 `json:"taxRate" binding:"required,gte=0"`
	DiscountRatePct      *float64 `json:"discountRate" binding:"required,gte=0"`
}

// EstimateRequest asks for a fare breakdown ahead of booking
type EstimateRequest struct {
	Distance     float64 `json:"distance" binding:"gte=0"`
	WaitingUnits float64 `json:"waitingUnits" binding:"gte=0"`
}

// EstimateResponse carries the computed breakdown plus display helpers
type EstimateResponse struct {
	Distance        float64       `json:"distance"`
	Breakdown       FareBreakdown `json:"breakdown"`
	DiscountPercent float64       `json:"discountPercent"`
}

// DefaultPriceConfig seeds the pricing table before an admin first edits it.
// 1 km = 100 Rs, matching the original deployment.
var DefaultPriceConfig = PriceConfig{
	BaseFarePerKm:        100,
	WaitingChargePerUnit: 0,
	TaxRatePct:           0,
	DiscountRatePct:      0,
}
