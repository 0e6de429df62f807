package pricing

// ComputeFare derives a fare breakdown from a trip distance and the current
// price configuration. Pure and deterministic: identical inputs always yield
// an identical breakdown, so a persisted bill can be re-derived for
// verification. Negative inputs are clamped to zero.
func ComputeFare(distance, waitingUnits float64, cfg PriceConfig) FareBreakdown {
	if distance < 0 {
		distance = 0
	}
	if waitingUnits < 0 {
		waitingUnits = 0
	}

	baseFare := distance * cfg.BaseFarePerKm
	discount := baseFare * cfg.DiscountRatePct / 100
	taxes := baseFare * cfg.TaxRatePct / 100
	waiting := waitingUnits * cfg.WaitingChargePerUnit

	return FareBreakdown{
		BaseFare:          baseFare,
		Discount:          discount,
		Taxes:             taxes,
		WaitingTimeCharge: waiting,
		TotalAmount:       baseFare + waiting + taxes - discount,
	}
}

// RecomputeTotal reapplies the fare formula to an edited breakdown. The total
// is always derived from the four components; a stored total is never trusted.
func RecomputeTotal(b FareBreakdown) FareBreakdown {
	b.TotalAmount = b.BaseFare + b.WaitingTimeCharge + b.Taxes - b.Discount
	return b
}

// DiscountPercent returns the discount as a percentage of the base fare for
// display. Defined as 0 when the base fare is 0, never NaN or Inf.
func (b FareBreakdown) DiscountPercent() float64 {
	if b.BaseFare == 0 {
		return 0
	}
	return b.Discount / b.BaseFare * 100
}
