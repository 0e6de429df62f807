package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/citycab/taxi-dispatch/internal/pricing"
)

func strp(s string) *string { return &s }

func floatp(f float64) *float64 { return &f }

func TestRenderFullDocument(t *testing.T) {
	facts := TripFacts{
		DriverName:    strp("Kasun Perera"),
		StartLocation: strp("Fort"),
		EndLocation:   strp("Galle Face"),
		Distance:      floatp(10),
	}
	breakdown := pricing.FareBreakdown{
		BaseFare:    1000,
		Discount:    100,
		Taxes:       50,
		TotalAmount: 950,
	}

	want := strings.Join([]string{
		"Cab Booking Invoice",
		strings.Repeat("-", 44),
		"",
		"Selected Driver: Kasun Perera",
		"Start Location: Fort",
		"End Location: Galle Face",
		"Distance: 10 km",
		"",
		"Description     Amount (Rs.)",
		"Base Fare       1000.00",
		"Discount        100.00",
		"Taxes           50.00",
		"Total Amount    950.00",
		"",
		"Thank you for choosing our service!",
		"Contact us: support@cabservice.com | +94 123 456 789",
		"",
	}, "\n")

	got := Render(facts, breakdown)

	assert.Equal(t, want, string(got))
}

func TestRenderIsDeterministic(t *testing.T) {
	facts := TripFacts{DriverName: strp("Kasun Perera"), Distance: floatp(3.5)}
	breakdown := pricing.FareBreakdown{BaseFare: 350, TotalAmount: 350}

	first := Render(facts, breakdown)
	second := Render(facts, breakdown)

	assert.Equal(t, first, second)
}

func TestRenderPlaceholders(t *testing.T) {
	got := string(Render(TripFacts{}, pricing.FareBreakdown{}))

	assert.Contains(t, got, "Selected Driver: None")
	assert.Contains(t, got, "Start Location: Not set")
	assert.Contains(t, got, "End Location: Not set")
	assert.Contains(t, got, "Distance: Not calculated")
}

func TestRenderZeroDistancePlaceholder(t *testing.T) {
	got := string(Render(TripFacts{Distance: floatp(0)}, pricing.FareBreakdown{}))

	assert.Contains(t, got, "Distance: Not calculated")
}

func TestRenderFractionalDistance(t *testing.T) {
	got := string(Render(TripFacts{Distance: floatp(7.25)}, pricing.FareBreakdown{}))

	assert.Contains(t, got, "Distance: 7.25 km")
}

func TestRenderTwoDecimalAmounts(t *testing.T) {
	got := string(Render(TripFacts{}, pricing.FareBreakdown{
		BaseFare:    1234.5,
		Discount:    0.125,
		Taxes:       3,
		TotalAmount: 1237.375,
	}))

	assert.Contains(t, got, "Base Fare       1234.50")
	assert.Contains(t, got, "Discount        0.12")
	assert.Contains(t, got, "Taxes           3.00")
	assert.Contains(t, got, "Total Amount    1237.38")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "booking-invoice-abc123.pdf", Filename("abc123"))
	assert.Equal(t, "booking-invoice.pdf", Filename(""))
}
