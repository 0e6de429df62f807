// Package invoice renders the fixed-layout booking invoice document. The
// section order and two-decimal formatting are load-bearing: downloads must
// be byte-identical for identical inputs.
package invoice

import (
	"fmt"
	"strings"

	"github.com/citycab/taxi-dispatch/internal/pricing"
)

// TripFacts are the trip details shown above the pricing table. Nil fields
// render their explicit placeholder instead of being omitted.
type TripFacts struct {
	DriverName    *string
	StartLocation *string
	EndLocation   *string
	Distance      *float64
}

const (
	title      = "Cab Booking Invoice"
	footerLine = "Thank you for choosing our service!"
	contact    = "Contact us: support@cabservice.com | +94 123 456 789"

	ruleWidth  = 44
	labelWidth = 16
)

// Render produces the invoice document. Sections, in order: title,
// horizontal rule, trip facts, pricing table, footer.
func Render(facts TripFacts, b pricing.FareBreakdown) []byte {
	var sb strings.Builder

	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")

	sb.WriteString("Selected Driver: " + stringOr(facts.DriverName, "None") + "\n")
	sb.WriteString("Start Location: " + stringOr(facts.StartLocation, "Not set") + "\n")
	sb.WriteString("End Location: " + stringOr(facts.EndLocation, "Not set") + "\n")
	sb.WriteString("Distance: " + distanceOr(facts.Distance, "Not calculated") + "\n\n")

	sb.WriteString(fmt.Sprintf("%-*s%s\n", labelWidth, "Description", "Amount (Rs.)"))
	writeRow(&sb, "Base Fare", b.BaseFare)
	writeRow(&sb, "Discount", b.Discount)
	writeRow(&sb, "Taxes", b.Taxes)
	writeRow(&sb, "Total Amount", b.TotalAmount)
	sb.WriteString("\n")

	sb.WriteString(footerLine + "\n")
	sb.WriteString(contact + "\n")

	return []byte(sb.String())
}

// Filename returns the download filename for an invoice. The booking id is
// optional; without it the bare name is used.
func Filename(bookingID string) string {
	if bookingID == "" {
		return "booking-invoice.pdf"
	}
	return fmt.Sprintf("booking-invoice-%s.pdf", bookingID)
}

func writeRow(sb *strings.Builder, label string, amount float64) {
	sb.WriteString(fmt.Sprintf("%-*s%.2f\n", labelWidth, label, amount))
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func distanceOr(d *float64, fallback string) string {
	if d == nil || *d == 0 {
		return fallback
	}
	return fmt.Sprintf("%g km", *d)
}
