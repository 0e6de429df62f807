package billing

import (
	"time"

	"github.com/google/uuid"
)

// Bill is the editable billing record, one per booking. TotalAmount is
// always recomputed server-side from the four components; a stored total is
// never trusted from the client.
type Bill struct {
	BookingID         uuid.UUID `json:"bookingId" db:"booking_id"`
	BaseFare          float64   `json:"baseFare" db:"base_fare"`
	WaitingTimeCharge float64   `json:"waitingTimeCharge" db:"waiting_time_charge"`
	Taxes             float64   `json:"taxes" db:"taxes"`
	Discount          float64   `json:"discount" db:"discount"`
	TotalAmount       float64   `json:"totalAmount" db:"total_amount"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

// UpdateBillRequest carries the admin-edited bill components. The client may
// send a totalAmount but it is ignored and re-derived.
type UpdateBillRequest struct {
	BaseFare          *float64 `json:"baseFare" binding:"required,gte=0"`
	WaitingTimeCharge *float64 `json:"waitingTimeCharge" binding:"required,gte=0"`
	Taxes             *float64 `json:"taxes" binding:"required,gte=0"`
	Discount          *float64 `json:"discount" binding:"required,gte=0"`
}

// BillWithTrip pairs a bill with the trip facts needed for the invoice
type BillWithTrip struct {
	Bill          Bill
	DriverName    string
	StartLocation string
	EndLocation   string
	Distance      float64
}
