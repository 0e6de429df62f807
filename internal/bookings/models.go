package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Status is the booking lifecycle state. Pending is initial; Accepted is set
// by an admin; Deleted is terminal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusDeleted  Status = "Deleted"
)

// Booking is a customer trip request. The fare is frozen at creation time
// from the then-current price configuration.
type Booking struct {
	BookingID     uuid.UUID `json:"bookingId" db:"id"`
	CustomerID    uuid.UUID `json:"customerId" db:"customer_id"`
	DriverID      uuid.UUID `json:"driverId" db:"driver_id"`
	StartLocation string    `json:"startLocation" db:"start_location"`
	EndLocation   string    `json:"endLocation" db:"end_location"`
	Distance      float64   `json:"distance" db:"distance"`
	Fare          float64   `json:"fare" db:"fare"`
	Status        Status    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// CreateBookingRequest is the customer payload submitting a trip request
type CreateBookingRequest struct {
	DriverID      uuid.UUID `json:"driverId" binding:"required"`
	StartLocation string    `json:"startLocation" binding:"required"`
	EndLocation   string    `json:"endLocation" binding:"required"`
	Distance      float64   `json:"distance" binding:"required"`
	WaitingUnits  float64   `json:"waitingUnits"`
}
