package bookings

import "github.com/google/uuid"

// IsDriverAssignable reports whether a driver can take a new booking: true
// iff no Pending or Accepted booking references the driver. Deleted bookings
// free the driver again.
func IsDriverAssignable(driverID uuid.UUID, activeBookings []*Booking) bool {
	for _, b := range activeBookings {
		if b.DriverID != driverID {
			continue
		}
		if b.Status == StatusPending || b.Status == StatusAccepted {
			return false
		}
	}
	return true
}
