package bookings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsDriverAssignable(t *testing.T) {
	driverID := uuid.New()
	otherDriver := uuid.New()

	tests := []struct {
		name     string
		bookings []*Booking
		want     bool
	}{
		{
			name:     "no bookings at all",
			bookings: nil,
			want:     true,
		},
		{
			name: "pending booking blocks the driver",
			bookings: []*Booking{
				{DriverID: driverID, Status: StatusPending},
			},
			want: false,
		},
		{
			name: "accepted booking blocks the driver",
			bookings: []*Booking{
				{DriverID: driverID, Status: StatusAccepted},
			},
			want: false,
		},
		{
			name: "deleted booking frees the driver",
			bookings: []*Booking{
				{DriverID: driverID, Status: StatusDeleted},
			},
			want: true,
		},
		{
			name: "other drivers' bookings are ignored",
			bookings: []*Booking{
				{DriverID: otherDriver, Status: StatusPending},
				{DriverID: otherDriver, Status: StatusAccepted},
			},
			want: true,
		},
		{
			name: "one active among many deleted still blocks",
			bookings: []*Booking{
				{DriverID: driverID, Status: StatusDeleted},
				{DriverID: driverID, Status: StatusDeleted},
				{DriverID: driverID, Status: StatusAccepted},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDriverAssignable(driverID, tt.bookings))
		})
	}
}
