package fleet

import (
	"time"

	"github.com/google/uuid"
)

// Driver is a registered driver. IsAvailable tracks car assignment only;
// whether the driver is bookable additionally depends on active bookings and
// is derived, never stored.
type Driver struct {
	DriverID      uuid.UUID `json:"driverId" db:"id"`
	Name          string    `json:"name" db:"name"`
	LicenseNumber string    `json:"licenseNumber" db:"license_number"`
	Phone         string    `json:"phone" db:"phone"`
	IsAvailable   bool      `json:"isAvailable" db:"is_available"`
	CarModel      *string   `json:"carModel,omitempty" db:"car_model"`
	CarPlate      *string   `json:"carLicenseNumber,omitempty" db:"car_plate"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Car is a registered vehicle. A car belongs to at most one driver at a time.
type Car struct {
	CarID        uuid.UUID  `json:"carId" db:"id"`
	Model        string     `json:"model" db:"model"`
	LicensePlate string     `json:"licensePlate" db:"license_plate"`
	IsAvailable  bool       `json:"isAvailable" db:"is_available"`
	DriverID     *uuid.UUID `json:"driverId,omitempty" db:"driver_id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// RegisterDriverRequest is the admin payload for registering a driver
type RegisterDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
}

// RegisterCarRequest is the admin payload for registering a car
type RegisterCarRequest struct {
	Model        string `json:"model" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
}
