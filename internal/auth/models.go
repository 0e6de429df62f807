package auth

import (
	"time"

	"github.com/google/uuid"
)

// Roles known to the service
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is an account that can log in. Customers self-register; admins are
// provisioned out of band.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Address      string    `json:"address" db:"address"`
	Phone        string    `json:"phone" db:"phone"`
	NIC          string    `json:"nic" db:"nic"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the self-registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Address  string `json:"address" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	NIC      string `json:"nic" binding:"required"`
}

// SessionResponse is returned by login and registration
type SessionResponse struct {
	Token    string    `json:"token"`
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}
