package auth

import "time"

// Identity represents a credential-store account with its role assignments.
type Identity struct {
	ID           int64
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
