package user

import "time"

// User is an account that can sign in to StaffHub. Accounts are either
// password-backed or linked to a Google identity (or both).
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	GoogleID     *string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
