package domain

import "time"

// User is an operator account: an admin or a ticket seller (vendedor).
type User struct {
	UID          string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
