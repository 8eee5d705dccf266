package domain

import "time"

// User is a credentials record. Everything user-facing lives on the
// Profile; the bookmark collection is keyed by ID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
