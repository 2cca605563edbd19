package domain

import "time"

// User is the domain model for one account. PasswordHash only ever holds a
// bcrypt digest and is never serialized into responses.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
