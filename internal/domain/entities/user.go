package entities

import "time"

type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Address      string
	// Language is the user's preferred locale code ("en", "hi", "or", ...).
	Language  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
