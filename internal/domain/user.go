package domain

import (
	"context"
	"time"
)

// User represents a registered account. PasswordHash is the bcrypt digest of
// the signup password and must never appear in an outward projection.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users. Deleting a user
// cascades to all projects and tasks they own.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, id string) error
}
