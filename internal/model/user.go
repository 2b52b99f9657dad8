package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered user. Users are created on first login with an
// unseen email and never updated or deleted afterwards.
type User struct {
	ID    int64
	Name  string
	Email string
}
