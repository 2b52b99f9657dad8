package model

// SessionStore persists the identity of the currently logged-in user across
// process restarts. Load returns ErrNotFound when no session exists.
type SessionStore interface {
	Load() (int64, error)
	Save(userID int64) error
	Clear() error
}
