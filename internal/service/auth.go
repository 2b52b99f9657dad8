package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coursetrack/internal/logger"
	"coursetrack/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Login finds or registers the user for the given email and persists the
// session. For an existing email the submitted name is ignored. The second
// return value reports whether a new user was registered.
func (s *Auth) Login(ctx context.Context, name, email string) (model.User, bool, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return model.User{}, false, model.ErrEmptyField
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	registered := false
	if errors.Is(err, model.ErrNotFound) {
		user, err = s.userStore.Create(ctx, model.User{Name: name, Email: email})
		if err != nil {
			s.logger.Error("Auth service: failed to create user",
				"email", email,
				"error", err.Error())
			return model.User{}, false, fmt.Errorf("failed to create user: %w", err)
		}
		registered = true
		s.logger.Info("Auth service: user registered",
			"user_id", user.ID,
			"email", email)
	}

	if err := s.sessionStore.Save(user.ID); err != nil {
		return model.User{}, false, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return user, registered, nil
}

// Resume restores the session persisted by a previous run. A missing session
// or a session naming an unknown user maps to model.ErrNotFound.
func (s *Auth) Resume(ctx context.Context) (model.User, error) {
	id, err := s.sessionStore.Load()
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Logout clears the persisted session.
func (s *Auth) Logout() error {
	if err := s.sessionStore.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("Auth service: user logged out")

	return nil
}
