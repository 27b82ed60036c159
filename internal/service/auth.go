package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/token"
)

// AuthService handles registration, login, and the display-name lookup.
type AuthService struct {
	users repository.UserRepository
	names repository.NameCache
	codec *token.Codec
}

// NewAuthService creates an AuthService. The name cache is consulted
// best-effort; only the user repository and codec are load-bearing.
func NewAuthService(users repository.UserRepository, names repository.NameCache, codec *token.Codec) (*AuthService, error) {
	if users == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if codec == nil {
		return nil, fmt.Errorf("token codec cannot be nil")
	}
	return &AuthService{users: users, names: names, codec: codec}, nil
}

// Register creates an account and immediately issues a token for it, so a
// fresh registration is also a login. Returns the token and the new user id.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, uint, error) {
	logCtx := logrus.WithField("username", username)

	if username == "" || password == "" {
		return "", 0, fmt.Errorf("username and password are required")
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		logCtx.Warn("Registration failed: username already exists")
		return "", 0, ErrRegistrationFailed
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error during registration lookup")
		return "", 0, ErrInternalServer
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return "", 0, ErrInternalServer
	}

	user := &domain.User{Username: username, Password: hashedPassword}
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Registration failed: username already exists (unique constraint)")
			return "", 0, ErrRegistrationFailed
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return "", 0, ErrInternalServer
	}

	signed, err := s.codec.Issue(user.ID, token.Claims{"username": username})
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during registration")
		return "", 0, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	return signed, user.ID, nil
}

// Login verifies the credentials and issues a token. Unknown username and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		return "", ErrAuthenticationFailed
	}
	if user == nil {
		logCtx.Warn("Login attempt failed: repository returned nil user without error")
		return "", ErrAuthenticationFailed
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return "", ErrAuthenticationFailed
	}

	signed, err := s.codec.Issue(user.ID, token.Claims{"username": user.Username})
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during login")
		return "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return signed, nil
}

// DisplayName resolves the caller's display name, going through the cache
// first. Cache failures fall back to the database and never fail the call.
func (s *AuthService) DisplayName(ctx context.Context, userID uint) (string, error) {
	if s.names != nil {
		name, err := s.names.GetUsername(ctx, userID)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).WithField("user_id", userID).Warn("Name cache lookup failed")
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Database error during display-name lookup")
		return "", ErrInternalServer
	}

	if s.names != nil {
		if err := s.names.SetUsername(ctx, userID, user.Username); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("Name cache write failed")
		}
	}
	return user.Username, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
