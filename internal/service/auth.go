package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/morcel/product-catalog/internal/hash"
	"github.com/morcel/product-catalog/internal/logging"
	"github.com/morcel/product-catalog/internal/models"
	"github.com/morcel/product-catalog/internal/tokens"
	"github.com/morcel/product-catalog/internal/transport"
)

type AuthService struct {
	Users     *UserService
	JWTSecret []byte
	TokenTTL  time.Duration
	Events    EventPublisher
}

type LoginResult struct {
	Token string
	User  *models.User
}

// Login never distinguishes an unknown username from a wrong password: both
// come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.SignAccessToken(user.Username, user.Role, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*LoginResult, error) {
	user, err := s.Users.Create(ctx, transport.CreateUserRequest(req))
	if err != nil {
		return nil, err
	}

	token, err := tokens.SignAccessToken(user.Username, user.Role, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, err
	}

	if s.Events != nil {
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		event := map[string]any{"type": "user_registered", "user_id": user.ID, "username": user.Username}
		if err := s.Events.PublishEvent(pubCtx, "user_events", fmt.Sprint(user.ID), event); err != nil {
			logging.FromContext(ctx).Error("event_publish_failed", "topic", "user_events", "error", err)
		}
	}

	return &LoginResult{Token: token, User: user}, nil
}
