package services

import (
	"context"
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

// UserService manages user accounts and credential checks.
type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies credentials, returning ErrUnauthorized on any
	// mismatch without revealing whether the account exists.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenService issues access tokens for authenticated users.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
