package repositories

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
