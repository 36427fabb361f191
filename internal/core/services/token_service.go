package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/platform/config"
	"github.com/jainutkarshh/StockFlow-ERP/internal/utils"
)

// tokenService issues JWT access tokens from the configured signing key.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.TokenService {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenService = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}
