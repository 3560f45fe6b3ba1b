package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/platform/config"
	"github.com/median-app/median-backend/internal/utils"
)

// tokenService mints and verifies JWTs for the three token purposes. Each
// purpose resolves to its own secret and lifetime from configuration, so a
// token minted for one purpose never verifies under another.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) secretAndExpiry(purpose domain.TokenPurpose) (string, time.Duration, error) {
	switch purpose {
	case domain.TokenPurposeAccess:
		return s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, nil
	case domain.TokenPurposeRefresh:
		return s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, nil
	case domain.TokenPurposeReset:
		return s.cfg.ResetTokenSecret, s.cfg.ResetTokenExpiryDuration, nil
	default:
		return "", 0, fmt.Errorf("unknown token purpose %q", purpose)
	}
}

// IssueToken mints a signed token asserting userID as subject.
func (s *tokenService) IssueToken(ctx context.Context, userID string, purpose domain.TokenPurpose) (string, time.Time, error) {
	secret, expiry, err := s.secretAndExpiry(purpose)
	if err != nil {
		return "", time.Time{}, err
	}

	expiryTime := time.Now().Add(expiry)
	token, err := utils.GenerateJWT(userID, secret, expiry, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", purpose, err)
	}
	return token, expiryTime, nil
}

// VerifyToken validates signature and expiry against the purpose's secret and
// returns the token's subject.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string, purpose domain.TokenPurpose) (string, error) {
	secret, _, err := s.secretAndExpiry(purpose)
	if err != nil {
		return "", err
	}

	claims, err := utils.ParseAndValidateJWT(tokenString, secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrTokenInvalid
	}

	if claims.Subject == "" {
		// Signature checks out but the token asserts nobody.
		return "", apperrors.ErrValidation
	}
	return claims.Subject, nil
}
