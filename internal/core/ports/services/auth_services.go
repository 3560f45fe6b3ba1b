package services

import (
	"context"
	"time"

	"github.com/median-app/median-backend/internal/core/domain"
	"github.com/median-app/median-backend/internal/dto"
)

// TokenSvcFacade mints and verifies signed tokens. Each purpose has its own
// secret and lifetime; a token minted for one purpose never verifies against
// another's secret. Pure function of input and configuration.
type TokenSvcFacade interface {
	// IssueToken mints a token asserting userID as subject and returns the
	// signed string with its expiry time.
	IssueToken(ctx context.Context, userID string, purpose domain.TokenPurpose) (string, time.Time, error)
	// VerifyToken validates signature and expiry and returns the subject ID.
	// Fails with apperrors.ErrTokenExpired when past expiry and
	// apperrors.ErrTokenInvalid on any signature or payload failure.
	VerifyToken(ctx context.Context, tokenString string, purpose domain.TokenPurpose) (string, error)
}

// TokenPair is an access/refresh pair issued on register, login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade orchestrates the session lifecycle: register, login, refresh
// rotation, logout, and the stateless password-reset path.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*TokenPair, error)
	Login(ctx context.Context, req dto.LoginRequest) (*TokenPair, error)
	// Logout clears the stored refresh token. Outstanding access tokens stay
	// valid until their natural expiry; there is no revocation list.
	Logout(ctx context.Context, userID string) error
	// Refresh validates the cookie-borne refresh token against the subject's
	// currently stored one and rotates it, returning a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
