package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/dto"
	"github.com/median-app/median-backend/internal/platform/config"
	"github.com/median-app/median-backend/internal/utils"
)

// Registration conflicts stay distinguishable (the API reports which field
// collided), while login failures are uniform to avoid user enumeration.
var (
	ErrEmailRegistered = fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	ErrUsernameTaken   = fmt.Errorf("username already taken: %w", apperrors.ErrDuplicate)

	ErrRefreshTokenExpired = fmt.Errorf("refresh token expired: %w", apperrors.ErrForbidden)
	ErrRefreshTokenInvalid = fmt.Errorf("invalid refresh token: %w", apperrors.ErrForbidden)
	ErrResetTokenExpired   = fmt.Errorf("reset password token expired: %w", apperrors.ErrForbidden)
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// authService orchestrates the session lifecycle over the credential store
// and the token issuer.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
	tokenSvc portssvc.TokenSvcFacade
	mailSvc  portssvc.MailSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, tokenSvc portssvc.TokenSvcFacade, mailSvc portssvc.MailSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		mailSvc:  mailSvc,
	}
}

// issuePair mints an access/refresh pair for the subject and persists the
// refresh token on the user record, invalidating any prior one by overwrite.
func (s *authService) issuePair(ctx context.Context, userID string) (*portssvc.TokenPair, error) {
	accessToken, _, err := s.tokenSvc.IssueToken(ctx, userID, domain.TokenPurposeAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokenSvc.IssueToken(ctx, userID, domain.TokenPurposeRefresh)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetRefreshToken(ctx, userID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return &portssvc.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*portssvc.TokenPair, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, fmt.Errorf("username can only contain letters, numbers, underscores and hyphens: %w", apperrors.ErrValidation)
	}

	// Pre-checks give the caller a field-specific conflict. The unique
	// indexes behind CreateUser remain the source of truth under races.
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailRegistered
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, domain.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race between pre-check and insert. Re-resolve which
			// field collided for the response.
			if _, lookupErr := s.userRepo.FindUserByEmail(ctx, req.Email); lookupErr == nil {
				return nil, ErrEmailRegistered
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issuePair(ctx, user.UserID)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*portssvc.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.issuePair(ctx, user.UserID)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	// Only the refresh token is revoked. Outstanding access tokens stay
	// valid until natural expiry.
	return s.userRepo.SetRefreshToken(ctx, userID, nil)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
	userID, err := s.tokenSvc.VerifyToken(ctx, refreshToken, domain.TokenPurposeRefresh)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return nil, err
		case errors.Is(err, apperrors.ErrTokenExpired):
			return nil, ErrRefreshTokenExpired
		default:
			return nil, ErrRefreshTokenInvalid
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Rotation makes refresh tokens single use: a verified token that is no
	// longer the stored one has been superseded.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, ErrRefreshTokenInvalid
	}

	return s.issuePair(ctx, user.UserID)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	resetToken, _, err := s.tokenSvc.IssueToken(ctx, user.UserID, domain.TokenPurposeReset)
	if err != nil {
		return err
	}

	// The reset token is never persisted; its validity is signature + expiry.
	resetLink := fmt.Sprintf("%s/reset-password/%s", s.cfg.FrontendBaseURL, resetToken)
	body := fmt.Sprintf("Click the following link to reset your password: %s", resetLink)
	if err := s.mailSvc.SendMail(ctx, user.Email, "Password Reset", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokenSvc.VerifyToken(ctx, token, domain.TokenPurposeReset)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTokenExpired):
			return ErrResetTokenExpired
		default:
			return fmt.Errorf("invalid token payload: %w", apperrors.ErrValidation)
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.SetPasswordHash(ctx, user.UserID, passwordHash)
}
