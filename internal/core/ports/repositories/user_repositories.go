package repositories

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
)

// UserRepository is the credential-store contract plus the profile and
// follow-graph operations backed by the users collection.
//
// Lookup methods return apperrors.ErrNotFound when no document matches.
// CreateUser returns apperrors.ErrDuplicate when a unique index (email,
// username, refreshToken) rejects the insert.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error)

	UpdateProfile(ctx context.Context, userID string, name, bio, avatar *string) error
	DeleteUser(ctx context.Context, userID string) error

	// SetRefreshToken overwrites the user's stored refresh token. A nil token
	// clears it (logout). The previous token is invalidated by the overwrite.
	SetRefreshToken(ctx context.Context, userID string, token *string) error
	SetPasswordHash(ctx context.Context, userID string, passwordHash string) error

	// Follow adds targetID to userID's followings and userID to targetID's
	// followers. Unfollow reverses both.
	Follow(ctx context.Context, userID, targetID string) error
	Unfollow(ctx context.Context, userID, targetID string) error
}
