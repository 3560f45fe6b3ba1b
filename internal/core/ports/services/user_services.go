package services

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
	"github.com/median-app/median-backend/internal/dto"
)

// UserSvcFacade exposes profile and follow-graph operations.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	FollowUser(ctx context.Context, userID, targetID string) error
	UnfollowUser(ctx context.Context, userID, targetID string) error
	ListFollowers(ctx context.Context, userID string) ([]domain.User, error)
	ListFollowings(ctx context.Context, userID string) ([]domain.User, error)
}
