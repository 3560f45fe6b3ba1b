package services

import (
	"context"
	"fmt"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/dto"
)

// ErrAlreadyFollowing is returned when a follow/unfollow request does not
// change the graph.
var ErrAlreadyFollowing = fmt.Errorf("already following this user: %w", apperrors.ErrValidation)

// ErrNotFollowing is the unfollow counterpart of ErrAlreadyFollowing.
var ErrNotFollowing = fmt.Errorf("not following this user: %w", apperrors.ErrValidation)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Bio, req.Avatar); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *userService) FollowUser(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return fmt.Errorf("cannot follow yourself: %w", apperrors.ErrValidation)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetID); err != nil {
		return err
	}
	if user.IsFollowing(targetID) {
		return ErrAlreadyFollowing
	}
	return s.userRepo.Follow(ctx, userID, targetID)
}

func (s *userService) UnfollowUser(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return fmt.Errorf("cannot unfollow yourself: %w", apperrors.ErrValidation)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetID); err != nil {
		return err
	}
	if !user.IsFollowing(targetID) {
		return ErrNotFollowing
	}
	return s.userRepo.Unfollow(ctx, userID, targetID)
}

func (s *userService) ListFollowers(ctx context.Context, userID string) ([]domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Followers) == 0 {
		return []domain.User{}, nil
	}
	return s.userRepo.FindUsersByIDs(ctx, user.Followers)
}

func (s *userService) ListFollowings(ctx context.Context, userID string) ([]domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Followings) == 0 {
		return []domain.User{}, nil
	}
	return s.userRepo.FindUsersByIDs(ctx, user.Followings)
}
