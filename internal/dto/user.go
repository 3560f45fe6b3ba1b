package dto

import (
	"time"

	"github.com/median-app/median-backend/internal/core/domain"
)

// UpdateUserRequest defines the data allowed for updating a profile.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// UserResponse is the public shape of a user. Credential material never
// appears here.
type UserResponse struct {
	UserID         string    `json:"userID"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	FollowerCount  int       `json:"followerCount"`
	FollowingCount int       `json:"followingCount"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		Username:       user.Username,
		Name:           user.Name,
		Email:          user.Email,
		Bio:            user.Bio,
		Avatar:         user.Avatar,
		CreatedAt:      user.CreatedAt,
		FollowerCount:  user.FollowerCount(),
		FollowingCount: user.FollowingCount(),
	}
}

// ListUsersResponse wraps a list of user profiles (followers/followings).
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
