package domain

import "time"

// User represents a member of the platform in the domain.
// PasswordHash and RefreshToken are credential material and are never
// serialized into API responses.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Bio          string `json:"bio,omitempty"`
	Avatar       string `json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// RefreshToken is the single currently valid refresh token for this user.
	// Empty when the user is logged out. Issuing a new one overwrites it.
	RefreshToken string `json:"-"`

	Followers  []string `json:"followers"`
	Followings []string `json:"followings"`
}

// FollowerCount returns the number of users following this user.
func (u *User) FollowerCount() int {
	return len(u.Followers)
}

// FollowingCount returns the number of users this user follows.
func (u *User) FollowingCount() int {
	return len(u.Followings)
}

// IsFollowing reports whether the user already follows the given user ID.
func (u *User) IsFollowing(userID string) bool {
	for _, id := range u.Followings {
		if id == userID {
			return true
		}
	}
	return false
}
