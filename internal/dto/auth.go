package dto

// RegisterRequest carries the fields required to create an account.
// Username shares the constraint enforced by the storage layer: letters,
// digits, underscores and hyphens only.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns the freshly minted access token. The refresh token
// travels separately in an http-only cookie, never in the body.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// ForgotPasswordRequest carries the address to send a reset link to.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the replacement password. The reset token
// itself arrives as a path parameter.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// MessageResponse is the generic success body for operations with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}
