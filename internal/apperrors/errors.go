package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller presented no credential or an invalid one.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that a well-formed credential failed a secondary check,
// such as a rotated-away refresh token or an expired reset token.
var ErrForbidden = errors.New("forbidden")

// ErrTokenExpired indicates that a token's encoded expiry has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a token whose signature or payload did not verify.
var ErrTokenInvalid = errors.New("token invalid")
