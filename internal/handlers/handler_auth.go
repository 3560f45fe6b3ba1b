package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/median-app/median-backend/internal/apperrors"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/core/services"
	"github.com/median-app/median-backend/internal/dto"
	"github.com/median-app/median-backend/internal/middleware"
	"github.com/median-app/median-backend/internal/platform/config"
)

// ErrorResponse is the failure body for all handlers: a human-readable
// message and nothing else.
type ErrorResponse struct {
	Message string `json:"message"`
}

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, svc *portssvc.ServiceContainer) {
	h := newAuthHandler(svc.Auth, cfg)

	// Credential-guessing endpoints get 5 attempts per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/logout", middleware.AuthMiddleware(svc.Token), h.logout)
		auth.POST("/refresh-token", h.refreshToken)
		auth.POST("/forgot-password", limitMiddleware, h.forgotPassword)
		auth.POST("/reset-password/:token", h.resetPassword)
		auth.GET("/verify-email/:token", h.verifyEmail)
	}
}

// setRefreshCookie delivers the refresh token in a scoped, http-only,
// same-site-strict cookie. Secure is set in production only.
func (h *authHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		token,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

// register godoc
// @Summary Register a new user
// @Description Creates an account and starts a session. The refresh token is
// @Description delivered in an http-only cookie; only the access token is in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email or username already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid registration data"})
		return
	}

	pair, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailRegistered):
			c.JSON(http.StatusConflict, ErrorResponse{Message: "Email already registered"})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already taken"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid registration data"})
		default:
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to register user"})
		}
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusCreated, dto.AuthResponse{AccessToken: pair.AccessToken})
}

// login godoc
// @Summary Log in a user
// @Description Authenticates by email and password and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid login data"})
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		// Unknown email and wrong password produce identical bodies so the
		// response shape cannot be used to enumerate accounts.
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid email or password"})
			return
		}
		logger.Error("Failed to log in user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to log in"})
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.AuthResponse{AccessToken: pair.AccessToken})
}

// logout godoc
// @Summary Log out a user
// @Description Clears the stored refresh token. Outstanding access tokens
// @Description remain valid until their natural expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
			return
		}
		logger.Error("Failed to log out user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// refreshToken godoc
// @Summary Refresh an access token
// @Description Exchanges the cookie-borne refresh token for a new pair.
// @Description Rotation makes refresh tokens single use.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid token payload"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid token payload"})
		case errors.Is(err, services.ErrRefreshTokenExpired):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "Refresh token expired"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "Invalid refresh token"})
		default:
			logger.Error("Failed to refresh token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to refresh token"})
		}
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.AuthResponse{AccessToken: pair.AccessToken})
}

// forgotPassword godoc
// @Summary Send a password reset email
// @Description Issues a reset token and mails a reset link. The token is not
// @Description persisted; validity is its signature and expiry alone.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Mail delivery failed"
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid email"})
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
			return
		}
		logger.Error("Failed to send reset email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Error sending email"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Check your email for instructions on resetting your password"})
}

// resetPassword godoc
// @Summary Reset a user's password
// @Description Verifies the reset token from the path and stores a new
// @Description password hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param reset body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Reset password token expired"
// @Failure 404 {object} ErrorResponse
// @Router /auth/reset-password/{token} [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token := c.Param("token")
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || token == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid reset password data"})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrResetTokenExpired):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "Reset password token expired"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid token payload"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
		default:
			logger.Error("Failed to reset password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password reset successfully"})
}

// verifyEmail is declared in the route table but intentionally unimplemented.
func (h *authHandler) verifyEmail(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, ErrorResponse{Message: "Email verification is not implemented"})
}
