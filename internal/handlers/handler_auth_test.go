package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/core/services"
	"github.com/median-app/median-backend/internal/dto"
	"github.com/median-app/median-backend/internal/handlers"
	"github.com/median-app/median-backend/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
	RegisterFn       func(ctx context.Context, req dto.RegisterRequest) (*portssvc.TokenPair, error)
	LoginFn          func(ctx context.Context, req dto.LoginRequest) (*portssvc.TokenPair, error)
	LogoutFn         func(ctx context.Context, userID string) error
	RefreshFn        func(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error)
	ForgotPasswordFn func(ctx context.Context, email string) error
	ResetPasswordFn  func(ctx context.Context, token, newPassword string) error
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*portssvc.TokenPair, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	args := m.Called(ctx, req)
	var pair *portssvc.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*portssvc.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*portssvc.TokenPair, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	args := m.Called(ctx, req)
	var pair *portssvc.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*portssvc.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, refreshToken)
	}
	args := m.Called(ctx, refreshToken)
	var pair *portssvc.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*portssvc.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFn != nil {
		return m.ForgotPasswordFn(ctx, email)
	}
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFn != nil {
		return m.ResetPasswordFn(ctx, token, newPassword)
	}
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	cfg         *config.Config
	mockAuthSvc *MockAuthService
	tokenSvc    portssvc.TokenSvcFacade
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		IsProduction:               false,
		JWTIssuer:                  "median-backend-test",
		AccessTokenSecret:          "test-access-secret-that-is-long-enough",
		AccessTokenExpiryDuration:  5 * time.Minute,
		RefreshTokenSecret:         "test-refresh-secret-that-is-long-enough",
		RefreshTokenExpiryDuration: 168 * time.Hour,
		RefreshTokenCookieName:     "refreshToken",
		RefreshTokenCookiePath:     "/api/auth",
		ResetTokenSecret:           "test-reset-secret-that-is-long-enough",
		ResetTokenExpiryDuration:   time.Hour,
	}
	suite.mockAuthSvc = new(MockAuthService)
	suite.tokenSvc = services.NewTokenService(suite.cfg)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Auth:  suite.mockAuthSvc,
		Token: suite.tokenSvc,
	})
}

func (suite *AuthHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) refreshCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == suite.cfg.RefreshTokenCookieName {
			return c
		}
	}
	return nil
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	suite.mockAuthSvc.RegisterFn = func(ctx context.Context, req dto.RegisterRequest) (*portssvc.TokenPair, error) {
		suite.Equal("alice", req.Username)
		return &portssvc.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
	}

	w := suite.postJSON("/api/auth/register",
		`{"username":"alice","name":"Alice","email":"alice@example.com","password":"password123"}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access-token", resp.AccessToken)

	// The refresh token travels only in the cookie, scoped to the auth
	// routes and unreadable from script.
	suite.NotContains(w.Body.String(), "refresh-token")
	cookie := suite.refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Equal("refresh-token", cookie.Value)
	suite.True(cookie.HttpOnly)
	suite.Equal("/api/auth", cookie.Path)
	suite.Equal(http.SameSiteStrictMode, cookie.SameSite)
	suite.False(cookie.Secure) // not production in tests
}

func (suite *AuthHandlerTestSuite) TestRegister_MissingFields() {
	w := suite.postJSON("/api/auth/register", `{"username":"alice"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid registration data")
}

func (suite *AuthHandlerTestSuite) TestRegister_Conflicts() {
	suite.mockAuthSvc.RegisterFn = func(ctx context.Context, req dto.RegisterRequest) (*portssvc.TokenPair, error) {
		return nil, services.ErrEmailRegistered
	}
	w := suite.postJSON("/api/auth/register",
		`{"username":"alice","name":"Alice","email":"taken@example.com","password":"password123"}`)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "Email already registered")

	suite.mockAuthSvc.RegisterFn = func(ctx context.Context, req dto.RegisterRequest) (*portssvc.TokenPair, error) {
		return nil, services.ErrUsernameTaken
	}
	w = suite.postJSON("/api/auth/register",
		`{"username":"taken","name":"Alice","email":"alice@example.com","password":"password123"}`)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "Username already taken")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.mockAuthSvc.LoginFn = func(ctx context.Context, req dto.LoginRequest) (*portssvc.TokenPair, error) {
		return &portssvc.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
	}

	w := suite.postJSON("/api/auth/login", `{"email":"alice@example.com","password":"password123"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access-token", resp.AccessToken)
	suite.NotNil(suite.refreshCookie(w))
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockAuthSvc.LoginFn = func(ctx context.Context, req dto.LoginRequest) (*portssvc.TokenPair, error) {
		return nil, apperrors.ErrUnauthorized
	}

	w := suite.postJSON("/api/auth/login", `{"email":"alice@example.com","password":"wrongpass"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestLogout_Flow() {
	accessToken, _, err := suite.tokenSvc.IssueToken(context.Background(), "user-1", domain.TokenPurposeAccess)
	suite.Require().NoError(err)

	loggedOut := false
	suite.mockAuthSvc.LogoutFn = func(ctx context.Context, userID string) error {
		suite.Equal("user-1", userID)
		loggedOut = true
		return nil
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Logged out successfully")
	suite.True(loggedOut)

	// Logout does not revoke outstanding access tokens; the same token
	// still passes the gate until it expires.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogout_NoToken() {
	w := suite.postJSON("/api/auth/logout", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid token")
}

func (suite *AuthHandlerTestSuite) TestRefresh_Success() {
	suite.mockAuthSvc.RefreshFn = func(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
		suite.Equal("old-refresh", refreshToken)
		return &portssvc.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh"})
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new-access", resp.AccessToken)

	// Rotation: the cookie now carries the new refresh token.
	cookie := suite.refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Equal("new-refresh", cookie.Value)
}

func (suite *AuthHandlerTestSuite) TestRefresh_NoCookie() {
	w := suite.postJSON("/api/auth/refresh-token", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Unauthorized")
}

func (suite *AuthHandlerTestSuite) TestRefresh_Failures() {
	cases := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{services.ErrRefreshTokenExpired, http.StatusForbidden, "Refresh token expired"},
		{services.ErrRefreshTokenInvalid, http.StatusForbidden, "Invalid refresh token"},
		{apperrors.ErrValidation, http.StatusBadRequest, "Invalid token payload"},
	}
	for _, tc := range cases {
		suite.mockAuthSvc.RefreshFn = func(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
			return nil, tc.err
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh-token", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale"})
		suite.router.ServeHTTP(w, req)

		suite.Equal(tc.wantStatus, w.Code)
		suite.Contains(w.Body.String(), tc.wantBody)
	}
}

func (suite *AuthHandlerTestSuite) TestForgotPassword() {
	suite.mockAuthSvc.ForgotPasswordFn = func(ctx context.Context, email string) error {
		return nil
	}
	w := suite.postJSON("/api/auth/forgot-password", `{"email":"alice@example.com"}`)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Check your email for instructions")

	suite.mockAuthSvc.ForgotPasswordFn = func(ctx context.Context, email string) error {
		return apperrors.ErrNotFound
	}
	w = suite.postJSON("/api/auth/forgot-password", `{"email":"nobody@example.com"}`)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "User not found")

	w = suite.postJSON("/api/auth/forgot-password", `{"email":"not-an-email"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid email")
}

func (suite *AuthHandlerTestSuite) TestResetPassword() {
	suite.mockAuthSvc.ResetPasswordFn = func(ctx context.Context, token, newPassword string) error {
		suite.Equal("some-token", token)
		suite.Equal("newpassword456", newPassword)
		return nil
	}
	w := suite.postJSON("/api/auth/reset-password/some-token", `{"newPassword":"newpassword456"}`)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Password reset successfully")

	suite.mockAuthSvc.ResetPasswordFn = func(ctx context.Context, token, newPassword string) error {
		return services.ErrResetTokenExpired
	}
	w = suite.postJSON("/api/auth/reset-password/some-token", `{"newPassword":"newpassword456"}`)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Reset password token expired")

	w = suite.postJSON("/api/auth/reset-password/some-token", `{"newPassword":"short"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid reset password data")
}

func (suite *AuthHandlerTestSuite) TestVerifyEmail_NotImplemented() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-email/some-token", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotImplemented, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
