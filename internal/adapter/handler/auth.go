package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/auth"
	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a local account
// POST /v1/auth/register
func (h *Auth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	resp, err := h.authService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, resp)
}

// Login authenticates with email and password
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	resp, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// GoogleLogin handles the initial Google OAuth login request
// GET /v1/auth/google/login
func (h *Auth) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	authURL, err := h.authService.GetGoogleAuthURL(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// Redirect to Google OAuth
	return c.Redirect(http.StatusTemporaryRedirect, authURL.URL)
}

// GoogleCallback handles the OAuth callback from Google
// GET /v1/auth/google/callback
func (h *Auth) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing code or state parameter"))
	}

	resp, err := h.authService.HandleGoogleCallback(ctx, &auth.GoogleCallbackRequest{
		Code:  code,
		State: state,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// RefreshToken refreshes the access token
// POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RefreshTokenRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing refresh token"))
	}

	resp, err := h.authService.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// Logout revokes the session behind a refresh token
// POST /v1/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.LogoutRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing refresh token"))
	}

	if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Logged out successfully"})
}

// LogoutAll revokes every session of the authenticated user
// POST /v1/auth/logout-all
func (h *Auth) LogoutAll(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.authService.LogoutAll(ctx, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "All sessions revoked"})
}

// Me returns the current user information
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, err := userFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, user.ToPublic())
}

// GoogleStatus reports whether the user's Google account is linked
// GET /v1/auth/google/status
func (h *Auth) GoogleStatus(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	connected, err := h.authService.GoogleStatus(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, authDTO.GoogleStatusResponse{Connected: connected})
}
