package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// UserIDFromContext reads the authenticated user ID set by the auth middleware
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return id, nil
}

// userFromContext reads the authenticated user set by the auth middleware
func userFromContext(c echo.Context) (*entities.User, error) {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return nil, errors.ErrUnauthenticated()
	}
	return user, nil
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleSuccessWithStatus(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response using provided logger
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleSuccessWithStatus(logger, c, http.StatusCreated, data)
}

func handleSuccessWithStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    "OK",
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	// Domain errors carry no HTTP shape; promote them first.
	err = mapDomainError(err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapDomainError promotes well-known domain errors to AppError so the
// envelope carries the right HTTP status and code.
func mapDomainError(err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case stdErrors.Is(err, entities.ErrUserAlreadyExists):
		return errors.ErrUserAlreadyExists("")
	case stdErrors.Is(err, entities.ErrInvalidPassword):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, entities.ErrSessionNotFound),
		stdErrors.Is(err, entities.ErrSessionExpired):
		return errors.ErrInvalidRefreshToken()
	case stdErrors.Is(err, entities.ErrInvalidToken):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, entities.ErrOAuthStateMismatch),
		stdErrors.Is(err, entities.ErrOAuthCodeInvalid):
		return errors.ErrOAuthFailed("google", err)
	case stdErrors.Is(err, entities.ErrGoogleNotLinked):
		return errors.ErrGoogleNotConnected()
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound("")
	case stdErrors.Is(err, entities.ErrSummaryNotFound):
		return errors.ErrSummaryNotFound("")
	case stdErrors.Is(err, entities.ErrTranscriptNotFound):
		return errors.ErrTranscriptNotFound("")
	case stdErrors.Is(err, entities.ErrEventNotFound):
		return errors.ErrEventNotFound("")
	case stdErrors.Is(err, entities.ErrInvalidEventTitle),
		stdErrors.Is(err, entities.ErrInvalidEventTime):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, entities.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, entities.ErrForbidden):
		return errors.ErrForbidden("resource access")
	case stdErrors.Is(err, entities.ErrInvalidRequest):
		return errors.ErrInvalidArgument("invalid request")
	default:
		return err
	}
}
