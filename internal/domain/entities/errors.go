package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPassword   = errors.New("invalid password")

	// OAuth errors
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrOAuthCodeInvalid   = errors.New("oauth code invalid")
	ErrGoogleNotLinked    = errors.New("google account not linked")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidToken    = errors.New("invalid token")

	// Meeting errors
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrSummaryNotFound    = errors.New("summary not found")
	ErrTranscriptNotFound = errors.New("transcript not found")

	// Event errors
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidEventTitle = errors.New("invalid event title")
	ErrInvalidEventTime  = errors.New("invalid event time")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
