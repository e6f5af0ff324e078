package errors

// ErrorCode identifies an error category in API responses and logs.
type ErrorCode string

const (
	ErrorCode_INTERNAL          ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT  ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND         ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS    ErrorCode = "ALREADY_EXISTS"
	ErrorCode_PERMISSION_DENIED ErrorCode = "PERMISSION_DENIED"
	ErrorCode_UNAUTHENTICATED   ErrorCode = "UNAUTHENTICATED"
	ErrorCode_FORBIDDEN         ErrorCode = "FORBIDDEN"

	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = "AUTH_USER_NOT_FOUND"
	ErrorCode_AUTH_USER_ALREADY_EXISTS   ErrorCode = "AUTH_USER_ALREADY_EXISTS"
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = "AUTH_INVALID_REFRESH_TOKEN"
	ErrorCode_AUTH_OAUTH_FAILED          ErrorCode = "AUTH_OAUTH_FAILED"

	ErrorCode_MEETING_NOT_FOUND    ErrorCode = "MEETING_NOT_FOUND"
	ErrorCode_SUMMARY_NOT_FOUND    ErrorCode = "SUMMARY_NOT_FOUND"
	ErrorCode_TRANSCRIPT_NOT_FOUND ErrorCode = "TRANSCRIPT_NOT_FOUND"
	ErrorCode_EVENT_NOT_FOUND      ErrorCode = "EVENT_NOT_FOUND"

	ErrorCode_GOOGLE_NOT_CONNECTED  ErrorCode = "GOOGLE_NOT_CONNECTED"
	ErrorCode_GOOGLE_TOKEN_EXPIRED  ErrorCode = "GOOGLE_TOKEN_EXPIRED"
	ErrorCode_GOOGLE_API_FAILED     ErrorCode = "GOOGLE_API_FAILED"
	ErrorCode_CALENDAR_SYNC_FAILED  ErrorCode = "CALENDAR_SYNC_FAILED"
	ErrorCode_DRIVE_BACKFILL_FAILED ErrorCode = "DRIVE_BACKFILL_FAILED"

	ErrorCode_EMAIL_SEND_FAILED ErrorCode = "EMAIL_SEND_FAILED"

	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = "INTEGRATION_STORAGE_FAILED"
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = "INTEGRATION_CACHE_FAILED"
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = "INTEGRATION_EXTERNAL_API_FAILED"

	ErrorCode_DB_CONNECTION_FAILED   ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED        ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_DB_TRANSACTION_FAILED  ErrorCode = "DB_TRANSACTION_FAILED"
	ErrorCode_DB_CONSTRAINT_VIOLATED ErrorCode = "DB_CONSTRAINT_VIOLATED"

	ErrorCode_INVALID_PAYLOAD ErrorCode = "INVALID_PAYLOAD"
)

func (c ErrorCode) String() string {
	return string(c)
}
