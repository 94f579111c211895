package errors

import (
	"net/http"

	"connect/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so sentinel
// comparisons still hold for copies derived via WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// NewValidationError creates a 400 error carrying a caller-facing message.
func NewValidationError(message, details string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, details)
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"passwords do not match",
		"",
	)

	ErrPasswordPolicy = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_POLICY",
		"password does not meet the required policy",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid refresh token",
		"",
	)

	ErrRefreshTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REVOKED",
		"refresh token not found or revoked",
		"",
	)

	ErrTokenUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"email already registered",
		"",
	)

	// Friendship-related errors
	ErrFriendRequestToSelf = NewBaseError(
		http.StatusBadRequest,
		"FRIEND_REQUEST_TO_SELF",
		"cannot send friend request to yourself",
		"",
	)

	ErrAlreadyFriends = NewBaseError(
		http.StatusConflict,
		"ALREADY_FRIENDS",
		"already friends",
		"",
	)

	ErrFriendRequestExists = NewBaseError(
		http.StatusConflict,
		"FRIEND_REQUEST_EXISTS",
		"friend request already sent",
		"",
	)

	ErrFriendRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"FRIEND_REQUEST_NOT_FOUND",
		"friend request not found",
		"",
	)

	// Group-related errors
	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"group not found",
		"",
	)

	ErrGroupMemberExists = NewBaseError(
		http.StatusConflict,
		"GROUP_MEMBER_EXISTS",
		"user is already a member of this group",
		"",
	)

	// Post-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"post not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"comment not found",
		"",
	)

	// Messaging-related errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"conversation not found",
		"",
	)

	ErrNotConversationMember = NewBaseError(
		http.StatusForbidden,
		"NOT_CONVERSATION_MEMBER",
		"you are not a participant of this conversation",
		"",
	)

	ErrMessageToSelf = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_TO_SELF",
		"cannot send a message to yourself",
		"",
	)

	// Link and campaign-related errors
	ErrLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_NOT_FOUND",
		"link not found",
		"",
	)

	ErrShortCodeExists = NewBaseError(
		http.StatusConflict,
		"SHORT_CODE_EXISTS",
		"short code already exists",
		"",
	)

	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"campaign not found",
		"",
	)

	// Upload-related errors
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"uploaded file exceeds the size limit",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"unsupported file type",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
