package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrAuthNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_NOT_FOUND",
		"No sign-in method found for this account",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too weak",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	ErrOAuthNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"OAUTH_NOT_CONFIGURED",
		"Google sign-in is not configured",
		"",
	)

	// Profile errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION",
		"You do not have access to this device",
		"",
	)

	ErrInvalidPowerRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POWER_RATING",
		"Power rating must be a non-negative number",
		"",
	)

	ErrDeviceControlNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_CONTROL_NOT_FOUND",
		"Device control settings not found",
		"",
	)

	ErrCapabilityNotSupported = NewBaseError(
		http.StatusUnprocessableEntity,
		"CAPABILITY_NOT_SUPPORTED",
		"The device does not support this operation",
		"",
	)

	// Connection errors
	ErrConnectionNotFound = NewBaseError(
		http.StatusNotFound,
		"CONNECTION_NOT_FOUND",
		"Consumer connection not found",
		"",
	)

	ErrConnectionOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CONNECTION_OWNERSHIP_VIOLATION",
		"You do not have access to this connection",
		"",
	)

	ErrConnectionAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONNECTION_ALREADY_EXISTS",
		"This consumer number is already registered",
		"",
	)

	// Automation errors
	ErrRuleNotFound = NewBaseError(
		http.StatusNotFound,
		"RULE_NOT_FOUND",
		"Automation rule not found",
		"",
	)

	ErrRuleOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"RULE_OWNERSHIP_VIOLATION",
		"You do not have access to this rule",
		"",
	)

	ErrScheduleNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_NOT_FOUND",
		"Schedule not found",
		"",
	)

	ErrScheduleOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"SCHEDULE_OWNERSHIP_VIOLATION",
		"You do not have access to this schedule",
		"",
	)

	ErrInvalidSchedule = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SCHEDULE",
		"Schedule definition is invalid",
		"",
	)

	ErrUnknownActionType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ACTION_TYPE",
		"Unknown action type",
		"",
	)

	ErrInvalidActionParameters = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION_PARAMETERS",
		"Action parameters are invalid",
		"",
	)

	// Record errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrGoalNotFound = NewBaseError(
		http.StatusNotFound,
		"GOAL_NOT_FOUND",
		"Goal not found",
		"",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"Alert not found",
		"",
	)

	ErrRecommendationNotFound = NewBaseError(
		http.StatusNotFound,
		"RECOMMENDATION_NOT_FOUND",
		"Recommendation not found",
		"",
	)

	ErrBillNotFound = NewBaseError(
		http.StatusNotFound,
		"BILL_NOT_FOUND",
		"Bill not found",
		"",
	)

	ErrRecordOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"RECORD_OWNERSHIP_VIOLATION",
		"You do not have access to this record",
		"",
	)

	// Analytics and detection errors
	ErrInvalidTimeRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_RANGE",
		"Time range must be one of 24h, 7d, 30d, 90d",
		"",
	)

	ErrInvalidPhoto = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHOTO",
		"Photo must be a non-empty JPEG, PNG or WebP image",
		"",
	)

	ErrDetectionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DETECTION_UNAVAILABLE",
		"Device detection is not configured",
		"",
	)

	ErrDetectionFailed = NewBaseError(
		http.StatusBadGateway,
		"DETECTION_FAILED",
		"Device detection failed",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
