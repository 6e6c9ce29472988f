package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - problems with the request or with the data the provider returned
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeParse

	// Infrastructure errors - external systems and services
	ErrorTypeExternalAPI
	ErrorTypeCache

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeParse:
		return "PARSE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters and tests
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	ParseError         = ErrorTypeParse
	ExternalAPIError   = ErrorTypeExternalAPI
	CacheError         = ErrorTypeCache
	ConfigurationError = ErrorTypeConfiguration
)

// User-facing messages for forecast failures
const (
	MessageCityNotFound = "city not found"
	MessageFetchFailed  = "could not retrieve weather"
	MessageUnpackFailed = "could not unpack data"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// UserMessage is the short text shown to dashboard users. Lookup, fetch and
// parse failures collapse to fixed phrases; other kinds expose Message.
func (e *AppError) UserMessage() string {
	switch e.Type {
	case ErrorTypeNotFound:
		return MessageCityNotFound
	case ErrorTypeExternalAPI:
		return MessageFetchFailed
	case ErrorTypeParse:
		return MessageUnpackFailed
	default:
		return e.Message
	}
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

// NewLookupError reports that a city could not be resolved to a provider location
func NewLookupError(message string, cause error) *AppError {
	return Wrap(NotFoundError, message, cause)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewParseError(message string, cause error) *AppError {
	return Wrap(ParseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(CacheError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// UserMessage returns the user-facing text for any error
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.UserMessage()
	}
	return err.Error()
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsParseError(err error) bool {
	return TypeOf(err) == ParseError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
