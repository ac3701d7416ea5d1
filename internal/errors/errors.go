package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned on any login mismatch. It is
	// deliberately generic so callers cannot tell which field failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrProfileExists is returned when the user already has a profile.
	ErrProfileExists = errors.New("user already has a profile, use PUT to update")
	// ErrProfileNotFound is returned when a profile lookup by id fails.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrImageNotFound is returned when a gallery image is not found.
	ErrImageNotFound = errors.New("image not found")
	// ErrInvalidImageType is returned when the upload MIME type is not allowed.
	ErrInvalidImageType = errors.New("only image files (JPEG, PNG, WebP, GIF) are allowed")
	// ErrImageTooLarge is returned when the upload exceeds the size limit.
	ErrImageTooLarge = errors.New("file is too large, maximum is 5MB")
	// ErrEmptyMessage is returned when a chat message has no content.
	ErrEmptyMessage = errors.New("message content is empty")
	// ErrSelfMessage is returned when sending a message to oneself.
	ErrSelfMessage = errors.New("cannot send a message to yourself")
	// ErrInvalidSession is returned when a session token is unknown or revoked.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation-style
// rejections are 400, the generic credential failure is 401, lookups are 404,
// anything unrecognized collapses to a fixed 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrProfileExists:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PROFILE_EXISTS")
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case ErrImageNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "IMAGE_NOT_FOUND")
	case ErrInvalidImageType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_IMAGE_TYPE")
	case ErrImageTooLarge:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "IMAGE_TOO_LARGE")
	case ErrEmptyMessage:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_MESSAGE")
	case ErrSelfMessage:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_MESSAGE")
	case ErrInvalidSession:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
