package errs

import (
	"net/http"
)

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Used when a route parameter points at a document that does not exist
// (genre detail, update form, book detail) and for unknown routes.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note: the message is the generic status text, not the real internal error
// message. The underlying failure belongs in the logs, not on the page.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
