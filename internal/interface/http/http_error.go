package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/faq-service/pkg/errors"
)

const (
	msgInternal     = "something went wrong"
	msgUnauthorized = "authentication required"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: msgInternal,
		Err:     err,
	}
}

// domainError maps an AppError code onto a status and a client-facing code.
// Server-side failures keep their cause for logging but expose only a
// generic message.
func domainError(err error) *HTTPError {
	message := apperrors.MessageOf(err)
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, "invalid_request", message, err)
	case apperrors.CodeEmailExists:
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeEmailExists, message, err)
	case apperrors.CodeInvalidCredentials:
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidCredentials, message, err)
	case apperrors.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, apperrors.CodeNotFound, message, err)
	case apperrors.CodeNotOwner:
		return NewHTTPError(http.StatusUnauthorized, apperrors.CodeNotOwner, message, err)
	case apperrors.CodeInvalidToken:
		return unauthorizedError(err)
	case apperrors.CodeTranslation:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeTranslation, "failed to translate faq", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", msgInternal, err)
	}
}

func unauthorizedError(err error) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "unauthorized", msgUnauthorized, err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
