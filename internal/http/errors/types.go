package errors

import (
	"fmt"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/fault"
)

// AppError es la estructura estándar de error HTTP de la aplicación.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	HTTPStatus int    `json:"-"` // usado para el header, no se serializa
	Err        error  `json:"-"` // causa original, solo para logs
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail agrega detalle. Retorna una COPIA para no mutar los globales.
func (e *AppError) WithDetail(detail string) *AppError {
	newErr := *e
	newErr.Detail = detail
	return &newErr
}

// WithCause agrega la causa original. Retorna una COPIA.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// FromError convierte un error genérico en AppError. Faults tagueados se
// mapean por kind; cualquier otra cosa es un error interno.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	if fe := fault.As(err); fe != nil {
		switch fe.Kind {
		case fault.KindValidation:
			return ErrValidation.WithDetail(fe.Message)
		case fault.KindAuth:
			return ErrAuthRequired.WithDetail(fe.Message)
		case fault.KindRemote:
			return ErrRemote.WithDetail(fe.Message).WithCause(fe.Err)
		case fault.KindConfiguration:
			return ErrInternalServerError.WithCause(fe)
		}
	}
	return ErrInternalServerError.WithCause(err)
}

// Errores predefinidos.
var (
	ErrValidation = &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "The request input failed validation.",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "The request body is not valid JSON.",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "The request is malformed or missing parameters.",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrBodyTooLarge = &AppError{
		Code:       "BODY_TOO_LARGE",
		Message:    "The request body exceeds the allowed size.",
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}

	ErrAuthRequired = &AppError{
		Code:       "AUTH_REQUIRED",
		Message:    "Not authenticated.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrInvalidCredentials = &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "The provided credentials are invalid.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrEmailInUse = &AppError{
		Code:       "EMAIL_IN_USE",
		Message:    "The email address is already registered.",
		HTTPStatus: http.StatusConflict,
	}

	ErrRouteNotFound = &AppError{
		Code:       "ROUTE_NOT_FOUND",
		Message:    "The requested route does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	ErrMethodNotAllowed = &AppError{
		Code:       "METHOD_NOT_ALLOWED",
		Message:    "The HTTP method is not allowed for this resource.",
		HTTPStatus: http.StatusMethodNotAllowed,
	}

	ErrRemote = &AppError{
		Code:       "REMOTE_ERROR",
		Message:    "A backing service call failed.",
		HTTPStatus: http.StatusBadGateway,
	}

	ErrInternalServerError = &AppError{
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    "An internal error occurred.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
