package errs

import "net/http"

// Validation builds a 400-class error. fields may be nil.
func Validation(message string, fields ...FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "VALIDATION_FAILED",
		Message: message,
		Fields:  fields,
	}
}

// Field is a shorthand for a Validation error on one field.
func Field(field, message string) *Error {
	return Validation("Validation failed", FieldError{Field: field, Error: message})
}

func NotFound(message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    codeFor(http.StatusNotFound),
		Message: message,
	}
}

func Conflict(code, message string) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    code,
		Message: message,
	}
}

func Unauthenticated(message string) *Error {
	return &Error{
		Kind:    KindUnauthenticated,
		Code:    codeFor(http.StatusUnauthorized),
		Message: message,
	}
}

func Forbidden(message string) *Error {
	return &Error{
		Kind:    KindForbidden,
		Code:    codeFor(http.StatusForbidden),
		Message: message,
	}
}

// Internal wraps err so it can travel up the stack. The message shown to the
// client is always the generic status text.
func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    codeFor(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Err:     err,
	}
}

// WithCode returns a copy of e with Code replaced.
func (e *Error) WithCode(code string) *Error {
	cp := *e
	cp.Code = code
	return &cp
}
