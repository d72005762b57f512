package errors

import (
	"errors"
	"net/http"
)

// HTTPError is the JSON shape written to API clients for any failure.
type HTTPError struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ToHTTPError converts any error into a status code and a response body.
// Unknown error types are reported as internal without leaking their text.
func ToHTTPError(err error) (int, *HTTPError) {
	if err == nil {
		return http.StatusOK, nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code.HTTPStatus(), &HTTPError{
			Code:    customErr.Code,
			Message: customErr.Message,
			Meta:    customErr.Meta,
		}
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ToHTTPError(validationErr.ToError())
	}

	return http.StatusInternalServerError, &HTTPError{
		Code:    CodeInternal,
		Message: "internal error",
	}
}
