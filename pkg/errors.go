package pkg

import "fmt"

// AppError is the error shape handlers return to clients. Err is kept for
// logs only and never rendered; Details is rendered verbatim when set.
type AppError struct {
	Code       string
	Message    string
	Err        error
	Details    any
	HTTPStatus int
}

// HTTPError is the JSON body of a failed request.
type HTTPError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// HTTPResultError is HTTPError for endpoints whose success body carries
// "success": true, so callers can branch on a single field.
type HTTPResultError struct {
	Success bool `json:"success"`
	HTTPError
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Code: e.Code, Details: e.Details}
}

func (e *AppError) ToHTTPResultError() HTTPResultError {
	return HTTPResultError{Success: false, HTTPError: e.ToHTTPError()}
}
