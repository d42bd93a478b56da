package inspect

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of a failed inspection
type Code string

const (
	CodeInvalidURL    Code = "INVALID_URL"
	CodeNotFound      Code = "NOT_FOUND"
	CodeFetchFailed   Code = "FETCH_FAILED"
	CodeParsingFailed Code = "PARSING_FAILED"
)

const (
	msgInvalidURL  = "The URL is not a valid or supported Instagram post or reel URL."
	msgNotFound    = "The post could not be found."
	msgFetchFailed = "The post page could not be retrieved."
	msgNoMetadata  = "The post metadata could not be read."
	msgNoUploadAt  = "The upload time could not be found."
)

// Error is a classified pipeline failure
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// asError returns the pipeline error in err's chain. Unclassified errors
// are reported as fetch failures.
func asError(err error) *Error {
	var ie *Error
	if errors.As(err, &ie) {
		return ie
	}
	return newError(CodeFetchFailed, msgFetchFailed, err)
}

// HTTPStatus maps a code to the status reported to callers
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidURL:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeParsingFailed:
		return http.StatusUnprocessableEntity
	case CodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
