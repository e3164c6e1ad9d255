// Package apperr defines the error taxonomy for marketplace calls.
package apperr

import (
	"errors"
	"fmt"
)

const (
	// CodeRemoteRejected -- маркетплейс отклонил сам запрос (4xx).
	CodeRemoteRejected = "REMOTE_REJECTED"
	// CodeRemoteUnavailable -- транспортная ошибка или 5xx.
	CodeRemoteUnavailable = "REMOTE_UNAVAILABLE"
)

// RemoteError is the standard error type for marketplace API failures.
type RemoteError struct {
	Code       string
	Endpoint   string
	HTTPStatus int
	// Body keeps the marketplace response text for RemoteRejected so the
	// operator message can quote it.
	Body string
	Err  error
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Code, e.Endpoint, e.HTTPStatus, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Endpoint, e.HTTPStatus)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func RemoteRejected(endpoint string, status int, body string) *RemoteError {
	return &RemoteError{
		Code:       CodeRemoteRejected,
		Endpoint:   endpoint,
		HTTPStatus: status,
		Body:       body,
	}
}

func RemoteUnavailable(endpoint string, status int, err error) *RemoteError {
	return &RemoteError{
		Code:       CodeRemoteUnavailable,
		Endpoint:   endpoint,
		HTTPStatus: status,
		Err:        err,
	}
}

// IsRejected reports whether err is a RemoteRejected error.
func IsRejected(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Code == CodeRemoteRejected
}

// IsUnavailable reports whether err is a RemoteUnavailable error.
func IsUnavailable(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Code == CodeRemoteUnavailable
}
