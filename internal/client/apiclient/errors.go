package apiclient

import (
	"errors"
)

// GenericErrorMessage is shown whenever the backend gives no usable detail.
const GenericErrorMessage = "Something went wrong. Please try again later."

var ErrEmptyProductName = errors.New("product name is required")

// RemoteError is the single error kind for failed backend interactions.
// Status is the HTTP status, or 0 when no response was received.
type RemoteError struct {
	Status  int
	Message string
	cause   error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

// GenericError wraps cause in a RemoteError carrying GenericErrorMessage.
func GenericError(status int, cause error) *RemoteError {
	return &RemoteError{Status: status, Message: GenericErrorMessage, cause: cause}
}

// IsRemote reports whether err is (or wraps) a *RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
