package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized matches any *Error carrying HTTP status 401.
var ErrUnauthorized = errors.New("unauthorized")

// Error describes a failed request. Exactly one of two situations produced it:
// the server answered with a non-2xx status (Status > 0, Message/Body may be
// set), or the request never completed (Err holds the transport failure).
type Error struct {
	Status  int
	Message string // structured {"message": ...} field, if the server sent one
	Body    string // raw response body, when it was not the structured shape
	Err     error  // transport-level failure, when no response arrived
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	case e.Body != "":
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Body)
	default:
		return fmt.Sprintf("server returned %d", e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUnauthorized) hold for 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == 401
}
