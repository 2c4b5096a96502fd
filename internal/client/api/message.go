package api

import "errors"

// FallbackMessage is returned when a failure carries no usable text at all.
const FallbackMessage = "Unexpected error occurred."

// requestFailedMessage covers a response error that had neither a structured
// message nor a body.
const requestFailedMessage = "Request failed. Please try again."

// Message reduces any failure to a single display string. Precedence:
//
//  1. the server's structured {"message": ...} field, verbatim
//  2. the raw response body, verbatim
//  3. the transport-level error text
//  4. any other error's text
//  5. FallbackMessage
//
// It never panics and always returns a non-empty string, so store error
// state can take its result unconditionally.
func Message(err error) string {
	if err == nil {
		return FallbackMessage
	}

	var reqErr *Error
	if errors.As(err, &reqErr) {
		if reqErr.Message != "" {
			return reqErr.Message
		}
		if reqErr.Body != "" {
			return reqErr.Body
		}
		if reqErr.Err != nil {
			return reqErr.Err.Error()
		}
		return requestFailedMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}
