package kawaii

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks. The concrete error types below match them.
var (
	ErrAuthentication    = errors.New("kawaii: authentication failed")
	ErrTransport         = errors.New("kawaii: transport failure")
	ErrMalformedResponse = errors.New("kawaii: malformed response")
	ErrUnknownCategory   = errors.New("kawaii: unknown category")
)

// AuthenticationError reports that the provider rejected the configured token.
type AuthenticationError struct {
	// Message is the provider's error text, unmodified.
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("kawaii: authentication failed: %s", e.Message)
}

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// TransportError reports a non-2xx HTTP status, or a request that never got a
// response at all, in which case StatusCode is zero and Err holds the cause.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("kawaii: request failed: %v", e.Err)
	}
	return fmt.Sprintf("kawaii: unexpected http status %d", e.StatusCode)
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a body that could not be turned into a GIF URL.
// RemoteMessage is set when the provider answered with an error other than an
// authentication failure.
type MalformedResponseError struct {
	Reason        string
	RemoteMessage string
	Err           error
}

func (e *MalformedResponseError) Error() string {
	msg := "kawaii: malformed response: " + e.Reason
	if e.RemoteMessage != "" {
		msg += fmt.Sprintf(" %q", e.RemoteMessage)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

func (e *MalformedResponseError) Unwrap() error { return e.Err }
