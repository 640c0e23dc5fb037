package domain

import (
	"errors"
	"fmt"
)

// Authentication failures. All of them map to HTTP 401 and none of them
// trigger broker I/O.
var (
	ErrMissingCredential = errors.New("missing or invalid authorization token")
	ErrInvalidCredential = errors.New("token verification failed")
	ErrMissingIdentity   = errors.New("user id not found in token")
	ErrUnknownUser       = errors.New("no user record for token identity")
)

// Publish-path failures distinguished from connection failures.
var (
	ErrSerialization  = errors.New("message could not be encoded")
	ErrBrokerRejected = errors.New("message was rejected by the broker")
	ErrChannelClosed  = errors.New("channel closed before broker acknowledgment")
)

// ErrStorageDisabled is returned by endpoints that need the database when the
// gateway runs without one configured.
var ErrStorageDisabled = errors.New("persistent storage is not configured")

// ErrFileNotFound is returned when a file name has no row for the caller.
var ErrFileNotFound = errors.New("file not found")

// ConnectionError reports a transport-level failure talking to the broker.
// Op names the failed step (dial, channel, declare). The wrapped cause never
// contains credentials.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("broker connection failed during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// PublishError reports a failure to hand a message to the broker after a
// connection was available.
type PublishError struct {
	Queue string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to queue %q failed: %v", e.Queue, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// MissingFieldError is a client input error: a required form field was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// IsAuthError reports whether err belongs to the authentication taxonomy.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingCredential) ||
		errors.Is(err, ErrInvalidCredential) ||
		errors.Is(err, ErrMissingIdentity) ||
		errors.Is(err, ErrUnknownUser)
}
