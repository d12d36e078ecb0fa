package upclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when no API token is configured.
	// The request is never sent.
	ErrUnauthenticated = errors.New("no API token is configured")

	// ErrInvalidResourceID is returned when a resource id supplied by
	// the caller is not a valid UUID. The request is never sent.
	ErrInvalidResourceID = errors.New("the specified resource ID is not a valid UUID")

	// ErrFutureSince is returned when a transaction filter requests
	// transactions since a point in the future.
	ErrFutureSince = errors.New("the since filter must not be in the future")
)

// TransportError wraps a network-level failure such as a DNS error,
// timeout or connection reset. Transport failures are always safe to
// retry.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("network failure: %s", e.Err)
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// APIError is a well-formed error envelope returned by the server.
// Title and Detail are shown to the user verbatim.
type APIError struct {
	Status string
	Title  string
	Detail string
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// UnknownHTTPError is a non-2xx response whose body is not a valid
// error envelope.
type UnknownHTTPError struct {
	StatusCode int
}

func (e UnknownHTTPError) Error() string {
	return fmt.Sprintf("the server returned HTTP %d without a readable error", e.StatusCode)
}

// DecodingError is a 2xx response whose body fails schema validation.
// It indicates a contract mismatch between client and server.
type DecodingError struct {
	Err error
}

func (e DecodingError) Error() string {
	return fmt.Sprintf("the server response could not be decoded: %s", e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	var transportErr TransportError
	return errors.As(err, &transportErr)
}
