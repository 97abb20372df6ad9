package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

var (
	// ErrTimeout marks a request that ran out of time. Treated the same as
	// a network failure by every join in the services layer.
	ErrTimeout = errors.New("gateway: request timeout")

	// ErrUnreachable marks a connection that never reached the gateway.
	ErrUnreachable = errors.New("gateway: cannot connect")
)

// StatusError is a non-2xx response. Message carries whatever the gateway
// put in its "error" or "message" field, possibly empty.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway: status %d", e.Code)
	}
	return fmt.Sprintf("gateway: status %d: %s", e.Code, e.Message)
}

// AsStatus unwraps err to a StatusError if it is one.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsTransport reports whether err is a transport-level failure (timeout or
// unreachable gateway) as opposed to an HTTP-level rejection.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnreachable)
}

// classifyTransport maps an http.Client error onto the taxonomy.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// UserMessage converts a gateway error into the message shown in the toast.
// fallback is used for non-2xx responses that carried no usable error body.
func UserMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "Request timeout. Pastikan semua services running!"
	case errors.Is(err, ErrUnreachable):
		return "Tidak bisa connect ke server. Pastikan API Gateway running!"
	}
	if se, ok := AsStatus(err); ok && se.Message != "" {
		return se.Message
	}
	return fallback
}
