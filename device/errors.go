package device

import (
	"errors"
	"fmt"

	"github.com/ulanzikit/go-d200/protocol"
)

// ErrBusy is returned by a non-blocking session acquisition when
// another process holds the device lock. It is a retryable condition,
// not a failure of the device.
var ErrBusy = errors.New("device is busy")

// TransportError indicates that a transport write failed during a
// command send. A failure partway through a chunked transmission aborts
// the whole operation; the device is left in an undefined
// partial-receive state it recovers from via the total-length field.
type TransportError struct {
	// Op is the transport operation that failed
	Op string

	// Command is the command being transmitted
	Command protocol.Command

	// Err is the underlying transport error
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Command, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
