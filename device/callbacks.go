package device

import "github.com/ulanzikit/go-d200/protocol"

// ButtonCallback is invoked synchronously for each decoded button-press
// event. Implementations should return quickly; the callback runs on
// the caller's read loop.
//
// Example:
//
//	dev.SetButtonCallback(func(press protocol.ButtonPress) {
//	    fmt.Printf("button %d pressed=%v\n", press.Index, press.Pressed)
//	})
type ButtonCallback func(protocol.ButtonPress)

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework; see
// NewZapLogger for the bundled zap adapter.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
