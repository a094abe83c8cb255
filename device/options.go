package device

import "time"

// Config holds the driver configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// PaddingRetries is the number of bundle build attempts. When a
	// build required reserved-byte patching and attempts remain, the
	// bundle is rebuilt with grown dummy.txt padding to shift the
	// stream away from the firmware defect. Default is 1 (single
	// attempt, patching only).
	PaddingRetries int

	// Clock supplies the current time for status-line defaults
	Clock func() time.Time
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		PaddingRetries: 1,
		Clock:          time.Now,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev := device.New(transport, device.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPaddingRetries sets the number of bundle build attempts used to
// dodge the firmware quirk by growing padding. Values below 1 are
// ignored.
//
// Example:
//
//	dev := device.New(transport, device.WithPaddingRetries(3))
func WithPaddingRetries(attempts int) Option {
	return func(c *Config) {
		if attempts >= 1 {
			c.PaddingRetries = attempts
		}
	}
}

// WithClock sets the time source used for status-line defaults.
// Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		if clock != nil {
			c.Clock = clock
		}
	}
}
