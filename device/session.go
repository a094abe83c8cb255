package device

import (
	"sort"

	"github.com/ulanzikit/go-d200/bundle"
	"github.com/ulanzikit/go-d200/usbhid"
)

// TransportOpener opens the device transport for a session. The default
// opener connects over hidapi; tests substitute in-memory fakes.
type TransportOpener func(path string) (Transport, error)

func defaultOpener(path string) (Transport, error) {
	return usbhid.Open(path)
}

type sessionConfig struct {
	path       string
	blocking   bool
	locker     Locker
	opener     TransportOpener
	deviceOpts []Option
}

// SessionOption is a functional option for OpenSession.
type SessionOption func(*sessionConfig)

// WithDevicePath opens the panel at an explicit HID path instead of
// enumerating by vendor/product ID.
func WithDevicePath(path string) SessionOption {
	return func(c *sessionConfig) {
		c.path = path
	}
}

// WithNonBlocking makes lock acquisition non-blocking: a held lock
// returns ErrBusy instead of waiting.
func WithNonBlocking() SessionOption {
	return func(c *sessionConfig) {
		c.blocking = false
	}
}

// WithLocker substitutes the advisory lock implementation. Intended for
// tests.
func WithLocker(locker Locker) SessionOption {
	return func(c *sessionConfig) {
		c.locker = locker
	}
}

// WithTransportOpener substitutes the transport opener. Intended for
// tests.
func WithTransportOpener(opener TransportOpener) SessionOption {
	return func(c *sessionConfig) {
		c.opener = opener
	}
}

// WithDeviceOptions passes options through to the Device constructed by
// the session.
func WithDeviceOptions(opts ...Option) SessionOption {
	return func(c *sessionConfig) {
		c.deviceOpts = append(c.deviceOpts, opts...)
	}
}

// Session owns the advisory lock and the open device for its lifetime.
type Session struct {
	// Device is the connected panel
	Device *Device

	locker Locker
}

// OpenSession acquires the advisory device lock and opens the panel.
// Set ULANZI_LOCK_DISABLED=1 to skip locking. The lock is released on
// every exit path, including open failures.
//
// With WithNonBlocking, a lock held by another process returns ErrBusy;
// callers may treat that as "try later".
func OpenSession(opts ...SessionOption) (*Session, error) {
	env := loadEnv()

	cfg := sessionConfig{blocking: true, opener: defaultOpener}
	for _, opt := range opts {
		opt(&cfg)
	}

	locker := cfg.locker
	if locker == nil {
		if env.LockDisabled {
			locker = nopLocker{}
		} else {
			locker = NewFileLocker(env.LockPath)
		}
	}

	if err := locker.Acquire(cfg.blocking); err != nil {
		return nil, err
	}

	transport, err := cfg.opener(cfg.path)
	if err != nil {
		_ = locker.Release()
		return nil, err
	}

	deviceOpts := cfg.deviceOpts
	if logger := newEnvLogger(env); logger != nil {
		deviceOpts = append([]Option{WithLogger(logger)}, deviceOpts...)
	}

	dev := New(transport, deviceOpts...)
	dev.logInfo("connected to panel")

	return &Session{Device: dev, locker: locker}, nil
}

// Close closes the device and releases the advisory lock.
func (s *Session) Close() error {
	err := s.Device.Close()
	if rerr := s.locker.Release(); err == nil {
		err = rerr
	}
	return err
}

// SendSummary reports the outcome of a one-shot SendButtons call.
type SendSummary struct {
	// BundleSize is the transmitted archive size in bytes
	BundleSize int

	// PatchNote is the reserved-byte patch summary, empty when clean
	PatchNote string

	// PatchedBytes is the number of reserved bytes rewritten
	PatchedBytes int

	// SendCount is the session's running bundle-transmission count
	SendCount int

	// Buttons lists the updated button numbers, one-based and sorted
	Buttons []int
}

// SendButtons opens a session, transmits the button configuration, and
// closes the session. Convenience wrapper for one-shot callers.
func SendButtons(buttons map[int]bundle.ButtonConfig, opts ...SessionOption) (*SendSummary, error) {
	sess, err := OpenSession(opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sess.Close() }()

	report, err := sess.Device.SetButtons(buttons)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(buttons))
	for idx := range buttons {
		numbers = append(numbers, idx+1)
	}
	sort.Ints(numbers)

	return &SendSummary{
		BundleSize:   report.BundleSize,
		PatchNote:    report.PatchNote,
		PatchedBytes: report.PatchedBytes,
		SendCount:    report.SendCount,
		Buttons:      numbers,
	}, nil
}

// PingKeepAlive refreshes the status-window clock in a short-lived
// session and returns the time string that was sent. With bestEffort, a
// busy device returns ErrBusy immediately instead of waiting for the
// lock.
func PingKeepAlive(bestEffort bool, opts ...SessionOption) (string, error) {
	if bestEffort {
		opts = append(opts, WithNonBlocking())
	}

	sess, err := OpenSession(opts...)
	if err != nil {
		return "", err
	}
	defer func() { _ = sess.Close() }()

	now := sess.Device.config.Clock().Format("15:04:05")
	mode := StatusModeClock
	if err := sess.Device.SetStatusLine(StatusLine{Mode: &mode, Time: now}, true); err != nil {
		return "", err
	}
	return now, nil
}
