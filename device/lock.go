package device

import "github.com/gofrs/flock"

// DefaultLockPath is the well-known advisory lock file serializing
// panel access across processes.
const DefaultLockPath = "/tmp/ulanzi_device.lock"

// Locker serializes device access across processes. Sessions acquire
// the lock before opening the transport and release it on every exit
// path.
type Locker interface {
	// Acquire takes the lock, waiting when blocking is true. A
	// non-blocking acquire returns ErrBusy when the lock is held
	// elsewhere.
	Acquire(blocking bool) error

	// Release gives the lock back
	Release() error
}

// FileLocker is a process-wide advisory file lock.
type FileLocker struct {
	fl *flock.Flock
}

// NewFileLocker creates an advisory lock at the given path.
func NewFileLocker(path string) *FileLocker {
	return &FileLocker{fl: flock.New(path)}
}

func (l *FileLocker) Acquire(blocking bool) error {
	if blocking {
		return l.fl.Lock()
	}

	locked, err := l.fl.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return ErrBusy
	}
	return nil
}

func (l *FileLocker) Release() error {
	return l.fl.Unlock()
}

// nopLocker is used when locking is disabled via the environment.
type nopLocker struct{}

func (nopLocker) Acquire(bool) error { return nil }
func (nopLocker) Release() error     { return nil }

// NopLocker returns a Locker that never blocks. Useful with mock
// transports where cross-process exclusion is meaningless.
func NopLocker() Locker {
	return nopLocker{}
}
