// Package runlock serialises sorting runs over the same source directory
// across processes. Lock files live outside the source tree so they are
// never picked up as files to sort.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/gofrs/flock"
)

// DefaultDir is where lock files go when no directory is configured
func DefaultDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, logging.AppName, "locks")
	}
	return filepath.Join(xdg.StateHome, logging.AppName, "locks")
}

// Lock is a held lock on one source directory
type Lock struct {
	source string
	path   string
	flock  *flock.Flock
}

// PathFor returns the lock file used for source inside dir
func PathFor(dir, source string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(source)))
	return filepath.Join(dir, hex.EncodeToString(sum[:8])+".lock")
}

// Acquire takes the lock for source without blocking. It fails with
// LOCKED when another process holds it.
func Acquire(dir, source string) (*Lock, error) {
	logger := logging.GetLogger("runlock")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create lock directory %s", dir).
			WithDetail("path", dir)
	}

	path := PathFor(dir, source)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to acquire lock %s", path).
			WithDetail("path", path)
	}
	if !ok {
		return nil, errors.Newf(errors.ErrLocked, "another run is already sorting %s", source).
			WithDetail("source", source).
			WithDetail("lockFile", path)
	}

	logger.Debug().Str("source", source).Str("lockFile", path).Msg("Run lock acquired")

	return &Lock{source: source, path: path, flock: fl}, nil
}

// Path is the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to release lock %s", l.path)
	}
	logger := logging.GetLogger("runlock")
	logger.Debug().Str("source", l.source).Msg("Run lock released")
	return nil
}
