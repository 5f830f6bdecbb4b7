// Package runlock enforces single-writer access to a run's output
// directory. Statepoint and tally files are not safe against two engine
// processes writing them at once, so every run takes a file lock before it
// touches the directory.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another process already owns the run lock.
var ErrHeld = errors.New("output directory is locked by another run")

// Lock guards one output directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// New prepares a lock for the given output directory, creating the
// directory when needed. The lock is not taken until Acquire.
func New(outputDir string) (*Lock, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", outputDir, err)
	}
	path := filepath.Join(outputDir, "fermi.lock")
	return &Lock{path: path, lock: flock.New(path)}, nil
}

// Acquire takes the lock without blocking. ErrHeld is returned when another
// run owns it.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (%s)", ErrHeld, l.path)
	}
	return nil
}

// Release gives up the lock. Releasing a lock that was never acquired is a
// no-op.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
