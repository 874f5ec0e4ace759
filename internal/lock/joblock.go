// Package lock prevents concurrent runs of the same extraction job.
package lock

import (
	"errors"
	"fmt"
	"os"
)

// ErrLockHeld is returned when another run holds the job lock.
var ErrLockHeld = errors.New("job lock is held by another run")

// JobLock guards an output destination with an exclusive lock file so
// two runs of the same job cannot write the same export concurrently.
type JobLock struct {
	path string
}

// NewJobLock creates a lock guarding the given output path.
func NewJobLock(output string) *JobLock {
	return &JobLock{path: output + ".lock"}
}

// AcquireOrFail creates the lock file, failing immediately if it
// already exists.
func (l *JobLock) AcquireOrFail() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrLockHeld, l.path)
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	return f.Close()
}

// Release removes the lock file. Releasing an unheld lock is not an error.
func (l *JobLock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the lock file location.
func (l *JobLock) Path() string {
	return l.path
}
