package cache

import (
	"os"
	"time"
)

// BoltOption applies a configuration option to the BoltStore.
type BoltOption func(*BoltStore)

// WithFileMode sets the permission bits on a newly created database file.
func WithFileMode(mode os.FileMode) BoltOption {
	return func(s *BoltStore) {
		if mode != 0 {
			s.fileMode = mode
		}
	}
}

// WithOpenTimeout bounds how long opening waits on the file lock.
func WithOpenTimeout(timeout time.Duration) BoltOption {
	return func(s *BoltStore) {
		if timeout > 0 {
			s.openTimeout = timeout
		}
	}
}
