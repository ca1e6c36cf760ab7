package localcache

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage marks every failure of the cache's backing store.
	ErrStorage = errors.New("local cache storage failure")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("local cache value is corrupt")

	ErrClosed = errors.New("local cache is closed")
)

// StorageError describes a failed cache operation. It matches both ErrStorage
// and the underlying error.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("localcache: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("localcache: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

func storageError(op string, key string, err error) error {
	var existing *StorageError
	if errors.As(err, &existing) {
		return err
	}
	return &StorageError{Op: op, Key: key, Err: err}
}
