package reconcile

import "fmt"

// SyncError is returned when some pending records could not be pushed.
// Records accepted before the failure stay marked as synced.
type SyncError struct {
	Operation string
	Pushed    int
	Failed    int
	Err       error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync: %s failed for %d of %d records: %v", e.Operation, e.Failed, e.Pushed+e.Failed, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }
