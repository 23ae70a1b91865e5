// Package ledgererror defines the typed errors surfaced by the ledger core.
package ledgererror

import "fmt"

// NotFoundError reports an operation addressed at an id that does not exist
// in the named collection. The store guarantees no state was modified.
type NotFoundError struct {
	Collection string
	ID         int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry with id %d in %s", e.ID, e.Collection)
}

// ValidationError reports a rejected draft. The offending field and the
// reason are kept separate so callers can highlight the field in a form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidBackupError reports a backup file that could not be restored.
// In-memory state is never modified when restore fails.
type InvalidBackupError struct {
	Path string
	Err  error
}

func (e *InvalidBackupError) Error() string {
	return fmt.Sprintf("invalid backup file %s: %v", e.Path, e.Err)
}

func (e *InvalidBackupError) Unwrap() error {
	return e.Err
}
