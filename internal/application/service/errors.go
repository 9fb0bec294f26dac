package service

import "fmt"

// ValidationError reports the first required field found missing or empty in
// a submission. The field name is safe to surface to the client.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// PersistenceError wraps a storage failure. The wrapped error carries driver
// detail and must not be surfaced to the client verbatim.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist application: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
