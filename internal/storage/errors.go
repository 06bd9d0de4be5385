package storage

import "fmt"

// CorruptStoreError is returned by Load when the expense file exists but does
// not hold a valid date-keyed record map.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt expense file %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// PersistError is returned when the store could not be written to disk. Save
// never touches the in-memory store, so calling it again is the way to retry.
type PersistError struct {
	Path string
	Op   string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to %s expense file %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
