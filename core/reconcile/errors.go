package reconcile

import (
	"errors"
	"fmt"
)

// ErrUnknownEntityKind is returned when no strategy is registered for a label.
var ErrUnknownEntityKind = errors.New("unknown entity kind")

// ErrNotArray is the cause of a DecodeError for payloads that are not a JSON array.
var ErrNotArray = errors.New("payload is not a JSON array")

// DecodeError reports a payload or record that could not be decoded.
type DecodeError struct {
	Kind Kind
	// Index is the offending record, or -1 when the payload as a whole is bad.
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode %s payload: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("decode %s record %d: %v", e.Kind, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StorageError reports a failed store operation. The batch transaction has
// been rolled back when it reaches the caller.
type StorageError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(kind Kind, op string, err error) error {
	return &StorageError{Kind: kind, Op: op, Err: err}
}

// IsClientError reports whether err was caused by the inbound batch itself
// rather than by the store.
func IsClientError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr) || errors.Is(err, ErrUnknownEntityKind)
}
