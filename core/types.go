package core

import (
	"errors"
	"fmt"
)

// MaxFieldBytes is the largest Field a Record may carry, in bytes.
const MaxFieldBytes = 32

// Sentinel errors for index operations.
var (
	// ErrDuplicateKey indicates an insert of a key already stored in the index.
	ErrDuplicateKey = errors.New("core: duplicate key")

	// ErrKeyNotFound indicates a delete (or extraction) of a key that is absent.
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrFieldTooLarge indicates a Field longer than MaxFieldBytes.
	ErrFieldTooLarge = errors.New("core: field is too large")

	// ErrUnknownOrder indicates ParseOrder was given an unrecognized name.
	ErrUnknownOrder = errors.New("core: unknown traversal order")

	// ErrInvariant is wrapped by every *InvariantError.
	ErrInvariant = errors.New("core: invariant violation")
)

// Record is the payload stored by every index: an integer Key and a bounded Field.
// Records are compared by Key only.
type Record struct {
	Key   int    // unique within one index
	Field string // at most MaxFieldBytes bytes
}

// NewRecord validates field and returns the Record {key, field}.
// Returns ErrFieldTooLarge if len(field) > MaxFieldBytes.
func NewRecord(key int, field string) (Record, error) {
	if len(field) > MaxFieldBytes {
		return Record{}, fmt.Errorf("%w: %d bytes (max %d)", ErrFieldTooLarge, len(field), MaxFieldBytes)
	}

	return Record{Key: key, Field: field}, nil
}

// String renders the record as `00000042, "field"`.
func (r Record) String() string {
	return fmt.Sprintf("%08d, %q", r.Key, r.Field)
}

// Visitor is invoked once per record during a traversal.
type Visitor func(Record)

// DuplicateKey returns ErrDuplicateKey annotated with key.
func DuplicateKey(key int) error {
	return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
}

// KeyNotFound returns ErrKeyNotFound annotated with key.
func KeyNotFound(key int) error {
	return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
}
