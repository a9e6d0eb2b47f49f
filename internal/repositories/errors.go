package repositories

import "errors"

var (
	// ErrNotFound is returned when a record with the given id or key does
	// not exist. A miss is a normal outcome, not a failure of the store.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a create would violate a uniqueness
	// invariant (username, glossary term).
	ErrDuplicateKey = errors.New("duplicate key")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
