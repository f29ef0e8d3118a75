package flattrie

import "errors"

var (
	// ErrEmptyKey is returned by insertion methods when the key is empty.
	ErrEmptyKey = errors.New("flattrie: empty key")
	// ErrDuplicateKey is returned when a key is inserted under the
	// FailOnDuplicate policy and an equal key is already present.
	ErrDuplicateKey = errors.New("flattrie: duplicate key")
	// ErrKeyNotFound is returned by Value for an absent key.
	ErrKeyNotFound = errors.New("flattrie: key not found")
	// ErrOutOfRange is returned by At for a position outside [0, Len).
	ErrOutOfRange = errors.New("flattrie: index out of range")
	// ErrInvalidRange is returned by the bounded lookups for an
	// offset/length pair that does not describe a substring of the text.
	ErrInvalidRange = errors.New("flattrie: invalid offset/length range")
)
