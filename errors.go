package uuidv9

import "errors"

var (
	// ErrInvalidPrefix indicates that the prefix is longer than 8 characters or not hexadecimal
	ErrInvalidPrefix = errors.New("uuidv9: invalid prefix")

	// ErrInvalidInput indicates that a checksum was requested over malformed hex input
	ErrInvalidInput = errors.New("uuidv9: invalid checksum input (expected an even number of hex digits)")

	// ErrInvalidTimestamp indicates that an explicit timestamp value could not be resolved
	ErrInvalidTimestamp = errors.New("uuidv9: invalid timestamp value")

	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuidv9: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidv9: invalid UUID length (expected 16 bytes)")
)
