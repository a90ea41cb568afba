// Package uuidv9 generates and validates UUIDv9 identifiers: 128-bit values in the
// standard xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx layout that can carry a caller-chosen
// hex prefix, a seconds-granularity timestamp, a CRC-8 checksum and a version marker.
//
// With the timestamp enabled (the default), identifiers sharing a prefix sort
// lexicographically by creation second, which makes them suitable for:
//   - Database primary keys that should cluster by insertion time
//   - Tenant- or type-scoped identifiers (the prefix)
//   - Systems that expect ordinary UUID strings (the legacy marker)
//
// Basic Usage:
//
//	// Time-ordered identifier
//	id, err := uuidv9.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Prefixed, checksummed, marked as v9
//	id, err = uuidv9.Generate(uuidv9.Config{
//	    Prefix:   "a1b2c3d4",
//	    Checksum: true,
//	    Version:  true,
//	})
//
//	// Validate
//	ok := uuidv9.IsValid(id, uuidv9.ValidateOptions{Checksum: true, Version: true})
//
// Layout:
//
// The 32-digit body is the prefix, then the Unix seconds in hex, then random digits.
// Version mode inserts '9' at body index 12. Legacy mode inserts '1' (timestamp on)
// or '4' (timestamp off) at index 12 and a variant digit from 89ab at index 16, so the
// result parses as a v1 or v4 UUID. Checksum mode appends a CRC-8 (polynomial 0x07)
// of the first 30 digits.
//
// Thread Safety:
//
// Generation and validation keep no state. The package-level generator reads from
// crypto/rand and can be used concurrently from multiple goroutines.
package uuidv9
