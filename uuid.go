package uuidv9

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUID is the parsed 16-byte form of an identifier. The dashed string remains the
// canonical representation; UUID exists for storage and for handing identifiers to
// code that works with binary UUIDs.
type UUID [16]byte

// Version is the marker nibble of byte 6, i.e. the first digit of the third group.
type Version byte

const (
	VersionTimeBased Version = 1 // legacy marker with timestamp
	VersionRandom    Version = 4 // legacy marker without timestamp
	VersionV9        Version = 9
)

// Variant classifies the high bits of byte 8. Legacy ids always carry VariantRFC4122;
// other ids carry whatever the random or timestamp digit at that position implies.
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the all-zero UUID, the value Scan leaves for SQL NULL.
var Nil UUID

// Version returns the version marker of the UUID. Identifiers generated without a
// marker return whatever digit landed at that position.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant reports which variant the digit at string index 19 encodes.
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the lowercase form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex writes the 36-byte dashed form of u into dst.
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func Parse(s string) (UUID, error) {
	var u UUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	switch len(s) {
	case 36:
		if !IsUUID(s) {
			return u, ErrInvalidFormat
		}
		s = strings.ReplaceAll(s, "-", "")
	case 32:
	default:
		return u, ErrInvalidFormat
	}
	if _, err := hex.Decode(u[:], []byte(s)); err != nil {
		return u, ErrInvalidFormat
	}
	return u, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidv9: Parse(%q): %v", s, err))
	}
	return u
}

// FromBytes copies a 16-byte binary identifier, as stored in a BINARY(16) column.
func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != 16 {
		return u, ErrInvalidLength
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns the 16 raw bytes backing the identifier.
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil reports whether u is Nil. Generate never produces Nil with a timestamp enabled.
func (u UUID) IsNil() bool {
	return u == Nil
}

// Valid reports whether the UUID passes the checks selected by opts.
// The checksum is verified against the lowercase string form.
func (u UUID) Valid(opts ValidateOptions) bool {
	return IsValid(u.String(), opts)
}

// Std converts the UUID to a github.com/google/uuid value.
func (u UUID) Std() uuid.UUID {
	return uuid.UUID(u)
}

// FromStd converts a github.com/google/uuid value.
func FromStd(id uuid.UUID) UUID {
	return UUID(id)
}

// MarshalText emits the lowercase dashed form, so JSON and YAML carry the identifier
// exactly as Generate returned it.
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText accepts every form Parse does.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface. Strings are parsed; 16-byte slices are
// taken as raw bytes.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("uuidv9: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface, storing the canonical string.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns -1, 0 or +1 as u sorts before, equal to or after other. Byte order
// matches the lexicographic order of the lowercase strings, so for timestamped ids
// sharing a prefix it follows creation time to the second.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal reports whether u and other hold the same 128 bits; case differences in the
// string forms they were parsed from do not matter.
func (u UUID) Equal(other UUID) bool {
	return u == other
}
