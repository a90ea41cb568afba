package uuidv9

import "strings"

const (
	// versionIndex and variantIndex locate the marker digits in the dashed identifier.
	versionIndex = 14
	variantIndex = 19
)

// ValidateOptions selects the optional checks performed by IsValid.
type ValidateOptions struct {
	// Checksum requires the trailing CRC-8 to match.
	Checksum bool
	// Version requires a v9 marker or a v1/v4 marker with an RFC 4122 variant.
	Version bool
}

// IsUUID reports whether id has the 8-4-4-4-12 hex layout. Hex digits may be of either case.
func IsUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch i {
		case 8, 13, 18, 23:
			if id[i] != '-' {
				return false
			}
		default:
			if !isHexByte(id[i]) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether id is a well-formed UUID that passes the checks selected by opts.
func IsValid(id string, opts ValidateOptions) bool {
	return IsUUID(id) &&
		(!opts.Checksum || VerifyChecksum(id)) &&
		(!opts.Version || CheckVersion(id, 0))
}

// CheckVersion reports whether id carries a supported version marker: '9', or '1'/'4'
// followed by a variant digit of 8, 9, a or b. A non-zero version additionally requires
// the marker to equal it, e.g. CheckVersion(id, '4').
func CheckVersion(id string, version byte) bool {
	if len(id) <= variantIndex {
		return false
	}
	v := id[versionIndex]
	variant := id[variantIndex]
	if version != 0 && v != version {
		return false
	}
	switch v {
	case versionDigit:
		return true
	case '1', '4':
		return strings.IndexByte("89abAB", variant) >= 0
	default:
		return false
	}
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexByte(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isHexByte(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
