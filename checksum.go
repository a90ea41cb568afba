package uuidv9

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// crcPolynomial is the CRC-8 generator x^8 + x^2 + x + 1.
const crcPolynomial = 0x07

const (
	checksumLength = 2
	// checksumOffset is where the checksum starts in the dashed identifier.
	checksumOffset = 34
	// checksummedDigits is how many body digits the checksum covers.
	checksummedDigits = 30
)

// Checksum computes the CRC-8 (polynomial 0x07, init 0x00, no reflection, no final XOR)
// of the bytes encoded by hexString and returns it as two lowercase hex digits.
// hexString must be a non-empty, even-length string of hex digits.
func Checksum(hexString string) (string, error) {
	if len(hexString) == 0 || len(hexString)%2 != 0 {
		return "", fmt.Errorf("%w: got %d digits", ErrInvalidInput, len(hexString))
	}
	data, err := hex.DecodeString(hexString)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Sprintf("%02x", crc8(data)), nil
}

// crc8 runs the register MSB first. Bits shifted past bit 7 never feed back into the
// low byte, so keeping the register in a byte gives the same result as masking at the end.
func crc8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// VerifyChecksum reports whether the last two characters of id hold the checksum of
// its first 30 hex digits. The comparison is case-sensitive; malformed ids yield false.
func VerifyChecksum(id string) bool {
	if len(id) < checksumOffset+checksumLength {
		return false
	}
	body := strings.ReplaceAll(id, "-", "")
	if len(body) < checksummedDigits {
		return false
	}
	crc, err := Checksum(body[:checksummedDigits])
	if err != nil {
		return false
	}
	return crc == id[checksumOffset:checksumOffset+checksumLength]
}
