package uuidv9

import (
	"crypto/rand"
	"fmt"
	"io"
)

const hexDigits = "0123456789abcdef"

// RandomSource produces random hexadecimal digits for the filler part of a body.
// Implementations shared between goroutines must be safe for concurrent use.
type RandomSource interface {
	// RandomHex returns exactly n lowercase hex digits.
	RandomHex(n int) (string, error)
}

// ReaderSource returns a RandomSource that draws one byte from r per digit and keeps
// its low nibble. It is primarily useful for testing with deterministic readers.
func ReaderSource(r io.Reader) RandomSource {
	return &readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) RandomHex(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return "", fmt.Errorf("uuidv9: read random digits: %w", err)
	}
	for i, b := range buf {
		buf[i] = hexDigits[b&0x0f]
	}
	return string(buf), nil
}

// defaultSource reads from crypto/rand, which is safe for concurrent use.
var defaultSource = ReaderSource(rand.Reader)
