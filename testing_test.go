package uuidv9

import (
	"bytes"
	"time"
)

// fixedTime hex-encodes to "65000000".
var fixedTime = time.Unix(0x65000000, 0)

// fixedGenerator returns a generator whose random digits are all '5' (and whose
// variant digit is therefore '9') and whose clock is stopped at fixedTime.
func fixedGenerator() *Generator {
	return NewGenerator(
		WithRandomSource(ReaderSource(bytes.NewReader(bytes.Repeat([]byte{0x05}, 256)))),
		WithClock(func() time.Time { return fixedTime }),
	)
}

// brokenReader is a reader that always returns an error
type brokenReader struct{}

func (br *brokenReader) Read(p []byte) (n int, err error) {
	return 0, bytes.ErrTooLarge
}
