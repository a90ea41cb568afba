package uuidv9

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type timestampMode uint8

const (
	timestampNow timestampMode = iota
	timestampOff
	timestampValue
)

// Timestamp selects the time component of a generated identifier.
// The zero value embeds the current time.
type Timestamp struct {
	mode  timestampMode
	value interface{}
}

var (
	// TimestampNow embeds the generator's current time. It is the zero value.
	TimestampNow = Timestamp{}

	// NoTimestamp leaves the time component out; the body is filled with random digits instead.
	NoTimestamp = Timestamp{mode: timestampOff}
)

// TimestampAt embeds an explicit time. v may be anything the generator's TimeResolver
// accepts; the default resolver takes a time.Time, a date string such as RFC 3339 or
// "2006-01-02", or an integer number of seconds since the Unix epoch.
func TimestampAt(v interface{}) Timestamp {
	return Timestamp{mode: timestampValue, value: v}
}

// Enabled reports whether the timestamp contributes to the identifier.
func (t Timestamp) Enabled() bool {
	return t.mode != timestampOff
}

// TimeResolver converts an explicit timestamp value into a point in time.
type TimeResolver func(v interface{}) (time.Time, error)

// ResolveTime is the default TimeResolver. Strings made only of digits, optionally
// signed, are read as Unix seconds, so epochs from flags and config files work too.
func ResolveTime(v interface{}) (time.Time, error) {
	if s, ok := v.(string); ok && isEpoch(s) {
		sec, err := cast.ToInt64E(s)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(sec, 0), nil
	}
	return cast.ToTimeE(v)
}

func isEpoch(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// encodeSeconds hex-encodes t's Unix seconds at their natural width.
// Times before 1970 come out as 64-bit two's complement.
func encodeSeconds(t time.Time) string {
	return strconv.FormatUint(uint64(t.Unix()), 16)
}

func (g *Generator) timestampHex(ts Timestamp) (string, error) {
	switch ts.mode {
	case timestampOff:
		return "", nil
	case timestampValue:
		t, err := g.resolve(ts.value)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
		}
		return encodeSeconds(t), nil
	default:
		return encodeSeconds(g.now()), nil
	}
}
