package uuidv9

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "canonical format",
			input: "a1b2c3d4-6500-9000-0555-555555555555",
		},
		{
			name:  "uppercase",
			input: "A1B2C3D4-6500-9000-0555-555555555555",
		},
		{
			name:  "without hyphens",
			input: "a1b2c3d4650090000555555555555555",
		},
		{
			name:  "with URN prefix",
			input: "urn:uuid:a1b2c3d4-6500-9000-0555-555555555555",
		},
		{
			name:  "with braces",
			input: "{a1b2c3d4-6500-9000-0555-555555555555}",
		},
		{
			name:    "invalid format - wrong length",
			input:   "a1b2c3d4-6500-9000-0555",
			wantErr: true,
		},
		{
			name:    "invalid format - invalid hex",
			input:   "g1b2c3d4-6500-9000-0555-555555555555",
			wantErr: true,
		},
		{
			name:    "invalid format - invalid hex without hyphens",
			input:   "g1b2c3d4650090000555555555555555",
			wantErr: true,
		},
		{
			name:    "invalid format - wrong hyphen position",
			input:   "a1b2c3d46-500-9000-0555-555555555555",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if got := u.String(); got != "a1b2c3d4-6500-9000-0555-555555555555" {
					t.Errorf("Parse().String() = %v", got)
				}
				if u.Version() != VersionV9 {
					t.Errorf("Parse().Version() = %v, want %v", u.Version(), VersionV9)
				}
			}
		})
	}
}

func TestUUID_VersionVariant(t *testing.T) {
	tests := []struct {
		id      string
		version Version
		variant Variant
	}{
		{"a1b2c3d4-6500-1000-9055-555555555555", VersionTimeBased, VariantRFC4122},
		{"a1b2c3d4-5555-4555-b555-555555555555", VersionRandom, VariantRFC4122},
		{"a1b2c3d4-6500-9000-0555-555555555555", VersionV9, VariantNCS},
		{"a1b2c3d4-6500-9000-c555-555555555555", VersionV9, VariantMicrosoft},
		{"a1b2c3d4-6500-9000-f555-555555555555", VersionV9, VariantFuture},
	}

	for _, tt := range tests {
		u := MustParse(tt.id)
		if u.Version() != tt.version {
			t.Errorf("%s: Version() = %v, want %v", tt.id, u.Version(), tt.version)
		}
		if u.Variant() != tt.variant {
			t.Errorf("%s: Variant() = %v, want %v", tt.id, u.Variant(), tt.variant)
		}
	}
}

func TestUUID_Valid(t *testing.T) {
	u := MustParse("65000000-5555-1555-9555-5555555555E9")
	if !u.Valid(ValidateOptions{Checksum: true, Version: true}) {
		t.Errorf("Valid() = false for %v", u)
	}
	if MustParse("65000000-5555-1555-9555-5555555555e8").Valid(ValidateOptions{Checksum: true}) {
		t.Error("Valid() = true for a corrupted checksum")
	}
}

func TestUUID_Std(t *testing.T) {
	id := Must(fixedGenerator().Generate(Config{Timestamp: NoTimestamp, Legacy: true}))

	std, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("uuid.Parse(%q) error = %v", id, err)
	}
	if std.Version() != 4 {
		t.Errorf("uuid.Version() = %v, want 4", std.Version())
	}
	if std.Variant() != uuid.RFC4122 {
		t.Errorf("uuid.Variant() = %v, want RFC4122", std.Variant())
	}

	u := MustParse(id)
	if u.Std() != std {
		t.Errorf("Std() = %v, want %v", u.Std(), std)
	}
	if FromStd(std) != u {
		t.Errorf("FromStd() = %v, want %v", FromStd(std), u)
	}
}

func TestUUID_IsNil(t *testing.T) {
	if !Nil.IsNil() {
		t.Error("Nil UUID should return true for IsNil()")
	}
	if MustParse("55555555-5555-5555-5555-555555555555").IsNil() {
		t.Error("Non-nil UUID should return false for IsNil()")
	}
}

func TestUUID_JSON(t *testing.T) {
	type TestStruct struct {
		ID UUID `json:"id"`
	}

	ts := TestStruct{ID: MustParse("a1b2c3d4-6500-9000-0555-555555555555")}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"id":"a1b2c3d4-6500-9000-0555-555555555555"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var ts2 TestStruct
	if err := json.Unmarshal(data, &ts2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if ts.ID != ts2.ID {
		t.Errorf("JSON Marshal/Unmarshal mismatch: got %v, want %v", ts2.ID, ts.ID)
	}
}

func TestUUID_Scan(t *testing.T) {
	raw := MustParse("a1b2c3d4-6500-9000-0555-555555555555")

	tests := []struct {
		name    string
		input   interface{}
		want    UUID
		wantErr bool
	}{
		{name: "string input", input: "a1b2c3d4-6500-9000-0555-555555555555", want: raw},
		{name: "byte slice input - 16 bytes", input: raw.Bytes(), want: raw},
		{name: "byte slice input - string format", input: []byte("a1b2c3d4-6500-9000-0555-555555555555"), want: raw},
		{name: "nil input", input: nil, want: Nil},
		{name: "invalid string", input: "nope", wantErr: true},
		{name: "invalid type", input: 123, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u UUID
			err := u.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && u != tt.want {
				t.Errorf("Scan() = %v, want %v", u, tt.want)
			}
		})
	}
}

func TestUUID_Value(t *testing.T) {
	val, err := MustParse("A1B2C3D4-6500-9000-0555-555555555555").Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if str, ok := val.(string); !ok || str != "a1b2c3d4-6500-9000-0555-555555555555" {
		t.Errorf("Value() = %v", val)
	}
}

func TestUUID_Compare(t *testing.T) {
	earlier := NewGenerator(WithClock(func() time.Time { return fixedTime }))
	later := NewGenerator(WithClock(func() time.Time { return fixedTime.Add(time.Second) }))

	id1 := Must(earlier.Generate(Config{Prefix: "a1"}))
	id2 := Must(later.Generate(Config{Prefix: "a1"}))
	u1, u2 := MustParse(id1), MustParse(id2)

	if u1.Compare(u2) != -1 {
		t.Errorf("%v should be less than %v", u1, u2)
	}
	if u2.Compare(u1) != 1 {
		t.Errorf("%v should be greater than %v", u2, u1)
	}
	if u1.Compare(MustParse(id1)) != 0 || !u1.Equal(MustParse(id1)) {
		t.Errorf("%v should equal itself", u1)
	}
}

func TestFromBytes(t *testing.T) {
	u := MustParse("a1b2c3d4-6500-9000-0555-555555555555")
	got, err := FromBytes(u.Bytes())
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if !bytes.Equal(got.Bytes(), u.Bytes()) {
		t.Errorf("FromBytes() = %v, want %v", got, u)
	}
	if _, err := FromBytes([]byte{1, 2, 3}); err != ErrInvalidLength {
		t.Errorf("FromBytes() error = %v, want ErrInvalidLength", err)
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-uuid")
}
