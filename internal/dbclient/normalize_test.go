package dbclient

import (
	"testing"
	"time"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"int64", int64(42), int64(42)},
		{"int32 widens", int32(7), int64(7)},
		{"int widens", 7, int64(7)},
		{"float64", 3.14, 3.14},
		{"float32 widens", float32(1.5), float64(1.5)},
		{"bool", true, true},
		{"string", "hi", "hi"},
		{"bytes become string", []byte("raw"), "raw"},
		{"time drops to null", time.Now(), nil},
		{"slice drops to null", []int{1, 2}, nil},
		{"map drops to null", map[string]int{"a": 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeValue(tt.in); got != tt.want {
				t.Errorf("normalizeValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// A mixed row keeps each value's kind and the probe order never turns a
// whole number into a float or a "0"/"1" string into a bool.
func TestNormalizeValue_MixedRow(t *testing.T) {
	in := []any{int64(42), 3.14, true, "hi", nil, "0"}
	want := []any{int64(42), 3.14, true, "hi", nil, "0"}
	for i := range in {
		if got := normalizeValue(in[i]); got != want[i] {
			t.Errorf("position %d: got %v (%T), want %v", i, got, got, want[i])
		}
	}
}
