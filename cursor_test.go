package boavista

import (
	"reflect"
	"testing"
)

func TestNewRawValue(t *testing.T) {
	for _, tt := range []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "All ASCII",
			input:    "ABC",
			expected: []int(nil),
		},
		{
			name:     "All multi-byte",
			input:    "☃☃☃",
			expected: []int{0, 3, 6},
		},
		{
			name:     "Mixed",
			input:    "abc☃☃☃123",
			expected: []int{0, 1, 2, 3, 6, 9, 12, 13, 14},
		},
		{
			name:     "Invalid bytes",
			input:    "A\xffB☃",
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "Latin-1 transcoded",
			input:    "SÃO",
			expected: []int{0, 1, 3},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			result := newRawValue(tt.input, true)
			if !reflect.DeepEqual(tt.expected, result.codepointIndices) {
				t.Errorf("newRawValue(%q, true): Unexpected result, expected %v got %v", tt.input, tt.expected, result.codepointIndices)
			}
		})
	}

	t.Run("indices disabled", func(t *testing.T) {
		result := newRawValue("☃☃☃", false)
		if result.codepointIndices != nil {
			t.Errorf("newRawValue(false) should not build indices")
		}
	})
}

func TestRawValue_slice(t *testing.T) {
	for _, tt := range []struct {
		name       string
		value      rawValue
		start, end int
		expected   string
	}{
		{"ascii", newRawValue("ABCDEF", false), 1, 4, "BCD"},
		{"ascii past end", newRawValue("ABCDEF", false), 4, 10, "EF"},
		{"ascii start past end", newRawValue("ABCDEF", false), 6, 10, ""},
		{"ascii empty interval", newRawValue("ABCDEF", false), 3, 3, ""},
		{"empty value", newRawValue("", false), 0, 3, ""},
		{"bytes split multibyte", newRawValue("AÇB", false), 0, 2, "A\xc3"},
		{"codepoints", newRawValue("AÇB☃C", true), 1, 4, "ÇB☃"},
		{"codepoints past end", newRawValue("AÇB☃C", true), 3, 9, "☃C"},
		{"codepoints start past end", newRawValue("AÇB☃C", true), 5, 9, ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tt.value.slice(tt.start, tt.end); have != tt.expected {
				t.Errorf("slice(%d, %d) want %q, have %q", tt.start, tt.end, tt.expected, have)
			}
		})
	}
}

func TestCursor(t *testing.T) {
	c := newCursor(newRawValue("181249S  JOSE   ", false))

	for _, tt := range []struct {
		width    int
		expected string
		pos      int
		done     bool
	}{
		{3, "181", 3, false},
		{3, "249", 6, false},
		{1, "S", 7, false},
		{7, "JOSE", 14, false},
		{5, "", 19, true},
		{5, "", 24, true},
	} {
		if have := c.next(tt.width); have != tt.expected {
			t.Errorf("next(%d) want %q, have %q", tt.width, tt.expected, have)
		}
		if c.pos != tt.pos {
			t.Errorf("next(%d) pos want %d, have %d", tt.width, tt.pos, c.pos)
		}
		if c.done() != tt.done {
			t.Errorf("done() after pos %d want %v", c.pos, tt.done)
		}
	}
}

func TestCursor_at(t *testing.T) {
	c := newCursor(newRawValue("XXCSR61   01", false))
	c.pos = 2

	if have := c.at(c.pos, 1, 8); have != "CSR61" {
		t.Errorf("at(1, 8) want %q, have %q", "CSR61", have)
	}
	if have := c.at(c.pos, 9, 10); have != "01" {
		t.Errorf("at(9, 10) want %q, have %q", "01", have)
	}
	if c.pos != 2 {
		t.Errorf("at() should not move the cursor")
	}
}
