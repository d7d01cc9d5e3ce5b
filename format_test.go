package boavista

import "testing"

func TestFormat_pad(t *testing.T) {
	for _, tt := range []struct {
		name          string
		kind          Kind
		value         string
		width         int
		useCodepoints bool
		expected      string
	}{
		{"text", Text, "SP", 4, false, "SP  "},
		{"text empty", Text, "", 3, false, "   "},
		{"text exact", Text, "SP", 2, false, "SP"},
		{"text too long", Text, "SPX", 2, false, "SPX"},
		{"numeric", Numeric, "45", 8, false, "00000045"},
		{"numeric empty", Numeric, "", 3, false, "000"},
		{"numeric too long", Numeric, "123", 2, false, "123"},
		{"filler", Filler, "", 5, false, "     "},
		{"multibyte bytes", Text, "JOSÉ", 6, false, "JOSÉ"},
		{"multibyte codepoints", Text, "JOSÉ", 6, true, "JOSÉ  "},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tt.kind.format().pad(tt.value, tt.width, tt.useCodepoints); have != tt.expected {
				t.Errorf("pad(%q, %d) want %q, have %q", tt.value, tt.width, tt.expected, have)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{
		Text:    "text",
		Numeric: "numeric",
		Filler:  "filler",
		Kind(9): "unknown",
	} {
		if have := k.String(); have != want {
			t.Errorf("Kind(%d).String() want %q, have %q", int(k), want, have)
		}
	}
}
