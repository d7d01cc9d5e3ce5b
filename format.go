package boavista

import (
	"strings"
	"unicode/utf8"
)

// Kind describes how a request field is padded to its declared width.
type Kind int

const (
	// Text fields are left aligned and padded with spaces.
	Text Kind = iota
	// Numeric fields are right aligned and padded with zeros.
	Numeric
	// Filler fields carry no value and are written as spaces.
	Filler
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Numeric:
		return "numeric"
	case Filler:
		return "filler"
	default:
		return "unknown"
	}
}

const (
	left  alignment = "left"
	right alignment = "right"
)

const (
	defaultPadChar = ' '
	numericPadChar = '0'
)

type alignment string

type format struct {
	alignment alignment
	padChar   byte
}

func (k Kind) format() format {
	if k == Numeric {
		return format{alignment: right, padChar: numericPadChar}
	}
	return format{alignment: left, padChar: defaultPadChar}
}

// pad extends value to width with the format's pad character. Values
// that already fill the width are returned unchanged; they are never
// truncated.
func (f format) pad(value string, width int, useCodepoints bool) string {
	n := len(value)
	if useCodepoints {
		n = utf8.RuneCountInString(value)
	}
	if n >= width {
		return value
	}

	fill := strings.Repeat(string(f.padChar), width-n)
	if f.alignment == right {
		return fill + value
	}
	return value + fill
}
