package boavista

import (
	"strings"
	"unicode/utf8"
)

// rawValue is a clean response payload ready to be sliced into fields.
type rawValue struct {
	data string
	// Used when `SetUseCodepointIndices` has been called on `Decoder` and
	// the data holds multibyte characters. codepointIndices[n] is the
	// starting byte of the n-th codepoint in data.
	codepointIndices []int
}

func newRawValue(data string, useCodepointIndices bool) rawValue {
	value := rawValue{
		data: data,
	}
	if useCodepointIndices {
		bytesIdx := findFirstMultiByteChar(data)
		// Only allocate the indices if there is a multibyte character.
		if bytesIdx < len(data) {
			codepointIndices := make([]int, bytesIdx)
			for i := 0; i < bytesIdx; i++ {
				codepointIndices[i] = i
			}
			for bytesIdx < len(data) {
				// Invalid bytes decode as one codepoint each.
				_, codepointSize := utf8.DecodeRuneInString(data[bytesIdx:])
				codepointIndices = append(codepointIndices, bytesIdx)
				bytesIdx += codepointSize
			}
			value.codepointIndices = codepointIndices
		}
	}
	return value
}

// len returns the length of the value in the units fields are measured
// in: codepoints when indices are present, bytes otherwise.
func (v rawValue) len() int {
	if v.codepointIndices == nil {
		return len(v.data)
	}
	return len(v.codepointIndices)
}

// byteIndex maps a position to a byte offset. Positions at or past the
// end map to len(data).
func (v rawValue) byteIndex(pos int) int {
	if pos >= v.len() {
		return len(v.data)
	}
	if v.codepointIndices == nil {
		return pos
	}
	return v.codepointIndices[pos]
}

// slice returns the half-open interval [start, end) clamped to the
// bounds of the value.
func (v rawValue) slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start || start >= v.len() {
		return ""
	}
	return v.data[v.byteIndex(start):v.byteIndex(end)]
}

// Scans bytes, looking for multi-byte characters, returns either the index of
// the first multi-byte character or the length of the string if there are none.
func findFirstMultiByteChar(data string) int {
	for i := 0; i < len(data); i++ {
		if data[i]&0x80 == 0x80 {
			return i
		}
	}
	return len(data)
}

// cursor reads consecutive fields from a rawValue. It is owned by a
// single decode call.
//
// Reads past the end yield empty strings but still advance the
// position, so a loop bounded by done always terminates.
type cursor struct {
	value rawValue
	pos   int
}

func newCursor(value rawValue) *cursor {
	return &cursor{value: value}
}

// next reads width units, trims surrounding whitespace and advances.
func (c *cursor) next(width int) string {
	s := c.value.slice(c.pos, c.pos+width)
	c.pos += width
	return strings.TrimSpace(s)
}

// at reads the 1-based inclusive interval [startPos, endPos] relative to
// base without moving the cursor.
func (c *cursor) at(base, startPos, endPos int) string {
	return strings.TrimSpace(c.value.slice(base+startPos-1, base+endPos))
}

func (c *cursor) done() bool {
	return c.pos >= c.value.len()
}
