package boavista

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// The service wraps the payload in a <PRE> block.
const (
	openTag  = "<PRE>"
	closeTag = "</PRE>"
)

// Field widths of the record framing.
const (
	lengthWidth  = 3
	typeWidth    = 3
	flagWidth    = 1
	messageWidth = 95
)

// Clean strips surrounding whitespace and the optional <PRE> wrapper
// from a raw response. At most one opening and one closing tag are
// removed, matched without regard to case.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= len(openTag) && strings.EqualFold(s[:len(openTag)], openTag) {
		s = s[len(openTag):]
	}
	if len(s) >= len(closeTag) && strings.EqualFold(s[len(s)-len(closeTag):], closeTag) {
		s = s[:len(s)-len(closeTag)]
	}
	return strings.TrimSpace(s)
}

// Parse decodes a raw response. It never fails: short or empty input
// yields empty fields.
func Parse(raw string) *Response {
	return parse(raw, false)
}

// Unmarshal decodes a raw response and stores it in r. If r is nil,
// Unmarshal returns an InvalidUnmarshalError.
func Unmarshal(data []byte, r *Response) error {
	return NewDecoder(bytes.NewReader(data)).Decode(r)
}

// An InvalidUnmarshalError describes a nil *Response passed to Unmarshal
// or Decode.
type InvalidUnmarshalError struct{}

func (e *InvalidUnmarshalError) Error() string {
	return "boavista: Unmarshal(nil *Response)"
}

// A Decoder reads and decodes a response from an input stream.
type Decoder struct {
	r                   io.Reader
	useCodepointIndices bool
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// SetUseCodepointIndices configures whether field widths count UTF-8
// codepoints instead of bytes (the default). Use it when the body was
// transcoded to UTF-8 from a single-byte charset.
func (d *Decoder) SetUseCodepointIndices(use bool) {
	d.useCodepointIndices = use
}

// Decode reads the whole input and stores the decoded response in r.
// The only errors are those returned by the underlying reader.
func (d *Decoder) Decode(r *Response) error {
	if r == nil {
		return &InvalidUnmarshalError{}
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return errors.Wrap(err, "boavista: read response")
	}
	*r = *parse(string(data), d.useCodepointIndices)
	return nil
}

func parse(raw string, useCodepointIndices bool) *Response {
	resp := &Response{
		Records: map[string]RecordSet{},
		raw:     raw,
		clean:   Clean(raw),
	}

	c := newCursor(newRawValue(resp.clean, useCodepointIndices))

	readStruct(c, &resp.Header)
	for !c.done() {
		rec := readRecord(c)
		resp.Records[rec.Type] = append(resp.Records[rec.Type], rec)
	}
	return resp
}

// readRecord reads one record of the body. Types outside the group
// table keep only their framing fields.
func readRecord(c *cursor) Record {
	rec := Record{
		Length: c.next(lengthWidth),
		Type:   c.next(typeWidth),
	}
	if rec.Type == ErrorType {
		rec.Message = c.next(messageWidth)
		return rec
	}

	rec.Flag = c.next(flagWidth)
	if !rec.Populated() {
		return rec
	}
	if g, ok := groups[rec.Type]; ok {
		rec.Fields = make([]string, len(g.Widths))
		for i, w := range g.Widths {
			rec.Fields[i] = c.next(w)
		}
	}
	return rec
}
