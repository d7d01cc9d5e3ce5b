package boavista

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Query holds the request values keyed by field: "01" to "28", with the
// sub-fields of the conditional blocks keyed "16.1" to "16.6" and
// "21.1" to "21.3". Keys outside the layout are ignored.
type Query map[string]string

// value returns the value stored under key, or def when it is missing
// or empty.
func (q Query) value(key, def string) string {
	if v := q[key]; v != "" {
		return v
	}
	return def
}

// Clone returns a copy of q.
func (q Query) Clone() Query {
	c := make(Query, len(q))
	for k, v := range q {
		c[k] = v
	}
	return c
}

// Set stores the value rendered by m under key. The width handed to m is
// the one the field has in the layout q currently selects.
func (q Query) Set(key string, m Marshaler) error {
	f, ok := Layout(q).Lookup(key)
	if !ok {
		return errors.Errorf("boavista: unknown query field %q", key)
	}
	v, err := m.MarshalQueryValue(f.Width)
	if err != nil {
		return errors.Wrapf(err, "boavista: marshal field %s", key)
	}
	if utf8.RuneCountInString(v) > f.Width {
		return &WidthError{Key: key, Width: f.Width, Value: v}
	}
	q[key] = v
	return nil
}

// Build returns the request string for q.
//
// Missing values take their field default. Text values are padded with
// spaces on the right and numeric values with zeros on the left. Values
// longer than their field are written in full and shift every field
// after them; keeping values within width is the caller's job (see
// Fields.Validate).
func Build(q Query) string {
	var sb strings.Builder
	writeFields(&sb, q, false)
	return sb.String()
}

// Marshal returns the request for q as bytes. See Build.
func Marshal(q Query) []byte {
	buff := bytes.NewBuffer(nil)
	writeFields(buff, q, false)
	return buff.Bytes()
}

// An Encoder writes requests to an output stream.
type Encoder struct {
	w                   *bufio.Writer
	useCodepointIndices bool
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: bufio.NewWriter(w),
	}
}

// SetUseCodepointIndices configures whether values are padded by UTF-8
// codepoint count instead of byte count (the default).
func (e *Encoder) SetUseCodepointIndices(use bool) {
	e.useCodepointIndices = use
}

// Encode writes the request for q to the stream.
// See the documentation for Build for details about encoding behavior.
func (e *Encoder) Encode(q Query) error {
	writeFields(e.w, q, e.useCodepointIndices)
	return e.w.Flush()
}

func writeFields(w io.StringWriter, q Query, useCodepoints bool) {
	for _, f := range Layout(q) {
		var v string
		if f.Kind != Filler {
			v = q.value(f.Key, f.Default)
		}
		// Writes to the builders and bufio.Writer used here only fail
		// through Flush, which callers check.
		_, _ = w.WriteString(f.Kind.format().pad(v, f.Width, useCodepoints))
	}
}
