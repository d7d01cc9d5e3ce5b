package boavista

import (
	"sort"
	"strconv"
)

// Header is the fixed block that opens every response.
type Header struct {
	Transaction    string `fixed:"1,8"`
	Version        string `fixed:"9,10"`
	Reserved       string `fixed:"11,20"`
	BureauReserved string `fixed:"21,40"`
	Code           string `fixed:"41,48"`
	Consult        string `fixed:"49,56"`
	ConsultVersion string `fixed:"57,58"`
	ResponseType   string `fixed:"59,59"`
	ReturnCode     string `fixed:"60,60"`
	Sequence       string `fixed:"61,67"`
	TextLength     string `fixed:"68,71"`
}

// Record is one typed record of the response body.
type Record struct {
	Length string
	Type   string
	// Flag is the presence flag. It is empty for error records.
	Flag string
	// Message is the rejection reason. It is only set for error records.
	Message string
	// Fields holds the type-specific values in group table order.
	Fields []string
}

// Populated reports whether the record carries type-specific fields.
func (r Record) Populated() bool {
	return r.Flag == Populated
}

// IsError reports whether r is a rejection record.
func (r Record) IsError() bool {
	return r.Type == ErrorType
}

// Get returns the value stored under a two digit record key: "01" is the
// length, "02" the type, "03" the flag (or the message of an error
// record) and "04" onwards the type-specific fields. Unknown keys
// yield "".
func (r Record) Get(key string) string {
	n, err := strconv.Atoi(key)
	if err != nil {
		return ""
	}
	switch {
	case n == 1:
		return r.Length
	case n == 2:
		return r.Type
	case n == 3 && r.IsError():
		return r.Message
	case n == 3:
		return r.Flag
	}
	if i := n - firstGroupField; i >= 0 && i < len(r.Fields) {
		return r.Fields[i]
	}
	return ""
}

// Map returns the record keyed the way Get reads it.
func (r Record) Map() map[string]string {
	m := map[string]string{
		"01": r.Length,
		"02": r.Type,
	}
	if r.IsError() {
		m["03"] = r.Message
	} else {
		m["03"] = r.Flag
	}
	for i, v := range r.Fields {
		m[fieldKey(firstGroupField+i)] = v
	}
	return m
}

// RecordSet holds every record of one type in the order they were
// received.
type RecordSet []Record

// First returns the first record of the set.
func (s RecordSet) First() (Record, bool) {
	if len(s) == 0 {
		return Record{}, false
	}
	return s[0], true
}

// Populated returns the records carrying type-specific fields.
func (s RecordSet) Populated() RecordSet {
	var out RecordSet
	for _, r := range s {
		if r.Populated() {
			out = append(out, r)
		}
	}
	return out
}

// Response is a decoded consultation reply.
type Response struct {
	Header Header
	// Records maps a type code to every record of that type.
	Records map[string]RecordSet

	raw   string
	clean string
}

// Get returns the records of the given type, or nil if there are none.
func (r *Response) Get(code string) RecordSet {
	return r.Records[code]
}

// Has reports whether a record of the given type was received with a
// flag other than "N".
func (r *Response) Has(code string) bool {
	for _, rec := range r.Records[code] {
		if rec.Flag != "N" {
			return true
		}
	}
	return false
}

// Types returns the type codes present in the response, sorted.
func (r *Response) Types() []string {
	codes := make([]string, 0, len(r.Records))
	for code := range r.Records {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Raw returns the text the response was decoded from.
func (r *Response) Raw() string {
	return r.raw
}

// Text returns the payload left after Clean.
func (r *Response) Text() string {
	return r.clean
}

// Err returns a *RejectionError if the response carries an error
// record and nil otherwise.
func (r *Response) Err() error {
	rec, ok := r.Records[ErrorType].First()
	if !ok {
		return nil
	}
	return &RejectionError{Type: rec.Type, Message: rec.Message}
}
