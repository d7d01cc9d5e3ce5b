package boavista

import "unicode/utf8"

// Field is a slot of the request record.
type Field struct {
	// Key identifies the query value written to the slot. Filler
	// fields have no key.
	Key     string
	Width   int
	Kind    Kind
	Default string
}

func text(key string, width int, def ...string) Field {
	return Field{Key: key, Width: width, Kind: Text, Default: first(def)}
}

func numeric(key string, width int, def ...string) Field {
	return Field{Key: key, Width: width, Kind: Numeric, Default: first(def)}
}

func filler(width int) Field {
	return Field{Width: width, Kind: Filler}
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

var (
	headerFields = Fields{
		text("01", 8, "CSR60"),
		text("02", 2, "01"),
		text("03", 10),
		text("04", 20),
		numeric("05", 8),
		text("06", 8),
		text("07", 8, "BVSNET4F"),
		text("08", 2, "06"),
		text("09", 1, "2"),
		text("10", 1, "T"),
		text("11", 1, "1"),
		numeric("12", 14),
		text("13", 2),
		text("14", 2, "XX"),
		text("15", 1),
	}

	// Cheque information read by a CMC7 reader (field 15 is "C").
	chequeReaderFields = Fields{
		numeric("16.1", 8),
		numeric("16.2", 10),
		numeric("16.3", 12),
		text("16.4", 3),
	}

	// Cheque information typed in by hand.
	chequeTypedFields = Fields{
		numeric("16.1", 3),
		numeric("16.2", 5),
		numeric("16.3", 15),
		numeric("16.4", 1),
		numeric("16.5", 8),
		numeric("16.6", 1),
	}

	amountFields = Fields{
		numeric("17", 8),
		numeric("18", 2, "1"),
		numeric("19", 11),
		text("20", 1, "N"),
	}

	confirmationFields = Fields{
		text("21.1", 2, "07"),
		text("21.2", 1, "N"),
		numeric("21.3", 4),
		filler(63),
	}

	noConfirmationFields = Fields{
		filler(70),
	}

	trailerFields = Fields{
		numeric("22", 8),
		numeric("23", 4),
		numeric("24", 9),
		numeric("25", 8),
		numeric("26", 8),
		text("27", 1),
		text("28", 1, EndOfText),
	}
)

// Fields is an ordered request layout.
type Fields []Field

// Layout returns the fields the encoder writes for q, with both
// conditional blocks resolved.
func Layout(q Query) Fields {
	var fs Fields
	fs = append(fs, headerFields...)
	if q.value("15", "") == ChequeReader {
		fs = append(fs, chequeReaderFields...)
	} else {
		fs = append(fs, chequeTypedFields...)
	}
	fs = append(fs, amountFields...)
	if q.value("20", "N") == ConfirmationRequested {
		fs = append(fs, confirmationFields...)
	} else {
		fs = append(fs, noConfirmationFields...)
	}
	return append(fs, trailerFields...)
}

// Len returns the declared width of the layout.
func (fs Fields) Len() int {
	var n int
	for _, f := range fs {
		n += f.Width
	}
	return n
}

// Lookup returns the field stored under key.
func (fs Fields) Lookup(key string) (Field, bool) {
	for _, f := range fs {
		if f.Key != "" && f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Offset returns the 0-based position of the field stored under key,
// assuming every preceding value fits its width. ok is false if the
// layout has no such field.
func (fs Fields) Offset(key string) (offset int, ok bool) {
	for _, f := range fs {
		if f.Key != "" && f.Key == key {
			return offset, true
		}
		offset += f.Width
	}
	return 0, false
}

// Validate returns a *WidthError for the first value of q, in layout
// order, that has more characters than its field. Defaults are not
// checked; the end of text marker is wider than its field on purpose.
func (fs Fields) Validate(q Query) error {
	for _, f := range fs {
		if f.Kind == Filler {
			continue
		}
		if v := q.value(f.Key, ""); utf8.RuneCountInString(v) > f.Width {
			return &WidthError{Key: f.Key, Width: f.Width, Value: v}
		}
	}
	return nil
}
