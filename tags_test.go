package boavista

import (
	"reflect"
	"testing"
)

func TestParseTag(t *testing.T) {
	for _, tt := range []struct {
		name     string
		tag      string
		startPos int
		endPos   int
		ok       bool
	}{
		{"Valid Tag", "1,10", 1, 10, true},
		{"Valid Tag Single position", "5,5", 5, 5, true},
		{"Tag Empty", "", 0, 0, false},
		{"Tag Too short", "1", 0, 0, false},
		{"Tag Too Long", "1,10,right", 0, 0, false},
		{"StartPos Not Integer", "hello,3", 0, 0, false},
		{"EndPos Not Integer", "3,hello", 0, 0, false},
		{"Tag Contains a Space", "4, 11", 0, 0, false},
		{"Tag Interval Invalid", "14,5", 0, 0, false},
		{"Tag Starts At Zero", "0,10", 0, 0, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			startPos, endPos, ok := parseTag(tt.tag)
			if tt.ok != ok {
				t.Errorf("parseTag() ok want %v, have %v", tt.ok, ok)
			}

			// only check startPos and endPos if valid tags are expected
			if tt.ok {
				if tt.startPos != startPos {
					t.Errorf("parseTag() startPos want %v, have %v", tt.startPos, startPos)
				}
				if tt.endPos != endPos {
					t.Errorf("parseTag() endPos want %v, have %v", tt.endPos, endPos)
				}
			}
		})
	}
}

func TestCachedStructSpec(t *testing.T) {
	spec := cachedStructSpec(reflect.TypeOf(Header{}))
	if spec.ll != 71 {
		t.Errorf("Header length want 71, have %d", spec.ll)
	}
	if len(spec.fieldSpecs) != 11 {
		t.Errorf("Header fields want 11, have %d", len(spec.fieldSpecs))
	}

	// Fields must tile the header with no gap or overlap.
	next := 1
	for _, fs := range spec.fieldSpecs {
		if fs.startPos != next {
			t.Errorf("field %d starts at %d, want %d", fs.index, fs.startPos, next)
		}
		next = fs.endPos + 1
	}

	if again := cachedStructSpec(reflect.TypeOf(Header{})); !reflect.DeepEqual(spec, again) {
		t.Errorf("cachedStructSpec() should return the cached spec")
	}
}

func TestReadStruct(t *testing.T) {
	type block struct {
		A       string `fixed:"1,3"`
		B       string `fixed:"4,6"`
		Ignored int    `fixed:"7,9"`
		NoTag   string
	}

	c := newCursor(newRawValue(">>abc 12   tail", false))
	c.pos = 2

	var b block
	readStruct(c, &b)

	if b.A != "abc" || b.B != "12" || b.NoTag != "" {
		t.Errorf("readStruct() unexpected %+v", b)
	}
	if c.pos != 8 {
		t.Errorf("readStruct() pos want 8, have %d", c.pos)
	}
}
