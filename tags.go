package boavista

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// parseTag splits a struct fields fixed tag into its start and end positions.
// If the tag is not valid, ok will be false.
func parseTag(tag string) (startPos, endPos int, ok bool) {
	parts := strings.Split(tag, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	var err error
	if startPos, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, false
	}
	if endPos, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, false
	}
	if startPos < 1 || startPos > endPos {
		return 0, 0, false
	}

	return startPos, endPos, true
}

type structSpec struct {
	// ll is the length of the block described by the struct.
	ll         int
	fieldSpecs []fieldSpec
}

type fieldSpec struct {
	index            int
	startPos, endPos int
}

// buildStructSpec collects the tagged string fields of t. Fields without
// a valid tag or of any other kind are ignored.
func buildStructSpec(t reflect.Type) structSpec {
	var ss structSpec
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.String {
			continue
		}
		startPos, endPos, ok := parseTag(f.Tag.Get("fixed"))
		if !ok {
			continue
		}
		if endPos > ss.ll {
			ss.ll = endPos
		}
		ss.fieldSpecs = append(ss.fieldSpecs, fieldSpec{
			index:    i,
			startPos: startPos,
			endPos:   endPos,
		})
	}
	return ss
}

var structSpecCache sync.Map // map[reflect.Type]structSpec

// cachedStructSpec is like buildStructSpec but cached to prevent duplicate work.
func cachedStructSpec(t reflect.Type) structSpec {
	if s, ok := structSpecCache.Load(t); ok {
		return s.(structSpec)
	}
	s, _ := structSpecCache.LoadOrStore(t, buildStructSpec(t))
	return s.(structSpec)
}

// readStruct fills the tagged fields of the struct pointed to by v from
// the cursor's current position and advances the cursor past the block.
func readStruct(c *cursor, v interface{}) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	spec := cachedStructSpec(rv.Type())

	base := c.pos
	for _, fs := range spec.fieldSpecs {
		rv.Field(fs.index).SetString(c.at(base, fs.startPos, fs.endPos))
	}
	c.pos = base + spec.ll
}
