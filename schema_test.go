package boavista

import (
	"reflect"
	"strconv"
	"testing"
)

func TestGroups(t *testing.T) {
	all := Groups()
	if len(all) != 35 {
		t.Errorf("Groups() want 35 entries, have %d", len(all))
	}
	for i, g := range all {
		if i > 0 && all[i-1].Code >= g.Code {
			t.Errorf("Groups() not sorted at %s", g.Code)
		}
		if len(g.Code) != 3 || g.Name == "" || len(g.Widths) == 0 {
			t.Errorf("group %q incomplete: %+v", g.Code, g)
		}
		for _, w := range g.Widths {
			if w < 1 || w > 200 {
				t.Errorf("group %s width %d out of range", g.Code, w)
			}
		}
	}
	if _, ok := LookupGroup(ErrorType); ok {
		t.Errorf("LookupGroup(999) should not be in the table")
	}
}

// groupWidths is every entry of the table, written out by hand.
var groupWidths = []struct {
	code   string
	widths []int
	len    int
}{
	{"100", []int{11, 11, 5}, 27},
	{"101", []int{10, 50, 4}, 64},
	{"111", []int{5, 8, 8}, 21},
	{"123", []int{79, 2}, 81},
	{"124", []int{2, 22, 8, 8, 4, 11, 1, 36, 1, 30, 2, 1}, 126},
	{"126", []int{2, 8, 36}, 46},
	{"127", []int{4, 9}, 13},
	{"128", []int{5, 90}, 95},
	{"141", []int{8, 8, 8, 4, 13}, 41},
	{"142", []int{2, 8, 8, 4, 11, 30, 2}, 65},
	{"146", []int{8, 2, 8, 8, 4, 13}, 43},
	{"211", []int{1, 1, 14, 3, 4, 15, 8, 2, 8, 8, 36, 1}, 101},
	{"212", []int{3, 4, 15, 1, 14}, 37},
	{"213", []int{1, 14, 1}, 16},
	{"219", []int{14, 3, 4, 15, 8, 8, 1, 1}, 54},
	{"222", []int{14, 55, 55, 1, 10}, 135},
	{"223", []int{4, 9, 1, 14, 60, 50, 28, 8, 30, 2}, 206},
	{"224", []int{3, 40, 4, 40, 55, 30, 8, 30, 2, 4, 2, 9, 9, 40}, 276},
	{"227", []int{8, 60, 28, 30, 2}, 128},
	{"242", []int{1, 14, 50, 3, 4, 3, 8, 3, 8, 3, 8, 3, 8}, 116},
	{"244", []int{1, 14, 3, 4, 15, 8, 8, 2, 8, 8, 4, 11, 36, 20, 2}, 144},
	{"245", []int{1, 14, 3, 4, 15, 8, 8, 2, 8, 8, 4, 11, 36}, 122},
	{"246", []int{1, 14, 3, 4, 15, 8, 8, 6, 1}, 60},
	{"247", []int{3, 4, 15, 1, 14, 8, 6}, 51},
	{"249", []int{60, 11, 8, 50, 13, 1, 8, 6, 20}, 177},
	{"254", []int{1, 14, 5, 8, 8}, 36},
	{"256", []int{1, 14, 5, 8, 8}, 36},
	{"268", []int{1, 14, 5, 8, 8}, 36},
	{"300", []int{5, 4, 17, 8, 8}, 42},
	{"301", []int{2, 50, 25, 8, 8, 20, 2, 4, 15, 1, 1, 14}, 150},
	{"303", []int{5, 8, 8}, 21},
	{"304", []int{2, 8, 40}, 50},
	{"601", []int{1, 4, 1, 2, 40, 2, 40, 2, 1, 5, 200, 3, 55, 90}, 446},
	{"901", []int{1, 130}, 131},
	{"940", []int{3, 200}, 203},
}

func TestLookupGroup(t *testing.T) {
	for _, tt := range groupWidths {
		t.Run(tt.code, func(t *testing.T) {
			g, ok := LookupGroup(tt.code)
			if !ok {
				t.Fatalf("LookupGroup(%s) not found", tt.code)
			}
			if !reflect.DeepEqual(g.Widths, tt.widths) {
				t.Errorf("LookupGroup(%s) widths want %v, have %v", tt.code, tt.widths, g.Widths)
			}
			if g.Len() != tt.len {
				t.Errorf("LookupGroup(%s).Len() want %d, have %d", tt.code, tt.len, g.Len())
			}
		})
	}
}

func TestLookupGroup_AllPinned(t *testing.T) {
	if len(groupWidths) != len(Groups()) {
		t.Fatalf("pinned %d groups, table has %d", len(groupWidths), len(Groups()))
	}
}

// The declared length of a record counts its type, its flag and its
// group fields.
func TestGroup_LenMatchesFixture(t *testing.T) {
	resp := Parse(readFixture(t, "response.txt"))
	for code, set := range resp.Records {
		g, ok := LookupGroup(code)
		if !ok {
			t.Fatalf("fixture type %s not in the table", code)
		}
		for _, rec := range set {
			want := 4
			if rec.Populated() {
				want += g.Len()
			}
			if have, _ := strconv.Atoi(rec.Length); have != want {
				t.Errorf("record %s length want %d, have %s", code, want, rec.Length)
			}
		}
	}
}

func TestGroup_Keys(t *testing.T) {
	g, _ := LookupGroup("111")
	if have := g.Keys(); !reflect.DeepEqual(have, []string{"04", "05", "06"}) {
		t.Errorf("Keys() have %v", have)
	}
}

func TestLookupGroup_ReadOnly(t *testing.T) {
	g, _ := LookupGroup("127")
	g.Widths[0] = 99

	again, _ := LookupGroup("127")
	if again.Widths[0] != 4 {
		t.Errorf("mutating a looked up group changed the table")
	}
}
