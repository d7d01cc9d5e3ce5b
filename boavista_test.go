package boavista

import (
	"os"
	"path/filepath"
	"testing"
)

// readFixture returns the contents of a file under testdata.
func readFixture(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(data)
}

// pad right-pads s with spaces to width.
func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// header returns a 71 byte response header with the given return code.
func header(returnCode string) string {
	return "CSR61   01" + pad("", 30) + "00000045BVSNET4F06" + "2" + returnCode + "0000001" + "0000"
}
