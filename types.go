package boavista

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Amount is a monetary value. On the wire it is a digit string whose
// last two digits are the cents, with no separator.
type Amount float64

// String returns the wire form of a, rounded to the cent.
func (a Amount) String() string {
	cents := int64(math.Round(float64(a) * 100))
	return strconv.FormatInt(cents, 10)
}

// MarshalQueryValue implements Marshaler.
func (a Amount) MarshalQueryValue(width int) (string, error) {
	if a < 0 {
		return "", errors.New("negative amount")
	}
	s := a.String()
	if len(s) > width {
		return "", errors.Errorf("amount %s longer than field width %d", s, width)
	}
	return s, nil
}

// ParseAmount reads the wire form of an amount. Leading zeros and
// surrounding spaces are allowed; an empty string is zero.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	cents, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "boavista: invalid amount %q", s)
	}
	return Amount(float64(cents) / 100), nil
}
