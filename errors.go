package boavista

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRejected is the cause of every RejectionError.
var ErrRejected = errors.New("boavista: consultation rejected")

// A RejectionError describes a consultation the service refused. It
// carries the message of the error record.
type RejectionError struct {
	Type    string // type code of the error record
	Message string // reason given by the service
}

func (e *RejectionError) Error() string {
	return "boavista: consultation rejected (" + e.Type + "): " + e.Message
}

// Cause returns ErrRejected.
func (e *RejectionError) Cause() error {
	return ErrRejected
}

// Unwrap returns ErrRejected.
func (e *RejectionError) Unwrap() error {
	return ErrRejected
}

// A WidthError describes a query value longer than its field.
type WidthError struct {
	Key   string
	Width int
	Value string
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("boavista: value %q for field %s exceeds width %d", e.Value, e.Key, e.Width)
}
