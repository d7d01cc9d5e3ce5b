// Package boavista provides encoding and decoding for the positional
// text records exchanged with the SCPC Boa Vista consultation service.
//
// A consultation is a single fixed-width request string built from a
// sparse Query. The reply is a fixed-width header followed by a
// sequence of self-describing records, each tagged with a three digit
// type code whose field layout is looked up in a static group table.
package boavista

const (
	// ErrorType is the type code of the record the service sends when
	// a consultation is rejected.
	ErrorType = "999"

	// Populated is the presence flag marking a record whose
	// type-specific fields follow.
	Populated = "S"

	// ChequeReader is the value of field 15 selecting the CMC7 reader
	// layout for the cheque information block.
	ChequeReader = "C"

	// ConfirmationRequested is the value of field 20 selecting the
	// confirmation block.
	ConfirmationRequested = "S"

	// EndOfText is the default value of the trailing field 28.
	EndOfText = `X"0D"`
)

// Marshaler is the interface implemented by values that can render
// themselves as a request field value.
//
// MarshalQueryValue is provided the declared width of the field. The
// returned value is padded by the encoder but never truncated.
type Marshaler interface {
	MarshalQueryValue(width int) (string, error)
}
