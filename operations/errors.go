package operations

import (
	"fmt"

	"github.com/stellar/go/xdr"
)

// ConstructionError is returned by a builder's Build when a field the
// protocol requires was never supplied.
type ConstructionError struct {
	Operation string
	Field     string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s operation: required field %q not set", e.Operation, e.Field)
}

// EncodingError wraps a failure reported by the XDR codec while converting
// a domain value to its wire form.
type EncodingError struct {
	Field string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding %s: %v", e.Field, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError wraps a failure reported by the XDR codec while converting
// wire bytes back to a domain value.
type DecodingError struct {
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Field, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// UnsupportedOperationKindError is returned when a wire operation carries a
// protocol-valid body tag that has no domain variant yet. The operation is
// recognized, not lost: callers get the tag back and can decide what to do.
type UnsupportedOperationKindError struct {
	Kind xdr.OperationType
}

func (e *UnsupportedOperationKindError) Error() string {
	return fmt.Sprintf("operation kind %s (%d) is not supported yet", e.Kind.String(), int32(e.Kind))
}
