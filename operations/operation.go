// Package operations models the instructions that can appear inside a
// Stellar transaction and converts them losslessly between an in-memory
// representation and the canonical XDR wire encoding. Values are built
// through per-kind builders, inspected through narrowing accessors, and
// serialized with the stellar/go XDR codec.
package operations

import (
	"bytes"
	"encoding/base64"
	"errors"

	"github.com/stellar/go/xdr"
)

// variant is implemented by every concrete operation type.
type variant interface {
	SourceAccount() string
	toOperationBody() (xdr.OperationBody, error)
}

// baseOperation carries the optional per-operation source account override
// shared by every variant. An empty address means "use the transaction's
// default source".
type baseOperation struct {
	sourceAccount string
}

// SourceAccount returns the operation-level source account override, or an
// empty string when the operation uses the transaction's default source.
func (b baseOperation) SourceAccount() string { return b.sourceAccount }

// Operation is the closed union over the supported operation kinds. It
// holds exactly one variant at a time; values are immutable and safe to
// share between goroutines.
type Operation struct {
	variant variant
}

// NewCreateAccount wraps a CreateAccountOperation into an Operation.
func NewCreateAccount(op CreateAccountOperation) Operation { return Operation{variant: op} }

// NewPayment wraps a PaymentOperation into an Operation.
func NewPayment(op PaymentOperation) Operation { return Operation{variant: op} }

// NewPathPaymentStrictReceive wraps a PathPaymentStrictReceiveOperation
// into an Operation.
func NewPathPaymentStrictReceive(op PathPaymentStrictReceiveOperation) Operation {
	return Operation{variant: op}
}

// NewAccountMerge wraps an AccountMergeOperation into an Operation.
func NewAccountMerge(op AccountMergeOperation) Operation { return Operation{variant: op} }

// NewInflation wraps an InflationOperation into an Operation.
func NewInflation(op InflationOperation) Operation { return Operation{variant: op} }

// CreateAccount returns the inner variant if the operation is a create
// account, with ok reporting whether it is.
func (o Operation) CreateAccount() (CreateAccountOperation, bool) {
	op, ok := o.variant.(CreateAccountOperation)
	return op, ok
}

func (o Operation) IsCreateAccount() bool {
	_, ok := o.variant.(CreateAccountOperation)
	return ok
}

// Payment returns the inner variant if the operation is a payment, with ok
// reporting whether it is.
func (o Operation) Payment() (PaymentOperation, bool) {
	op, ok := o.variant.(PaymentOperation)
	return op, ok
}

func (o Operation) IsPayment() bool {
	_, ok := o.variant.(PaymentOperation)
	return ok
}

// PathPaymentStrictReceive returns the inner variant if the operation is a
// strict-receive path payment, with ok reporting whether it is.
func (o Operation) PathPaymentStrictReceive() (PathPaymentStrictReceiveOperation, bool) {
	op, ok := o.variant.(PathPaymentStrictReceiveOperation)
	return op, ok
}

func (o Operation) IsPathPaymentStrictReceive() bool {
	_, ok := o.variant.(PathPaymentStrictReceiveOperation)
	return ok
}

// AccountMerge returns the inner variant if the operation is an account
// merge, with ok reporting whether it is.
func (o Operation) AccountMerge() (AccountMergeOperation, bool) {
	op, ok := o.variant.(AccountMergeOperation)
	return op, ok
}

func (o Operation) IsAccountMerge() bool {
	_, ok := o.variant.(AccountMergeOperation)
	return ok
}

// Inflation returns the inner variant if the operation is an inflation,
// with ok reporting whether it is.
func (o Operation) Inflation() (InflationOperation, bool) {
	op, ok := o.variant.(InflationOperation)
	return op, ok
}

func (o Operation) IsInflation() bool {
	_, ok := o.variant.(InflationOperation)
	return ok
}

// SourceAccount returns the override of whichever variant the operation
// holds, or an empty string when no override is set.
func (o Operation) SourceAccount() string {
	if o.variant == nil {
		return ""
	}
	return o.variant.SourceAccount()
}

// ToXDR converts the operation to its wire record. The optional source
// account and the body are resolved independently; both must succeed or no
// record is returned.
func (o Operation) ToXDR() (xdr.Operation, error) {
	if o.variant == nil {
		return xdr.Operation{}, &EncodingError{Field: "operation", Err: errors.New("no operation variant set")}
	}
	var sourceAccount *xdr.MuxedAccount
	if addr := o.variant.SourceAccount(); addr != "" {
		var muxed xdr.MuxedAccount
		if err := muxed.SetAddress(addr); err != nil {
			return xdr.Operation{}, &EncodingError{Field: "source account", Err: err}
		}
		sourceAccount = &muxed
	}
	body, err := o.variant.toOperationBody()
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{SourceAccount: sourceAccount, Body: body}, nil
}

// OperationFromXDR converts a wire record back to a domain Operation,
// dispatching on the body tag. Tags the protocol defines but this package
// does not model yet yield an UnsupportedOperationKindError instead of
// losing the record silently.
func OperationFromXDR(x xdr.Operation) (Operation, error) {
	var sourceAccount string
	if x.SourceAccount != nil {
		addr, err := x.SourceAccount.GetAddress()
		if err != nil {
			return Operation{}, &DecodingError{Field: "source account", Err: err}
		}
		sourceAccount = addr
	}
	switch x.Body.Type {
	case xdr.OperationTypeCreateAccount:
		op, err := createAccountFromXDR(sourceAccount, x.Body.MustCreateAccountOp())
		if err != nil {
			return Operation{}, err
		}
		return NewCreateAccount(op), nil
	case xdr.OperationTypePayment:
		op, err := paymentFromXDR(sourceAccount, x.Body.MustPaymentOp())
		if err != nil {
			return Operation{}, err
		}
		return NewPayment(op), nil
	case xdr.OperationTypePathPaymentStrictReceive:
		op, err := pathPaymentStrictReceiveFromXDR(sourceAccount, x.Body.MustPathPaymentStrictReceiveOp())
		if err != nil {
			return Operation{}, err
		}
		return NewPathPaymentStrictReceive(op), nil
	case xdr.OperationTypeAccountMerge:
		op, err := accountMergeFromXDR(sourceAccount, x.Body.MustDestination())
		if err != nil {
			return Operation{}, err
		}
		return NewAccountMerge(op), nil
	case xdr.OperationTypeInflation:
		return NewInflation(inflationFromXDR(sourceAccount)), nil
	case xdr.OperationTypeManageSellOffer,
		xdr.OperationTypeCreatePassiveSellOffer,
		xdr.OperationTypeSetOptions,
		xdr.OperationTypeChangeTrust,
		xdr.OperationTypeAllowTrust,
		xdr.OperationTypeManageData,
		xdr.OperationTypeBumpSequence,
		xdr.OperationTypeManageBuyOffer,
		xdr.OperationTypePathPaymentStrictSend:
		// Valid protocol tags pending a domain variant.
		return Operation{}, &UnsupportedOperationKindError{Kind: x.Body.Type}
	default:
		return Operation{}, &UnsupportedOperationKindError{Kind: x.Body.Type}
	}
}

// MarshalBinary encodes the operation to canonical XDR bytes.
func (o Operation) MarshalBinary() ([]byte, error) {
	xop, err := o.ToXDR()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, xop); err != nil {
		return nil, &EncodingError{Field: "operation", Err: err}
	}
	return buf.Bytes(), nil
}

// DecodeOperation decodes one operation from the front of b. The returned
// count is exactly the number of bytes the XDR decoder consumed, so callers
// can parse sequential operations out of a shared buffer.
func DecodeOperation(b []byte) (Operation, int, error) {
	var xop xdr.Operation
	n, err := xdr.Unmarshal(bytes.NewReader(b), &xop)
	if err != nil {
		return Operation{}, n, &DecodingError{Field: "operation", Err: err}
	}
	op, err := OperationFromXDR(xop)
	if err != nil {
		return Operation{}, n, err
	}
	return op, n, nil
}

// Base64 encodes the operation to base64 XDR, the form Horizon and most
// Stellar tooling exchange.
func (o Operation) Base64() (string, error) {
	b, err := o.MarshalBinary()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// OperationFromBase64 decodes an operation from base64 XDR.
func OperationFromBase64(s string) (Operation, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Operation{}, &DecodingError{Field: "operation", Err: err}
	}
	op, _, err := DecodeOperation(raw)
	return op, err
}
