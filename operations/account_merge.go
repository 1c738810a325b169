package operations

import "github.com/stellar/go/xdr"

// AccountMergeOperation transfers the entire balance of the source account
// to the destination and removes the source from the ledger.
type AccountMergeOperation struct {
	baseOperation
	destination string
}

// Destination returns the address absorbing the merged account.
func (op AccountMergeOperation) Destination() string { return op.destination }

func (op AccountMergeOperation) toOperationBody() (xdr.OperationBody, error) {
	var destination xdr.MuxedAccount
	if err := destination.SetAddress(op.destination); err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "destination", Err: err}
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeAccountMerge, destination)
	if err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "operation body", Err: err}
	}
	return body, nil
}

func accountMergeFromXDR(sourceAccount string, destination xdr.MuxedAccount) (AccountMergeOperation, error) {
	addr, err := destination.GetAddress()
	if err != nil {
		return AccountMergeOperation{}, &DecodingError{Field: "destination", Err: err}
	}
	return AccountMergeOperation{
		baseOperation: baseOperation{sourceAccount: sourceAccount},
		destination:   addr,
	}, nil
}

// AccountMergeBuilder accumulates the fields of an AccountMergeOperation.
type AccountMergeBuilder struct {
	sourceAccount string
	destination   string
}

// AccountMerge returns a fresh builder for an account merge operation.
func AccountMerge() *AccountMergeBuilder { return &AccountMergeBuilder{} }

// WithSourceAccount sets the operation-level source account override.
func (b *AccountMergeBuilder) WithSourceAccount(address string) *AccountMergeBuilder {
	b.sourceAccount = address
	return b
}

// WithDestination sets the address absorbing the merged account.
func (b *AccountMergeBuilder) WithDestination(address string) *AccountMergeBuilder {
	b.destination = address
	return b
}

// Build finalizes the builder. It fails with a ConstructionError if the
// destination was never set.
func (b *AccountMergeBuilder) Build() (Operation, error) {
	if b.destination == "" {
		return Operation{}, &ConstructionError{Operation: "account merge", Field: "destination"}
	}
	return NewAccountMerge(AccountMergeOperation{
		baseOperation: baseOperation{sourceAccount: b.sourceAccount},
		destination:   b.destination,
	}), nil
}
