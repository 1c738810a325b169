package operations

import "github.com/stellar/go/xdr"

// CreateAccountOperation funds a new account with an initial balance.
type CreateAccountOperation struct {
	baseOperation
	destination     string
	startingBalance int64
}

// Destination returns the address of the account to create.
func (op CreateAccountOperation) Destination() string { return op.destination }

// StartingBalance returns the initial balance in stroops.
func (op CreateAccountOperation) StartingBalance() int64 { return op.startingBalance }

func (op CreateAccountOperation) toOperationBody() (xdr.OperationBody, error) {
	var destination xdr.AccountId
	if err := destination.SetAddress(op.destination); err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "destination", Err: err}
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeCreateAccount, xdr.CreateAccountOp{
		Destination:     destination,
		StartingBalance: xdr.Int64(op.startingBalance),
	})
	if err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "operation body", Err: err}
	}
	return body, nil
}

func createAccountFromXDR(sourceAccount string, body xdr.CreateAccountOp) (CreateAccountOperation, error) {
	return CreateAccountOperation{
		baseOperation:   baseOperation{sourceAccount: sourceAccount},
		destination:     body.Destination.Address(),
		startingBalance: int64(body.StartingBalance),
	}, nil
}

// CreateAccountBuilder accumulates the fields of a CreateAccountOperation.
// A builder is single use; Build is the only way to obtain the operation.
type CreateAccountBuilder struct {
	sourceAccount   string
	destination     string
	startingBalance *int64
}

// CreateAccount returns a fresh builder for a create account operation.
func CreateAccount() *CreateAccountBuilder { return &CreateAccountBuilder{} }

// WithSourceAccount sets the operation-level source account override.
func (b *CreateAccountBuilder) WithSourceAccount(address string) *CreateAccountBuilder {
	b.sourceAccount = address
	return b
}

// WithDestination sets the address of the account to create.
func (b *CreateAccountBuilder) WithDestination(address string) *CreateAccountBuilder {
	b.destination = address
	return b
}

// WithStartingBalance sets the initial balance in stroops.
func (b *CreateAccountBuilder) WithStartingBalance(stroops int64) *CreateAccountBuilder {
	b.startingBalance = &stroops
	return b
}

// Build finalizes the builder. It fails with a ConstructionError if a field
// the protocol requires was never set.
func (b *CreateAccountBuilder) Build() (Operation, error) {
	if b.destination == "" {
		return Operation{}, &ConstructionError{Operation: "create account", Field: "destination"}
	}
	if b.startingBalance == nil {
		return Operation{}, &ConstructionError{Operation: "create account", Field: "starting balance"}
	}
	return NewCreateAccount(CreateAccountOperation{
		baseOperation:   baseOperation{sourceAccount: b.sourceAccount},
		destination:     b.destination,
		startingBalance: *b.startingBalance,
	}), nil
}
