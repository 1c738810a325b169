package operations

import "github.com/stellar/go/xdr"

// PaymentOperation sends an amount of an asset to a destination account.
type PaymentOperation struct {
	baseOperation
	destination string
	asset       Asset
	amount      int64
}

// Destination returns the address receiving the payment.
func (op PaymentOperation) Destination() string { return op.destination }

// Asset returns the asset being sent.
func (op PaymentOperation) Asset() Asset { return op.asset }

// Amount returns the amount in stroops.
func (op PaymentOperation) Amount() int64 { return op.amount }

func (op PaymentOperation) toOperationBody() (xdr.OperationBody, error) {
	var destination xdr.MuxedAccount
	if err := destination.SetAddress(op.destination); err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "destination", Err: err}
	}
	asset, err := op.asset.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypePayment, xdr.PaymentOp{
		Destination: destination,
		Asset:       asset,
		Amount:      xdr.Int64(op.amount),
	})
	if err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "operation body", Err: err}
	}
	return body, nil
}

func paymentFromXDR(sourceAccount string, body xdr.PaymentOp) (PaymentOperation, error) {
	destination, err := body.Destination.GetAddress()
	if err != nil {
		return PaymentOperation{}, &DecodingError{Field: "destination", Err: err}
	}
	asset, err := assetFromXDR(body.Asset)
	if err != nil {
		return PaymentOperation{}, err
	}
	return PaymentOperation{
		baseOperation: baseOperation{sourceAccount: sourceAccount},
		destination:   destination,
		asset:         asset,
		amount:        int64(body.Amount),
	}, nil
}

// PaymentBuilder accumulates the fields of a PaymentOperation.
type PaymentBuilder struct {
	sourceAccount string
	destination   string
	asset         *Asset
	amount        *int64
}

// Payment returns a fresh builder for a payment operation.
func Payment() *PaymentBuilder { return &PaymentBuilder{} }

// WithSourceAccount sets the operation-level source account override.
func (b *PaymentBuilder) WithSourceAccount(address string) *PaymentBuilder {
	b.sourceAccount = address
	return b
}

// WithDestination sets the address receiving the payment.
func (b *PaymentBuilder) WithDestination(address string) *PaymentBuilder {
	b.destination = address
	return b
}

// WithAsset sets the asset being sent.
func (b *PaymentBuilder) WithAsset(asset Asset) *PaymentBuilder {
	b.asset = &asset
	return b
}

// WithAmount sets the amount in stroops.
func (b *PaymentBuilder) WithAmount(stroops int64) *PaymentBuilder {
	b.amount = &stroops
	return b
}

// Build finalizes the builder. It fails with a ConstructionError if a field
// the protocol requires was never set.
func (b *PaymentBuilder) Build() (Operation, error) {
	if b.destination == "" {
		return Operation{}, &ConstructionError{Operation: "payment", Field: "destination"}
	}
	if b.asset == nil {
		return Operation{}, &ConstructionError{Operation: "payment", Field: "asset"}
	}
	if b.amount == nil {
		return Operation{}, &ConstructionError{Operation: "payment", Field: "amount"}
	}
	return NewPayment(PaymentOperation{
		baseOperation: baseOperation{sourceAccount: b.sourceAccount},
		destination:   b.destination,
		asset:         *b.asset,
		amount:        *b.amount,
	}), nil
}
