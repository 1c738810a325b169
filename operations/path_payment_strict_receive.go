package operations

import "github.com/stellar/go/xdr"

// PathPaymentStrictReceiveOperation sends an asset through a conversion
// path so that the destination receives an exact amount of the destination
// asset, spending at most SendMax of the send asset.
type PathPaymentStrictReceiveOperation struct {
	baseOperation
	destination       string
	sendAsset         Asset
	sendMax           int64
	destinationAsset  Asset
	destinationAmount int64
	path              []Asset
}

// Destination returns the address receiving the payment.
func (op PathPaymentStrictReceiveOperation) Destination() string { return op.destination }

// SendAsset returns the asset debited from the source.
func (op PathPaymentStrictReceiveOperation) SendAsset() Asset { return op.sendAsset }

// SendMax returns the most the source is willing to spend, in stroops.
func (op PathPaymentStrictReceiveOperation) SendMax() int64 { return op.sendMax }

// DestinationAsset returns the asset the destination receives.
func (op PathPaymentStrictReceiveOperation) DestinationAsset() Asset { return op.destinationAsset }

// DestinationAmount returns the exact amount received, in stroops.
func (op PathPaymentStrictReceiveOperation) DestinationAmount() int64 { return op.destinationAmount }

// Path returns a copy of the intermediate conversion assets, in order.
func (op PathPaymentStrictReceiveOperation) Path() []Asset {
	return append([]Asset(nil), op.path...)
}

func (op PathPaymentStrictReceiveOperation) toOperationBody() (xdr.OperationBody, error) {
	var destination xdr.MuxedAccount
	if err := destination.SetAddress(op.destination); err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "destination", Err: err}
	}
	sendAsset, err := op.sendAsset.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAsset, err := op.destinationAsset.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	path := make([]xdr.Asset, 0, len(op.path))
	for _, a := range op.path {
		x, err := a.toXDR()
		if err != nil {
			return xdr.OperationBody{}, err
		}
		path = append(path, x)
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypePathPaymentStrictReceive, xdr.PathPaymentStrictReceiveOp{
		SendAsset:   sendAsset,
		SendMax:     xdr.Int64(op.sendMax),
		Destination: destination,
		DestAsset:   destAsset,
		DestAmount:  xdr.Int64(op.destinationAmount),
		Path:        path,
	})
	if err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "operation body", Err: err}
	}
	return body, nil
}

func pathPaymentStrictReceiveFromXDR(sourceAccount string, body xdr.PathPaymentStrictReceiveOp) (PathPaymentStrictReceiveOperation, error) {
	destination, err := body.Destination.GetAddress()
	if err != nil {
		return PathPaymentStrictReceiveOperation{}, &DecodingError{Field: "destination", Err: err}
	}
	sendAsset, err := assetFromXDR(body.SendAsset)
	if err != nil {
		return PathPaymentStrictReceiveOperation{}, err
	}
	destAsset, err := assetFromXDR(body.DestAsset)
	if err != nil {
		return PathPaymentStrictReceiveOperation{}, err
	}
	var path []Asset
	for _, x := range body.Path {
		a, err := assetFromXDR(x)
		if err != nil {
			return PathPaymentStrictReceiveOperation{}, err
		}
		path = append(path, a)
	}
	return PathPaymentStrictReceiveOperation{
		baseOperation:     baseOperation{sourceAccount: sourceAccount},
		destination:       destination,
		sendAsset:         sendAsset,
		sendMax:           int64(body.SendMax),
		destinationAsset:  destAsset,
		destinationAmount: int64(body.DestAmount),
		path:              path,
	}, nil
}

// PathPaymentStrictReceiveBuilder accumulates the fields of a
// PathPaymentStrictReceiveOperation.
type PathPaymentStrictReceiveBuilder struct {
	sourceAccount     string
	destination       string
	sendAsset         *Asset
	sendMax           *int64
	destinationAsset  *Asset
	destinationAmount *int64
	path              []Asset
}

// PathPaymentStrictReceive returns a fresh builder for a strict-receive
// path payment operation.
func PathPaymentStrictReceive() *PathPaymentStrictReceiveBuilder {
	return &PathPaymentStrictReceiveBuilder{}
}

// WithSourceAccount sets the operation-level source account override.
func (b *PathPaymentStrictReceiveBuilder) WithSourceAccount(address string) *PathPaymentStrictReceiveBuilder {
	b.sourceAccount = address
	return b
}

// WithDestination sets the address receiving the payment.
func (b *PathPaymentStrictReceiveBuilder) WithDestination(address string) *PathPaymentStrictReceiveBuilder {
	b.destination = address
	return b
}

// WithSendAsset sets the asset debited from the source.
func (b *PathPaymentStrictReceiveBuilder) WithSendAsset(asset Asset) *PathPaymentStrictReceiveBuilder {
	b.sendAsset = &asset
	return b
}

// WithSendMax sets the most the source is willing to spend, in stroops.
func (b *PathPaymentStrictReceiveBuilder) WithSendMax(stroops int64) *PathPaymentStrictReceiveBuilder {
	b.sendMax = &stroops
	return b
}

// WithDestinationAsset sets the asset the destination receives.
func (b *PathPaymentStrictReceiveBuilder) WithDestinationAsset(asset Asset) *PathPaymentStrictReceiveBuilder {
	b.destinationAsset = &asset
	return b
}

// WithDestinationAmount sets the exact amount received, in stroops.
func (b *PathPaymentStrictReceiveBuilder) WithDestinationAmount(stroops int64) *PathPaymentStrictReceiveBuilder {
	b.destinationAmount = &stroops
	return b
}

// WithPath sets the intermediate conversion assets. The protocol allows at
// most five; an empty path is valid.
func (b *PathPaymentStrictReceiveBuilder) WithPath(assets ...Asset) *PathPaymentStrictReceiveBuilder {
	b.path = append([]Asset(nil), assets...)
	return b
}

// Build finalizes the builder. It fails with a ConstructionError if a field
// the protocol requires was never set.
func (b *PathPaymentStrictReceiveBuilder) Build() (Operation, error) {
	if b.destination == "" {
		return Operation{}, &ConstructionError{Operation: "path payment strict receive", Field: "destination"}
	}
	if b.sendAsset == nil {
		return Operation{}, &ConstructionError{Operation: "path payment strict receive", Field: "send asset"}
	}
	if b.sendMax == nil {
		return Operation{}, &ConstructionError{Operation: "path payment strict receive", Field: "send max"}
	}
	if b.destinationAsset == nil {
		return Operation{}, &ConstructionError{Operation: "path payment strict receive", Field: "destination asset"}
	}
	if b.destinationAmount == nil {
		return Operation{}, &ConstructionError{Operation: "path payment strict receive", Field: "destination amount"}
	}
	return NewPathPaymentStrictReceive(PathPaymentStrictReceiveOperation{
		baseOperation:     baseOperation{sourceAccount: b.sourceAccount},
		destination:       b.destination,
		sendAsset:         *b.sendAsset,
		sendMax:           *b.sendMax,
		destinationAsset:  *b.destinationAsset,
		destinationAmount: *b.destinationAmount,
		path:              b.path,
	}), nil
}
