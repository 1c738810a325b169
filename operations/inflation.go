package operations

import "github.com/stellar/go/xdr"

// InflationOperation runs the network's (now retired) inflation mechanism.
// It carries no payload; its wire body is the bare inflation tag.
type InflationOperation struct {
	baseOperation
}

func (op InflationOperation) toOperationBody() (xdr.OperationBody, error) {
	body, err := xdr.NewOperationBody(xdr.OperationTypeInflation, nil)
	if err != nil {
		return xdr.OperationBody{}, &EncodingError{Field: "operation body", Err: err}
	}
	return body, nil
}

func inflationFromXDR(sourceAccount string) InflationOperation {
	return InflationOperation{baseOperation{sourceAccount: sourceAccount}}
}

// InflationBuilder accumulates the fields of an InflationOperation. The
// only field is the shared source account override.
type InflationBuilder struct {
	sourceAccount string
}

// Inflation returns a fresh builder for an inflation operation.
func Inflation() *InflationBuilder { return &InflationBuilder{} }

// WithSourceAccount sets the operation-level source account override.
func (b *InflationBuilder) WithSourceAccount(address string) *InflationBuilder {
	b.sourceAccount = address
	return b
}

// Build finalizes the builder. Inflation has no required fields, so Build
// never fails; the error return keeps the builder contract uniform.
func (b *InflationBuilder) Build() (Operation, error) {
	return NewInflation(InflationOperation{baseOperation{sourceAccount: b.sourceAccount}}), nil
}
