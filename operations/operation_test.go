package operations

import (
	"encoding/base64"
	"testing"

	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed test accounts, reused across the package tests.
const (
	testAccount0 = "GDQNY3PBOJOKYZSRMK2S7LHHGWZIUISD4QORETLMXEWXBI7KFZZMKTL3"
	testAccount1 = "GAS4V4O2B7DW5T7IQRPEEVCRXMDZESKISR7DVIGKZQYYV3OSQ5SH5LVP"
	testAccount2 = "GB7BDSZU2Y27LYNLALKKALB52WS2IZWYBDGY6EQBLEED3TJOCVMZRH7H"
)

func TestInflationNoSourceKnownBytes(t *testing.T) {
	op, err := Inflation().Build()
	require.NoError(t, err)

	encoded, err := op.MarshalBinary()
	require.NoError(t, err)

	// No source account (0x00000000) followed by body tag 9.
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 9}, encoded)
	assert.Equal(t, "AAAAAAAAAAk=", base64.StdEncoding.EncodeToString(encoded))

	decoded, n, err := DecodeOperation(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, op, decoded)
}

func TestInflationWithSourceKnownBytes(t *testing.T) {
	op, err := Inflation().WithSourceAccount(testAccount0).Build()
	require.NoError(t, err)

	encoded, err := op.Base64()
	require.NoError(t, err)
	assert.Equal(t, "AAAAAQAAAADg3G3hclysZlFitS+s5zWyiiJD5B0STWy5LXCj6i5yxQAAAAk=", encoded)

	decoded, err := OperationFromBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, op, decoded)
	assert.Equal(t, testAccount0, decoded.SourceAccount())
}

func buildAllKinds(t *testing.T, sourceAccount string) map[string]Operation {
	t.Helper()
	ops := map[string]Operation{}
	var err error

	b1 := CreateAccount().WithDestination(testAccount1).WithStartingBalance(100_0000000)
	if sourceAccount != "" {
		b1.WithSourceAccount(sourceAccount)
	}
	ops["create account"], err = b1.Build()
	require.NoError(t, err)

	b2 := Payment().
		WithDestination(testAccount1).
		WithAsset(CreditAsset("USD", testAccount2)).
		WithAmount(25_5000000)
	if sourceAccount != "" {
		b2.WithSourceAccount(sourceAccount)
	}
	ops["payment"], err = b2.Build()
	require.NoError(t, err)

	b3 := PathPaymentStrictReceive().
		WithDestination(testAccount1).
		WithSendAsset(NativeAsset()).
		WithSendMax(50_0000000).
		WithDestinationAsset(CreditAsset("LONGCODE12", testAccount2)).
		WithDestinationAmount(10_0000000).
		WithPath(CreditAsset("EUR", testAccount2), NativeAsset())
	if sourceAccount != "" {
		b3.WithSourceAccount(sourceAccount)
	}
	ops["path payment strict receive"], err = b3.Build()
	require.NoError(t, err)

	b4 := AccountMerge().WithDestination(testAccount1)
	if sourceAccount != "" {
		b4.WithSourceAccount(sourceAccount)
	}
	ops["account merge"], err = b4.Build()
	require.NoError(t, err)

	b5 := Inflation()
	if sourceAccount != "" {
		b5.WithSourceAccount(sourceAccount)
	}
	ops["inflation"], err = b5.Build()
	require.NoError(t, err)

	return ops
}

func TestRoundTripAllKinds(t *testing.T) {
	for _, sourceAccount := range []string{"", testAccount0} {
		name := "default source"
		if sourceAccount != "" {
			name = "source override"
		}
		t.Run(name, func(t *testing.T) {
			for kind, op := range buildAllKinds(t, sourceAccount) {
				t.Run(kind, func(t *testing.T) {
					wire, err := op.ToXDR()
					require.NoError(t, err)
					back, err := OperationFromXDR(wire)
					require.NoError(t, err)
					assert.Equal(t, op, back)

					encoded, err := op.MarshalBinary()
					require.NoError(t, err)
					decoded, n, err := DecodeOperation(encoded)
					require.NoError(t, err)
					assert.Equal(t, len(encoded), n)
					assert.Equal(t, op, decoded)
					assert.Equal(t, sourceAccount, decoded.SourceAccount())
				})
			}
		})
	}
}

func TestNarrowingExclusivity(t *testing.T) {
	for kind, op := range buildAllKinds(t, "") {
		t.Run(kind, func(t *testing.T) {
			predicates := []bool{
				op.IsCreateAccount(),
				op.IsPayment(),
				op.IsPathPaymentStrictReceive(),
				op.IsAccountMerge(),
				op.IsInflation(),
			}
			trueCount := 0
			for _, p := range predicates {
				if p {
					trueCount++
				}
			}
			assert.Equal(t, 1, trueCount)
		})
	}
}

func TestNarrowing(t *testing.T) {
	op, err := Payment().
		WithDestination(testAccount1).
		WithAsset(NativeAsset()).
		WithAmount(7).
		Build()
	require.NoError(t, err)

	payment, ok := op.Payment()
	require.True(t, ok)
	assert.Equal(t, testAccount1, payment.Destination())
	assert.Equal(t, int64(7), payment.Amount())
	assert.True(t, payment.Asset().IsNative())

	// Narrowing to the wrong kind yields an empty result, not an error.
	_, ok = op.CreateAccount()
	assert.False(t, ok)
	_, ok = op.Inflation()
	assert.False(t, ok)
}

func TestSourceAccountDefaultOmitted(t *testing.T) {
	op, err := AccountMerge().WithDestination(testAccount1).Build()
	require.NoError(t, err)
	assert.Equal(t, "", op.SourceAccount())

	wire, err := op.ToXDR()
	require.NoError(t, err)
	assert.Nil(t, wire.SourceAccount)
}

func TestUnsupportedOperationKinds(t *testing.T) {
	unmodeled := []xdr.OperationType{
		xdr.OperationTypeManageSellOffer,
		xdr.OperationTypeCreatePassiveSellOffer,
		xdr.OperationTypeSetOptions,
		xdr.OperationTypeChangeTrust,
		xdr.OperationTypeAllowTrust,
		xdr.OperationTypeManageData,
		xdr.OperationTypeBumpSequence,
		xdr.OperationTypeManageBuyOffer,
		xdr.OperationTypePathPaymentStrictSend,
	}
	for _, kind := range unmodeled {
		t.Run(kind.String(), func(t *testing.T) {
			_, err := OperationFromXDR(xdr.Operation{Body: xdr.OperationBody{Type: kind}})
			var unsupported *UnsupportedOperationKindError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, kind, unsupported.Kind)
		})
	}
}

func TestUnsupportedOperationKindFromBytes(t *testing.T) {
	body, err := xdr.NewOperationBody(xdr.OperationTypeBumpSequence, xdr.BumpSequenceOp{BumpTo: 42})
	require.NoError(t, err)
	raw, err := xdr.Operation{Body: body}.MarshalBinary()
	require.NoError(t, err)

	_, _, err = DecodeOperation(raw)
	var unsupported *UnsupportedOperationKindError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, xdr.OperationTypeBumpSequence, unsupported.Kind)
	assert.Contains(t, err.Error(), "not supported")
}

func TestSequentialDecode(t *testing.T) {
	first, err := Inflation().WithSourceAccount(testAccount0).Build()
	require.NoError(t, err)
	second, err := Payment().
		WithDestination(testAccount1).
		WithAsset(NativeAsset()).
		WithAmount(3_0000000).
		Build()
	require.NoError(t, err)

	b1, err := first.MarshalBinary()
	require.NoError(t, err)
	b2, err := second.MarshalBinary()
	require.NoError(t, err)
	buffer := append(append([]byte{}, b1...), b2...)

	got1, n1, err := DecodeOperation(buffer)
	require.NoError(t, err)
	assert.Equal(t, len(b1), n1)
	assert.Equal(t, first, got1)

	got2, n2, err := DecodeOperation(buffer[n1:])
	require.NoError(t, err)
	assert.Equal(t, len(b2), n2)
	assert.Equal(t, second, got2)
}

func TestEncodingErrorBadAddress(t *testing.T) {
	op, err := Payment().
		WithSourceAccount("not-an-address").
		WithDestination(testAccount1).
		WithAsset(NativeAsset()).
		WithAmount(1).
		Build()
	require.NoError(t, err)

	_, err = op.ToXDR()
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "source account", encErr.Field)
}

func TestDecodeTruncatedBuffer(t *testing.T) {
	_, _, err := DecodeOperation([]byte{0, 0, 0})
	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
}
