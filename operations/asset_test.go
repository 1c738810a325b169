package operations

import (
	"testing"

	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		asset    Asset
		wantType xdr.AssetType
	}{
		{"native", NativeAsset(), xdr.AssetTypeAssetTypeNative},
		{"alphanum4", CreditAsset("USD", testAccount2), xdr.AssetTypeAssetTypeCreditAlphanum4},
		{"alphanum4 full", CreditAsset("USDC", testAccount2), xdr.AssetTypeAssetTypeCreditAlphanum4},
		{"alphanum12", CreditAsset("BANANAS", testAccount2), xdr.AssetTypeAssetTypeCreditAlphanum12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := tt.asset.toXDR()
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, wire.Type)

			back, err := assetFromXDR(wire)
			require.NoError(t, err)
			assert.Equal(t, tt.asset, back)
		})
	}
}

func TestAssetAccessors(t *testing.T) {
	native := NativeAsset()
	assert.True(t, native.IsNative())
	assert.Empty(t, native.Code())
	assert.Empty(t, native.Issuer())

	credit := CreditAsset("EUR", testAccount2)
	assert.False(t, credit.IsNative())
	assert.Equal(t, "EUR", credit.Code())
	assert.Equal(t, testAccount2, credit.Issuer())
}

func TestAssetEncodeErrors(t *testing.T) {
	t.Run("bad issuer", func(t *testing.T) {
		_, err := CreditAsset("USD", "garbage").toXDR()
		var encErr *EncodingError
		require.ErrorAs(t, err, &encErr)
		assert.Equal(t, "asset issuer", encErr.Field)
	})

	t.Run("code too long", func(t *testing.T) {
		_, err := CreditAsset("THIRTEENCHARS", testAccount2).toXDR()
		var encErr *EncodingError
		require.ErrorAs(t, err, &encErr)
	})
}
