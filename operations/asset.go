package operations

import (
	"fmt"
	"strings"

	"github.com/stellar/go/xdr"
)

// Asset identifies what is being moved by a payment-style operation: either
// the network's native asset or a credit asset issued by an account. Code
// and issuer are not validated here; the XDR codec rejects bad values when
// the asset is encoded.
type Asset struct {
	code   string
	issuer string
}

// NativeAsset returns the network's native asset.
func NativeAsset() Asset {
	return Asset{}
}

// CreditAsset returns an issued asset with the given code (1-12 characters)
// and issuer address.
func CreditAsset(code, issuer string) Asset {
	return Asset{code: code, issuer: issuer}
}

func (a Asset) IsNative() bool { return a.code == "" && a.issuer == "" }

func (a Asset) Code() string { return a.code }

func (a Asset) Issuer() string { return a.issuer }

func (a Asset) toXDR() (xdr.Asset, error) {
	var x xdr.Asset
	if a.IsNative() {
		if err := x.SetNative(); err != nil {
			return xdr.Asset{}, &EncodingError{Field: "asset", Err: err}
		}
		return x, nil
	}
	var issuer xdr.AccountId
	if err := issuer.SetAddress(a.issuer); err != nil {
		return xdr.Asset{}, &EncodingError{Field: "asset issuer", Err: err}
	}
	if err := x.SetCredit(a.code, issuer); err != nil {
		return xdr.Asset{}, &EncodingError{Field: "asset code", Err: err}
	}
	return x, nil
}

func assetFromXDR(x xdr.Asset) (Asset, error) {
	switch x.Type {
	case xdr.AssetTypeAssetTypeNative:
		return NativeAsset(), nil
	case xdr.AssetTypeAssetTypeCreditAlphanum4:
		an := x.MustAlphaNum4()
		code := strings.TrimRight(string(an.AssetCode[:]), "\x00")
		return CreditAsset(code, an.Issuer.Address()), nil
	case xdr.AssetTypeAssetTypeCreditAlphanum12:
		an := x.MustAlphaNum12()
		code := strings.TrimRight(string(an.AssetCode[:]), "\x00")
		return CreditAsset(code, an.Issuer.Address()), nil
	default:
		return Asset{}, &DecodingError{Field: "asset", Err: fmt.Errorf("unknown asset type %s", x.Type.String())}
	}
}
