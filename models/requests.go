package models

// DecodeRequest carries one operation as base64 XDR.
type DecodeRequest struct {
	XDR string `json:"xdr" binding:"required"`
}

// AssetSpec names an asset in API requests. Both fields empty means the
// native asset.
type AssetSpec struct {
	Code   string `json:"code"`
	Issuer string `json:"issuer"`
}

// BuildRequest carries the fields needed to construct one operation.
// Amounts are decimal lumen strings ("125.5"); which fields are required
// depends on the operation type.
type BuildRequest struct {
	Type              string      `json:"type" binding:"required"`
	SourceAccount     string      `json:"source_account"`
	Destination       string      `json:"destination"`
	StartingBalance   string      `json:"starting_balance"`
	Asset             *AssetSpec  `json:"asset"`
	Amount            string      `json:"amount"`
	SendAsset         *AssetSpec  `json:"send_asset"`
	SendMax           string      `json:"send_max"`
	DestinationAsset  *AssetSpec  `json:"destination_asset"`
	DestinationAmount string      `json:"destination_amount"`
	Path              []AssetSpec `json:"path"`
}
