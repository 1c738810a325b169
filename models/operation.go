package models

import (
	"encoding/json"
	"time"
)

// OperationRecord is one archived operation: the decoded per-kind summary
// next to the raw XDR it was decoded from.
type OperationRecord struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	SourceAccount string          `json:"source_account,omitempty"`
	Details       json.RawMessage `json:"details"`
	XDR           string          `json:"xdr"`
	DecodedAt     time.Time       `json:"decoded_at"`
}
