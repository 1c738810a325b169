package handlers

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stellar/go/amount"

	"github.com/daccred/stellarops.attest.so/models"
	"github.com/daccred/stellarops.attest.so/operations"
)

// Archiver persists decoded operations and keeps running counters for the
// stats endpoint.
type Archiver struct {
	db     *sql.DB
	logger *logrus.Entry
	mu     sync.RWMutex
	stats  models.Stats
}

func NewArchiver(db *sql.DB, logger *logrus.Entry) *Archiver {
	return &Archiver{
		db:     db,
		logger: logger,
		stats:  models.Stats{StartTime: time.Now()},
	}
}

// Summarize renders a decoded operation into its archive record. raw must
// be the exact bytes the operation was decoded from; the record id is
// derived from them.
func Summarize(op operations.Operation, raw []byte) (models.OperationRecord, error) {
	opType, details := describe(op)
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return models.OperationRecord{}, fmt.Errorf("failed to marshal details: %w", err)
	}
	sum := sha256.Sum256(raw)
	return models.OperationRecord{
		ID:            hex.EncodeToString(sum[:8]),
		Type:          opType,
		SourceAccount: op.SourceAccount(),
		Details:       detailsJSON,
		XDR:           base64.StdEncoding.EncodeToString(raw),
		DecodedAt:     time.Now().UTC(),
	}, nil
}

func describe(op operations.Operation) (string, map[string]interface{}) {
	switch {
	case op.IsCreateAccount():
		inner, _ := op.CreateAccount()
		return "create_account", map[string]interface{}{
			"destination":      inner.Destination(),
			"starting_balance": amount.StringFromInt64(inner.StartingBalance()),
		}
	case op.IsPayment():
		inner, _ := op.Payment()
		return "payment", map[string]interface{}{
			"destination": inner.Destination(),
			"asset":       assetString(inner.Asset()),
			"amount":      amount.StringFromInt64(inner.Amount()),
		}
	case op.IsPathPaymentStrictReceive():
		inner, _ := op.PathPaymentStrictReceive()
		path := []string{}
		for _, a := range inner.Path() {
			path = append(path, assetString(a))
		}
		return "path_payment_strict_receive", map[string]interface{}{
			"destination":        inner.Destination(),
			"send_asset":         assetString(inner.SendAsset()),
			"send_max":           amount.StringFromInt64(inner.SendMax()),
			"destination_asset":  assetString(inner.DestinationAsset()),
			"destination_amount": amount.StringFromInt64(inner.DestinationAmount()),
			"path":               path,
		}
	case op.IsAccountMerge():
		inner, _ := op.AccountMerge()
		return "account_merge", map[string]interface{}{
			"destination": inner.Destination(),
		}
	case op.IsInflation():
		return "inflation", map[string]interface{}{}
	default:
		return "unknown", map[string]interface{}{}
	}
}

func assetString(a operations.Asset) string {
	if a.IsNative() {
		return "native"
	}
	return a.Code() + ":" + a.Issuer()
}

// Archive stores a record in the operations table. Re-archiving the same
// bytes is a no-op.
func (a *Archiver) Archive(rec models.OperationRecord) error {
	if _, err := a.db.Exec(`
		INSERT INTO operations (id, type, source_account, details, xdr, decoded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Type, rec.SourceAccount, []byte(rec.Details), rec.XDR, rec.DecodedAt); err != nil {
		return fmt.Errorf("failed to store operation: %w", err)
	}
	a.mu.Lock()
	a.stats.ArchivedCount++
	a.mu.Unlock()
	a.logger.Debugf("Archived operation %s (%s)", rec.ID, rec.Type)
	return nil
}

func (a *Archiver) RecordDecoded() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.DecodedCount++
	elapsed := time.Since(a.stats.StartTime).Seconds()
	if elapsed > 0 {
		a.stats.DecodeRate = float64(a.stats.DecodedCount) / elapsed
	}
}

func (a *Archiver) RecordBuilt() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.BuiltCount++
}

func (a *Archiver) RecordRejected() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.RejectedCount++
}

// Stats returns a snapshot of the counters.
func (a *Archiver) Stats() models.Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	stats := a.stats
	stats.LastUpdateTime = time.Now()
	return stats
}
