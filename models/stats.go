package models

import "time"

type Stats struct {
	DecodedCount   int64     `json:"decoded_count"`
	BuiltCount     int64     `json:"built_count"`
	ArchivedCount  int64     `json:"archived_count"`
	RejectedCount  int64     `json:"rejected_count"`
	StartTime      time.Time `json:"start_time"`
	LastUpdateTime time.Time `json:"last_update_time"`
	DecodeRate     float64   `json:"decode_rate"` // operations per second
}
