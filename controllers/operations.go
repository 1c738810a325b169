package controllers

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/daccred/stellarops.attest.so/handlers"
	"github.com/daccred/stellarops.attest.so/models"
	"github.com/daccred/stellarops.attest.so/operations"
)

type OperationsController struct {
	db       *sql.DB
	archiver *handlers.Archiver
	logger   *logrus.Entry
}

func NewOperationsController(db *sql.DB, archiver *handlers.Archiver, logger *logrus.Entry) *OperationsController {
	return &OperationsController{db: db, archiver: archiver, logger: logger}
}

func (oc *OperationsController) RegisterRoutes(r *gin.Engine) {
	store := persistence.NewInMemoryStore(time.Minute)

	r.GET("/health", oc.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/operations/decode", oc.Decode)
		v1.POST("/operations/build", oc.Build)
		v1.GET("/operations", oc.GetOperations)
		v1.GET("/operations/:id", oc.GetOperation)
		v1.GET("/stats", cache.CachePage(store, time.Minute, oc.GetStats))
	}
}

func (oc *OperationsController) HealthCheck(c *gin.Context) {
	if err := oc.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "Database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Decode parses one base64 XDR operation, archives the decoded record and
// returns it along with how many bytes the decoder consumed.
func (oc *OperationsController) Decode(c *gin.Context) {
	var req models.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "xdr field is required"})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.XDR)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid base64 encoding"})
		return
	}

	op, consumed, err := operations.DecodeOperation(raw)
	if err != nil {
		var unsupported *operations.UnsupportedOperationKindError
		if errors.As(err, &unsupported) {
			oc.archiver.RecordRejected()
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error":   unsupported.Error(),
				"kind":    unsupported.Kind.String(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	oc.archiver.RecordDecoded()

	record, err := handlers.Summarize(op, raw[:consumed])
	if err != nil {
		oc.logger.Errorf("Failed to summarize operation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to summarize operation"})
		return
	}
	if err := oc.archiver.Archive(record); err != nil {
		oc.logger.Errorf("Failed to archive operation %s: %v", record.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record, "bytes_consumed": consumed})
}

// Build constructs an operation from its JSON fields and returns its
// base64 XDR encoding.
func (oc *OperationsController) Build(c *gin.Context) {
	var req models.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "type field is required"})
		return
	}

	op, err := handlers.BuildOperation(req)
	if err != nil {
		var construction *operations.ConstructionError
		if errors.As(err, &construction) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   construction.Error(),
				"field":   construction.Field,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	encoded, err := op.Base64()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	oc.archiver.RecordBuilt()

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"xdr": encoded}})
}

func (oc *OperationsController) GetOperations(c *gin.Context) {
	limit := c.DefaultQuery("limit", "100")
	offset := c.DefaultQuery("offset", "0")
	opType := c.Query("type")

	query := `
		SELECT id, type, source_account, details, xdr, decoded_at
		FROM operations`
	args := []interface{}{}
	if opType != "" {
		query += " WHERE type = $1"
		args = append(args, opType)
	}
	query += " ORDER BY decoded_at DESC"
	if opType != "" {
		query += " LIMIT $2 OFFSET $3"
	} else {
		query += " LIMIT $1 OFFSET $2"
	}
	args = append(args, limit, offset)

	rows, err := oc.db.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch operations"})
		return
	}
	defer rows.Close()

	var records []models.OperationRecord
	for rows.Next() {
		var rec models.OperationRecord
		var sourceAccount sql.NullString
		var details []byte
		if err := rows.Scan(&rec.ID, &rec.Type, &sourceAccount, &details,
			&rec.XDR, &rec.DecodedAt); err == nil {
			if sourceAccount.Valid {
				rec.SourceAccount = sourceAccount.String
			}
			rec.Details = details
			records = append(records, rec)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

func (oc *OperationsController) GetOperation(c *gin.Context) {
	id := c.Param("id")
	var rec models.OperationRecord
	var sourceAccount sql.NullString
	var details []byte
	err := oc.db.QueryRow(`
		SELECT id, type, source_account, details, xdr, decoded_at
		FROM operations WHERE id = $1`, id).Scan(
		&rec.ID, &rec.Type, &sourceAccount, &details, &rec.XDR, &rec.DecodedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Operation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch operation"})
		return
	}
	if sourceAccount.Valid {
		rec.SourceAccount = sourceAccount.String
	}
	rec.Details = details
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

func (oc *OperationsController) GetStats(c *gin.Context) {
	stats := oc.archiver.Stats()
	oc.db.QueryRow("SELECT COUNT(*) FROM operations").Scan(&stats.ArchivedCount)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
