package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/insightchat/analytics/internal/api/v1"
	httperr "github.com/insightchat/analytics/internal/core/errors"
	"github.com/insightchat/analytics/internal/core/storage"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to persist record"
	msgUnknownVendor  = "Referenced vendor does not exist"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	detail     string
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestVendorHandler handles POST /v1/vendors
func (s *Service) IngestVendorHandler(c *gin.Context) {
	var vendor v1.Vendor
	if err := s.parseBody(c, &vendor); err != nil {
		writeError(c, err)
		return
	}

	if err := validate(vendor.Validate()); err != nil {
		writeError(c, err)
		return
	}

	if err := s.persist(c.Request.Context(), "vendor", func(ctx context.Context) error {
		return s.store.InsertVendor(ctx, &vendor)
	}); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Ingestion] Stored vendor", "vendor_id", vendor.ID)
	c.JSON(http.StatusCreated, vendor)
}

// IngestTransactionHandler handles POST /v1/transactions
func (s *Service) IngestTransactionHandler(c *gin.Context) {
	var txn v1.Transaction
	if err := s.parseBody(c, &txn); err != nil {
		writeError(c, err)
		return
	}

	if err := validate(txn.Validate()); err != nil {
		writeError(c, err)
		return
	}
	if txn.Amount.IsNegative() {
		writeError(c, validate(fmt.Errorf("amount must not be negative")))
		return
	}

	if err := s.persist(c.Request.Context(), "transaction", func(ctx context.Context) error {
		return s.store.InsertTransaction(ctx, &txn)
	}); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Ingestion] Stored transaction",
		"transaction_id", txn.ID,
		"vendor_id", txn.VendorID,
		"amount", txn.Amount.String())
	c.JSON(http.StatusCreated, txn)
}

// IngestOrderHandler handles POST /v1/orders
// Any client-supplied totalAmount is replaced by quantity × unitPrice.
func (s *Service) IngestOrderHandler(c *gin.Context) {
	var order v1.Order
	if err := s.parseBody(c, &order); err != nil {
		writeError(c, err)
		return
	}

	if err := validate(order.Validate()); err != nil {
		writeError(c, err)
		return
	}
	if order.UnitPrice.IsNegative() {
		writeError(c, validate(fmt.Errorf("unitPrice must not be negative")))
		return
	}

	if err := s.persist(c.Request.Context(), "order", func(ctx context.Context) error {
		return s.store.InsertOrder(ctx, &order)
	}); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Ingestion] Stored order",
		"order_id", order.ID,
		"vendor_id", order.VendorID,
		"total_amount", order.TotalAmount.String())
	c.JSON(http.StatusCreated, order)
}

// parseBody reads the raw request body under the size limit and binds it into dst.
func (s *Service) parseBody(c *gin.Context, dst interface{}) *ingestionError {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		// The server-wide body limit trips before ours.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			slog.Warn("[Ingestion] Request body exceeds server limit", "max", maxBytesErr.Limit)
			return bodyTooLarge(maxBytesErr.Limit)
		}

		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return bodyTooLarge(maxBytes)
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			detail:     err.Error(),
		}
	}

	return nil
}

func bodyTooLarge(maxBytes int64) *ingestionError {
	return &ingestionError{
		statusCode: http.StatusRequestEntityTooLarge,
		errorType:  httperr.HttpInvalidJsonError,
		message:    msgBodyTooLarge,
		detail:     fmt.Sprintf("max_size_mb=%d", maxBytes/(1024*1024)),
	}
}

// validate converts a record validation failure into a 400.
func validate(err error) *ingestionError {
	if err == nil {
		return nil
	}
	slog.Warn("[Ingestion] Record validation failed", "error", err)
	return &ingestionError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpInvalidJsonError,
		message:    err.Error(),
	}
}

// persist runs a store write and maps its failure to an HTTP error.
func (s *Service) persist(ctx context.Context, kind string, write func(context.Context) error) *ingestionError {
	if err := write(ctx); err != nil {
		if errors.Is(err, storage.ErrUnknownVendor) {
			slog.Info("[Ingestion] Record references unknown vendor", "kind", kind)
			return &ingestionError{
				statusCode: http.StatusUnprocessableEntity,
				errorType:  httperr.HttpUnknownVendor,
				message:    msgUnknownVendor,
			}
		}

		slog.Error("[Ingestion] Failed to persist record", "kind", kind, "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Detail:    err.detail,
	})
}
