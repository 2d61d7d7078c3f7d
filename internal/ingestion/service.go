package ingestion

import (
	"github.com/gin-gonic/gin"
	"github.com/insightchat/analytics/internal/core/storage"
)

// Service is the record write API. It validates incoming vendors,
// transactions and orders and hands them to the Record Store.
type Service struct {
	store            storage.RecordWriter
	maxBodySizeBytes int
}

func NewService(store storage.RecordWriter, maxBodySizeMB int) *Service {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/vendors", s.IngestVendorHandler)
	r.POST("/v1/transactions", s.IngestTransactionHandler)
	r.POST("/v1/orders", s.IngestOrderHandler)
}
