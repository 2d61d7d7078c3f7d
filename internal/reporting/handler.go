package reporting

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/insightchat/analytics/internal/analytics"
	httperr "github.com/insightchat/analytics/internal/core/errors"
	"github.com/insightchat/analytics/internal/nlquery"
)

const (
	msgDataAccessFailed = "Data access failed"
	msgQueryFailed      = "Failed to process query"
	msgQueryRequired    = "Query is required"
)

// RegisterRoutes registers all reporting API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/metrics", s.HandleGetMetrics)
	r.GET("/revenue-trend", s.HandleGetRevenueTrend)
	r.GET("/top-vendors", s.HandleGetTopVendors)
	r.POST("/chat-with-data", s.HandleChatWithData)

	// Paths used by the dashboard client.
	api := r.Group("/api")
	api.GET("/analytics/metrics", s.HandleGetMetrics)
	api.GET("/analytics/revenue-trend", s.HandleGetRevenueTrend)
	api.GET("/analytics/top-vendors", s.HandleGetTopVendors)
	api.POST("/chat-with-data", s.HandleChatWithData)
}

// HandleGetMetrics handles GET /metrics
func (s *Service) HandleGetMetrics(c *gin.Context) {
	resp, err := s.GetMetrics(c.Request.Context())
	if err != nil {
		writeReportError(c, "metrics", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleGetRevenueTrend handles GET /revenue-trend
func (s *Service) HandleGetRevenueTrend(c *gin.Context) {
	resp, err := s.GetRevenueTrend(c.Request.Context())
	if err != nil {
		writeReportError(c, "revenue trend", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleGetTopVendors handles GET /top-vendors
// Query parameters: limit (optional)
func (s *Service) HandleGetTopVendors(c *gin.Context) {
	limit := 0
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid query parameters",
				Detail:    "limit must be an integer",
			})
			return
		}
		// An explicit zero is out of range, not a request for the default.
		if n == 0 {
			n = -1
		}
		limit = n
	}

	resp, err := s.GetTopVendors(c.Request.Context(), limit)
	if err != nil {
		writeReportError(c, "top vendors", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleChatWithData handles POST /chat-with-data
// Body: {"query": "..."}
func (s *Service) HandleChatWithData(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   msgQueryRequired,
			Detail:    err.Error(),
		})
		return
	}

	resp, err := s.SubmitNaturalLanguageQuery(c.Request.Context(), req.Query)
	if err != nil {
		var collabErr *nlquery.CollaboratorError
		switch {
		case errors.Is(err, ErrInvalidQuery):
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   msgQueryRequired,
			})
		case errors.As(err, &collabErr):
			c.JSON(collaboratorStatus(collabErr.StatusCode), httperr.ErrorResponse{
				ErrorType: httperr.HttpCollaboratorError,
				Message:   msgQueryFailed,
				Detail:    collabErr.Detail,
			})
		default:
			slog.Error("[Reporting] Error calling NL-to-SQL service", "error", err)
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   msgQueryFailed,
				Detail:    err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeReportError maps report failures to HTTP responses. Store failures are
// logged in full but surfaced only as a generic data access error.
func writeReportError(c *gin.Context, report string, err error) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid report query",
			Detail:    err.Error(),
		})
	case errors.Is(err, analytics.ErrDataAccess):
		slog.Error("[Reporting] Failed to compute report", "report", report, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpDataAccessError,
			Message:   msgDataAccessFailed,
		})
	default:
		slog.Error("[Reporting] Unexpected report failure", "report", report, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to compute " + report,
		})
	}
}

// collaboratorStatus forwards the collaborator's error status. Anything that is not
// a 4xx or 5xx cannot carry an error body and becomes 502.
func collaboratorStatus(code int) int {
	if code >= http.StatusBadRequest && code <= 599 {
		return code
	}
	return http.StatusBadGateway
}
