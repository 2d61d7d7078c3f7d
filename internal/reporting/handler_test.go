package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/insightchat/analytics/internal/analytics"
	v1 "github.com/insightchat/analytics/internal/api/v1"
	httperr "github.com/insightchat/analytics/internal/core/errors"
	"github.com/insightchat/analytics/internal/core/storage/memory"
	"github.com/insightchat/analytics/internal/nlquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// seededService builds the façade over an in-memory store holding vendors A
// and B with A=$100 and B=$50 today and B=$30 forty days ago.
func seededService(t *testing.T, generator QueryGenerator) *Service {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Now().UTC()

	a := &v1.Vendor{Name: "A", Category: "Software"}
	b := &v1.Vendor{Name: "B", Category: "Hardware"}
	require.NoError(t, store.InsertVendor(ctx, a))
	require.NoError(t, store.InsertVendor(ctx, b))
	for _, txn := range []*v1.Transaction{
		{VendorID: a.ID, Amount: decimal.NewFromInt(100), Date: now},
		{VendorID: b.ID, Amount: decimal.NewFromInt(50), Date: now},
		{VendorID: b.ID, Amount: decimal.NewFromInt(30), Date: now.AddDate(0, 0, -40)},
	} {
		require.NoError(t, store.InsertTransaction(ctx, txn))
	}

	engine := analytics.NewEngine(store, analytics.Options{})
	return NewService(engine, generator, 5)
}

func TestHandler_Reports(t *testing.T) {
	r := newRouter(seededService(t, &stubGenerator{}))

	for _, path := range []string{"/metrics", "/api/analytics/metrics"} {
		resp := serve(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, resp.Code, path)

		var metrics MetricsResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &metrics))
		require.Equal(t, "$180.00", metrics.TotalRevenue)
		require.Equal(t, "2", metrics.ActiveVendors)
		require.Equal(t, "0", metrics.TotalOrders)
		require.Equal(t, "83.3%", metrics.GrowthRate)
		require.Equal(t, analytics.PlaceholderRevenueChange, metrics.RevenueChange)
	}

	for _, path := range []string{"/top-vendors", "/api/analytics/top-vendors"} {
		resp := serve(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, resp.Code, path)
		require.JSONEq(t, `[{"vendor":"A","spend":100},{"vendor":"B","spend":80}]`, resp.Body.String())
	}

	resp := serve(r, http.MethodGet, "/revenue-trend", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var trend []TrendPoint
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &trend))
	require.NotEmpty(t, trend)
}

func TestHandler_EmptyStoreReturnsEmptyArrays(t *testing.T) {
	engine := analytics.NewEngine(memory.NewStore(), analytics.Options{})
	r := newRouter(NewService(engine, &stubGenerator{}, 5))

	resp := serve(r, http.MethodGet, "/revenue-trend", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `[]`, resp.Body.String())

	resp = serve(r, http.MethodGet, "/top-vendors", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `[]`, resp.Body.String())

	resp = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"totalRevenue":"$0.00"`)
}

func TestHandler_TopVendorsLimit(t *testing.T) {
	r := newRouter(seededService(t, &stubGenerator{}))

	tests := []struct {
		query  string
		status int
	}{
		{query: "limit=1", status: http.StatusOK},
		{query: "limit=5", status: http.StatusOK},
		{query: "limit=0", status: http.StatusBadRequest},
		{query: "limit=6", status: http.StatusBadRequest},
		{query: "limit=abc", status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			resp := serve(r, http.MethodGet, "/top-vendors?"+tc.query, "")
			require.Equal(t, tc.status, resp.Code, resp.Body.String())
		})
	}

	resp := serve(r, http.MethodGet, "/top-vendors?limit=1", "")
	require.JSONEq(t, `[{"vendor":"A","spend":100}]`, resp.Body.String())
}

func TestHandler_DataAccessFailureIsGeneric(t *testing.T) {
	engine := &stubEngine{err: fmt.Errorf("%w: sum transactions: password authentication failed", analytics.ErrDataAccess)}
	r := newRouter(NewService(engine, &stubGenerator{}, 5))

	for _, path := range []string{"/metrics", "/revenue-trend", "/top-vendors"} {
		resp := serve(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusInternalServerError, resp.Code, path)

		var body httperr.ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, httperr.HttpDataAccessError, body.ErrorType)
		require.Equal(t, msgDataAccessFailed, body.Message)
		require.NotContains(t, resp.Body.String(), "password")
	}
}

func TestHandler_ChatWithData(t *testing.T) {
	collaborator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if strings.Contains(body["query"], "ambiguous") {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":"ambiguous column"}`))
			return
		}
		_, _ = w.Write([]byte(`{"sql":"SELECT name FROM vendors","columns":["name"],"rows":[["A"],["B"]]}`))
	}))
	defer collaborator.Close()

	client := nlquery.NewClient(collaborator.URL, time.Second)
	r := newRouter(seededService(t, client))

	for _, path := range []string{"/chat-with-data", "/api/chat-with-data"} {
		resp := serve(r, http.MethodPost, path, `{"query":"list vendors"}`)
		require.Equal(t, http.StatusOK, resp.Code, path)
		require.JSONEq(t, `{"sql":"SELECT name FROM vendors","columns":["name"],"rows":[["A"],["B"]]}`, resp.Body.String())
	}

	resp := serve(r, http.MethodPost, "/chat-with-data", `{"query":"ambiguous question"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, httperr.HttpCollaboratorError, body.ErrorType)
	require.Equal(t, "ambiguous column", body.Detail)
}

func TestHandler_ChatWithDataCollaboratorStatus(t *testing.T) {
	tests := []struct {
		name       string
		upstream   int
		wantStatus int
	}{
		{name: "client error forwarded", upstream: http.StatusUnprocessableEntity, wantStatus: http.StatusUnprocessableEntity},
		{name: "server error forwarded", upstream: http.StatusServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "not modified becomes bad gateway", upstream: http.StatusNotModified, wantStatus: http.StatusBadGateway},
		{name: "informational becomes bad gateway", upstream: http.StatusContinue, wantStatus: http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{err: &nlquery.CollaboratorError{StatusCode: tc.upstream, Detail: "upstream said no"}}
			r := newRouter(NewService(&stubEngine{}, gen, 5))

			resp := serve(r, http.MethodPost, "/chat-with-data", `{"query":"revenue by month"}`)
			require.Equal(t, tc.wantStatus, resp.Code)

			var body httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, httperr.HttpCollaboratorError, body.ErrorType)
			require.Equal(t, "upstream said no", body.Detail)
		})
	}
}

func TestHandler_ChatWithDataRejectsMissingQuery(t *testing.T) {
	gen := &stubGenerator{}
	r := newRouter(NewService(&stubEngine{}, gen, 5))

	for _, body := range []string{`{}`, `{"query":""}`, `{"query":"   "}`, `not json`} {
		resp := serve(r, http.MethodPost, "/chat-with-data", body)
		require.Equal(t, http.StatusBadRequest, resp.Code, body)
	}
	require.Zero(t, gen.calls)
}

func TestHandler_ChatWithDataTransportFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("nl-to-sql service unreachable: connection refused")}
	r := newRouter(NewService(&stubEngine{}, gen, 5))

	resp := serve(r, http.MethodPost, "/chat-with-data", `{"query":"revenue by month"}`)
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, msgQueryFailed, body.Message)
	require.Contains(t, body.Detail, "connection refused")
}
