package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(func() string { return "tok-123" }))
	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoTokenNoHeader(t *testing.T) {
	var hadHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(models.LoginResponse{AccessToken: "t"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.False(t, hadHeader, "logged-out requests carry no Authorization header")
}

func TestErrorDetailSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "insufficient stock for presentation p1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CreateSale(context.Background(), models.CreateSaleRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeAPIError))
	assert.Equal(t, 409, errors.StatusCode(err))
	assert.Equal(t, "insufficient stock for presentation p1", errors.Detail(err))
}

func TestErrorWithoutDetailBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, errors.StatusCode(err))
	assert.Empty(t, errors.Detail(err))
}

func TestUnauthorizedRunsHookOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var hookCalls int
	client := NewClient(server.URL, WithUnauthorizedHook(func() { hookCalls++ }))
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnauthorized))
	assert.Equal(t, 1, hookCalls)
}

// A list endpoint answering with an object is an explicit decode error, not a
// silent empty list.
func TestStrictDecodeOnUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"unexpected": "object"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	products, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDecodeFailed))
	assert.Nil(t, products)
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL)
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeAPIUnavailable))
}

func TestSalesHistoryQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Sale{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SalesHistory(context.Background(), 40, 20, models.SalesFilter{})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "skip=40")
	assert.Contains(t, gotQuery, "limit=20")
}

func TestLotDetailsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/presentations/p1/lot-details", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "ld1", "quantity_available": "5", "unit_cost": "1200"},
			},
			"count": 1,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.LotDetails(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "ld1", resp.Data[0].ID)
}

func TestWithTimeoutAppliesToRequests(t *testing.T) {
	client := NewClient("https://api.example", WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)

	// Zero and negative values do not disable the default.
	client = NewClient("https://api.example", WithTimeout(0))
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestUpdateSaleStatusRequest(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(models.Sale{ID: "s1", Status: models.SaleStatusCancelled})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	sale, err := client.UpdateSaleStatus(context.Background(), "s1", models.SaleStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/sales/s1/status", gotPath)
	assert.Equal(t, "cancelled", gotBody["status"])
	assert.Equal(t, models.SaleStatusCancelled, sale.Status)
}
