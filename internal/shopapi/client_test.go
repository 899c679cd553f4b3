package shopapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larekshop/storefront/pkg/config"
	"github.com/larekshop/storefront/pkg/enums"
	pkgerrors "github.com/larekshop/storefront/pkg/errors"
)

func testConfig(baseURL string) config.ShopAPIConfig {
	return config.ShopAPIConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		FetchRetries: 2,
		FetchBackoff: time.Millisecond,
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.ShopAPIConfig{BaseURL: "   "})
	require.Error(t, err)
}

func TestProductsDecodesListEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/product/", r.URL.Path)
		_, _ = w.Write([]byte(`{"total":2,"items":[` +
			`{"id":"p-1","title":"Gel pen","price":100},` +
			`{"id":"p-2","title":"Infinity loop","price":null}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL + "/api"))
	require.NoError(t, err)

	items, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p-1", items[0].ID)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, int64(100), *items[0].Price)
	assert.Nil(t, items[1].Price, "null price survives decoding")
}

func TestProductsRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"total":1,"items":[{"id":"p-1","title":"Gel pen","price":100}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	items, err := client.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(3), calls.Load())
}

func TestProductsGivesUpAfterRetryBudget(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Products(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
	assert.Equal(t, int64(3), calls.Load(), "initial attempt plus two retries")
}

func TestProductByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/product/p-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"p-1","title":"Gel pen","category":"stationery","price":100}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL + "/api"))
	require.NoError(t, err)

	product, err := client.Product(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Gel pen", product.Title)
}

func TestProductNotFoundSurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"NotFound"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Product(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
	assert.Equal(t, "NotFound", pkgerrors.As(err).Message())
}

func TestProductRejectsEmptyID(t *testing.T) {
	client, err := NewClient(testConfig("http://shop.test"))
	require.NoError(t, err)

	_, err = client.Product(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestPlaceOrderSendsDraftAndDecodesResult(t *testing.T) {
	var captured OrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"ord-1","total":200}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	result, err := client.PlaceOrder(context.Background(), OrderRequest{
		Payment: enums.PaymentMethodOnline,
		Email:   "a@b.c",
		Phone:   "+1999",
		Address: "Main St 1",
		Total:   200,
		Items:   []string{"p-1", "p-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", result.ID)
	assert.Equal(t, int64(200), result.Total)
	assert.Equal(t, enums.PaymentMethodOnline, captured.Payment)
	assert.Equal(t, []string{"p-1", "p-2"}, captured.Items)
}

func TestPlaceOrderRejectionIsNotRetriedAndCarriesMessage(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"wrong total"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.PlaceOrder(context.Background(), OrderRequest{Total: 1})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	assert.Equal(t, "wrong total", pkgerrors.As(err).Message())
	assert.Equal(t, int64(1), calls.Load())
}
