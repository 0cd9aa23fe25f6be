package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/domains/modules/mdcatalog"
	"shopos/dashboard/internal/app/domains/modules/mdcustomer"
	"shopos/dashboard/internal/app/domains/modules/mdorder"
	"shopos/dashboard/internal/app/domains/repo/rporder"
	"shopos/dashboard/internal/app/domains/services/svdashboard"
	"shopos/dashboard/internal/app/pkg/logger"
)

type stubOrderRepo struct {
	orders []entity.Order
	recent []rporder.OrderWithCustomer
	items  []entity.OrderItem
	err    error
}

func (s *stubOrderRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderRepo) ListRecent(ctx context.Context, limit int) ([]rporder.OrderWithCustomer, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.recent) {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

func (s *stubOrderRepo) ListItems(ctx context.Context) ([]entity.OrderItem, error) {
	return s.items, s.err
}

type stubProductRepo struct {
	products    []entity.Product
	collections []entity.Collection
}

func (s *stubProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) ListCollections(ctx context.Context) ([]entity.Collection, error) {
	return s.collections, nil
}

type stubCustomerRepo struct {
	customers []entity.Customer
}

func (s *stubCustomerRepo) ListAll(ctx context.Context) ([]entity.Customer, error) {
	return s.customers, nil
}

func newTestRouter(orderRepo *stubOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	opts := svdashboard.DefaultOptions()
	svc := svdashboard.NewDashboardService(
		mdorder.NewOrderModule(orderRepo),
		mdcatalog.NewCatalogModule(&stubProductRepo{
			products: []entity.Product{
				{ID: "p1", Title: "Mug", Published: true, Stock: 3},
			},
		}),
		mdcustomer.NewCustomerModule(&stubCustomerRepo{
			customers: []entity.Customer{
				{ID: "c1", CreatedAt: time.Now().AddDate(0, 0, -5)},
			},
		}),
		opts,
		logger.NopLogger{},
	)

	h := NewDashboardHandler(svc, opts, logger.NopLogger{})

	r := gin.New()
	r.GET("/health", h.Health)
	dash := r.Group("/api/v1/dashboard")
	{
		dash.GET("/overview", h.Overview)
		dash.GET("/revenue", h.Revenue)
		dash.GET("/revenue/over-time", h.RevenueOverTime)
		dash.GET("/orders", h.Orders)
		dash.GET("/orders/recent", h.RecentOrders)
		dash.GET("/customers", h.Customers)
		dash.GET("/products", h.Products)
		dash.GET("/products/top-selling", h.TopSellingProducts)
		dash.GET("/sales/by-collection", h.SalesByCollection)
		dash.GET("/metrics/average-order-value", h.AverageOrderValue)
		dash.GET("/metrics/conversion", h.Conversion)
	}
	return r
}

func healthyOrderRepo() *stubOrderRepo {
	now := time.Now()
	return &stubOrderRepo{
		orders: []entity.Order{
			{ID: "o1", OrderNumber: 1001, Status: entity.OrderStatusPaid, TotalCents: 10000, CreatedAt: now.Add(-time.Hour)},
			{ID: "o2", OrderNumber: 1002, Status: entity.OrderStatusPending, TotalCents: 5000, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "o3", OrderNumber: 1003, Status: entity.OrderStatusPaid, TotalCents: 20000, CreatedAt: now.Add(-3 * time.Hour)},
		},
		recent: []rporder.OrderWithCustomer{
			{Order: entity.Order{ID: "o1", OrderNumber: 1001, Email: "a@example.com", Status: entity.OrderStatusPaid, TotalCents: 10000, CreatedAt: now}},
		},
		items: []entity.OrderItem{
			{ID: "i1", ProductID: "p1", PriceCents: 1000, Quantity: 2},
		},
	}
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Meta struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestRevenueEndpoint(t *testing.T) {
	r := newTestRouter(healthyOrderRepo())

	w := doGet(t, r, "/api/v1/dashboard/revenue")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, 200, env.Meta.Code)

	var data struct {
		Total      int64 `json:"total"`
		OrderCount int   `json:"order_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(30000), data.Total)
	assert.Equal(t, 2, data.OrderCount)
}

func TestRevenueEndpointPropagatesStoreError(t *testing.T) {
	repo := healthyOrderRepo()
	repo.err = errors.New("store down")
	r := newTestRouter(repo)

	// 独立指标接口不降级，存储错误映射为 500
	w := doGet(t, r, "/api/v1/dashboard/revenue")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOverviewEndpointAlwaysSucceeds(t *testing.T) {
	repo := healthyOrderRepo()
	repo.err = errors.New("store down")
	r := newTestRouter(repo)

	// 总览在订单存储故障时仍返回 200，相关指标为零值
	w := doGet(t, r, "/api/v1/dashboard/overview")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data struct {
		Revenue struct {
			Total int64 `json:"total"`
		} `json:"revenue"`
		Products struct {
			Total int `json:"total"`
		} `json:"products"`
		RecentOrders []json.RawMessage `json:"recent_orders"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(0), data.Revenue.Total)
	assert.Equal(t, 1, data.Products.Total)
	assert.Empty(t, data.RecentOrders)
}

func TestRevenueOverTimeValidation(t *testing.T) {
	r := newTestRouter(healthyOrderRepo())

	w := doGet(t, r, "/api/v1/dashboard/revenue/over-time?days=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(t, r, "/api/v1/dashboard/revenue/over-time?days=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 未传 days 时使用默认窗口
	w = doGet(t, r, "/api/v1/dashboard/revenue/over-time")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecentOrdersEndpoint(t *testing.T) {
	r := newTestRouter(healthyOrderRepo())

	w := doGet(t, r, "/api/v1/dashboard/orders/recent?limit=1")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data []struct {
		ID          string `json:"id"`
		OrderNumber int64  `json:"order_number"`
		Total       int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "o1", data[0].ID)
	assert.Equal(t, int64(1001), data[0].OrderNumber)
	assert.Equal(t, int64(10000), data[0].Total)
}

func TestAverageOrderValueEndpoint(t *testing.T) {
	r := newTestRouter(healthyOrderRepo())

	w := doGet(t, r, "/api/v1/dashboard/metrics/average-order-value")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data struct {
		AverageOrderValue int64 `json:"average_order_value"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(15000), data.AverageOrderValue)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(healthyOrderRepo())

	w := doGet(t, r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestOverviewRoundTripKeepsIntegerMoney(t *testing.T) {
	r := newTestRouter(healthyOrderRepo())

	w := doGet(t, r, "/api/v1/dashboard/overview")
	require.Equal(t, http.StatusOK, w.Code)

	// 金额字段编解码后保持精确整数，无浮点漂移
	env := decodeEnvelope(t, w)
	var data map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(env.Data))
	decoder.UseNumber()
	require.NoError(t, decoder.Decode(&data))

	revenue := data["revenue"].(map[string]interface{})
	total, err := revenue["total"].(json.Number).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(30000), total)
}
