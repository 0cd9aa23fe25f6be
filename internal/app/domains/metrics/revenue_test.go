package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shopos/dashboard/internal/app/domains/entity"
)

func day(offset int) time.Time {
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestComputeRevenue(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Status: entity.OrderStatusPaid, TotalCents: 10000, CreatedAt: day(0)},
		{ID: "o2", Status: entity.OrderStatusPending, TotalCents: 5000, CreatedAt: day(0)},
		{ID: "o3", Status: entity.OrderStatusPaid, TotalCents: 20000, CreatedAt: day(1)},
	}

	stats := ComputeRevenue(orders)
	assert.Equal(t, int64(30000), stats.TotalCents)
	assert.Equal(t, 2, stats.OrderCount)
}

func TestComputeRevenueIgnoresNonPaid(t *testing.T) {
	paid := []entity.Order{
		{ID: "o1", Status: entity.OrderStatusPaid, TotalCents: 12345, CreatedAt: day(0)},
	}
	withNoise := append([]entity.Order{}, paid...)
	for i, status := range []string{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	} {
		withNoise = append(withNoise, entity.Order{
			ID:         "noise" + string(rune('a'+i)),
			Status:     status,
			TotalCents: 99999,
			CreatedAt:  day(0),
		})
	}

	// 非 PAID 订单无论多少都不影响结果
	assert.Equal(t, ComputeRevenue(paid), ComputeRevenue(withNoise))
}

func TestComputeRevenueEmpty(t *testing.T) {
	stats := ComputeRevenue(nil)
	assert.Equal(t, int64(0), stats.TotalCents)
	assert.Equal(t, 0, stats.OrderCount)
}

func TestComputeOrderStats(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Status: entity.OrderStatusPaid, TotalCents: 10000},
		{ID: "o2", Status: entity.OrderStatusPending, TotalCents: 5000},
		{ID: "o3", Status: entity.OrderStatusPaid, TotalCents: 20000},
	}

	stats := ComputeOrderStats(orders)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Paid)
	assert.Equal(t, 0, stats.Shipped)
}

func TestComputeOrderStatsOtherStatusesOnlyCountTotal(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Status: entity.OrderStatusDelivered},
		{ID: "o2", Status: entity.OrderStatusCancelled},
		{ID: "o3", Status: entity.OrderStatusProcessing},
	}

	stats := ComputeOrderStats(orders)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 0, stats.Paid)
	assert.Equal(t, 0, stats.Shipped)
}

func TestComputeAverageOrderValue(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Status: entity.OrderStatusPaid, TotalCents: 10000},
		{ID: "o2", Status: entity.OrderStatusPending, TotalCents: 99999},
		{ID: "o3", Status: entity.OrderStatusPaid, TotalCents: 20001},
	}

	// (10000+20001)/2 = 15000.5 → 15001
	assert.Equal(t, int64(15001), ComputeAverageOrderValue(orders))
}

func TestComputeAverageOrderValueNoPaidOrders(t *testing.T) {
	assert.Equal(t, int64(0), ComputeAverageOrderValue(nil))
	assert.Equal(t, int64(0), ComputeAverageOrderValue([]entity.Order{
		{ID: "o1", Status: entity.OrderStatusPending, TotalCents: 5000},
	}))
}
