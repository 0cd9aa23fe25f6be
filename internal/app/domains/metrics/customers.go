package metrics

import (
	"time"

	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/pkg/mathx"
)

// CustomerStats 客户统计结果
type CustomerStats struct {
	Total     int
	ThisMonth int
	LastMonth int
	Growth    float64
}

// ComputeCustomerStats 计算客户增长统计
// thisMonth 为最近 30 天新增，lastMonth 为 (60,30] 天前的非重叠窗口新增；
// 增长率 = (thisMonth-lastMonth)/lastMonth*100 保留一位小数，
// lastMonth 为 0 时增长率定义为 0
func ComputeCustomerStats(customers []entity.Customer, now time.Time) CustomerStats {
	thisWindow := now.AddDate(0, 0, -30)
	lastWindow := now.AddDate(0, 0, -60)

	var stats CustomerStats
	stats.Total = len(customers)
	for i := range customers {
		created := customers[i].CreatedAt
		if created.After(thisWindow) {
			stats.ThisMonth++
		} else if created.After(lastWindow) {
			stats.LastMonth++
		}
	}

	stats.Growth = mathx.GrowthPercent(stats.ThisMonth, stats.LastMonth)
	return stats
}

// ConversionStats 转化率统计结果
type ConversionStats struct {
	TotalCustomers      int
	CustomersWithOrders int
	ConversionRate      float64
}

// ComputeConversionMetrics 计算客户转化率
// 分子为至少有一笔 PAID 订单的客户数（按 customer_id 关联，游客单不计入）；
// 没有客户时转化率定义为 0
func ComputeConversionMetrics(customers []entity.Customer, orders []entity.Order) ConversionStats {
	paidBy := make(map[string]struct{})
	for i := range orders {
		o := &orders[i]
		if o.Status != entity.OrderStatusPaid || o.CustomerID == nil {
			continue
		}
		paidBy[*o.CustomerID] = struct{}{}
	}

	var stats ConversionStats
	stats.TotalCustomers = len(customers)
	for i := range customers {
		if _, ok := paidBy[customers[i].ID]; ok {
			stats.CustomersWithOrders++
		}
	}

	stats.ConversionRate = mathx.Percent(stats.CustomersWithOrders, stats.TotalCustomers)
	return stats
}
