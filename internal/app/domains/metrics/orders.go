package metrics

import "shopos/dashboard/internal/app/domains/entity"

// OrderStats 订单统计结果
// 摘要只单独列出 PENDING/PAID/SHIPPED 三种状态的数量
type OrderStats struct {
	Total   int
	Pending int
	Paid    int
	Shipped int
}

// ComputeOrderStats 计算订单状态统计
func ComputeOrderStats(orders []entity.Order) OrderStats {
	var stats OrderStats
	stats.Total = len(orders)
	for i := range orders {
		switch orders[i].Status {
		case entity.OrderStatusPending:
			stats.Pending++
		case entity.OrderStatusPaid:
			stats.Paid++
		case entity.OrderStatusShipped:
			stats.Shipped++
		}
	}
	return stats
}
