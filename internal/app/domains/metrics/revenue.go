// Package metrics 提供仪表盘的纯指标计算函数。
// 所有函数都是无状态的：输入一份记录快照，输出指标结果，不产生副作用。
package metrics

import (
	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/pkg/mathx"
)

// RevenueStats 营收统计结果
type RevenueStats struct {
	TotalCents int64
	OrderCount int
}

// ComputeRevenue 计算总营收
// 只统计 PAID 订单的金额与单数，其他状态的订单不参与计算
func ComputeRevenue(orders []entity.Order) RevenueStats {
	var stats RevenueStats
	for i := range orders {
		if orders[i].Status != entity.OrderStatusPaid {
			continue
		}
		stats.TotalCents += orders[i].TotalCents
		stats.OrderCount++
	}
	return stats
}

// ComputeAverageOrderValue 计算平均客单价（最小货币单位，四舍五入取整）
// 只统计 PAID 订单；没有 PAID 订单时返回 0
func ComputeAverageOrderValue(orders []entity.Order) int64 {
	var sum int64
	var count int
	for i := range orders {
		if orders[i].Status != entity.OrderStatusPaid {
			continue
		}
		sum += orders[i].TotalCents
		count++
	}
	return mathx.AvgCents(sum, count)
}
