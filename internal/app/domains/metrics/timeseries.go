package metrics

import (
	"sort"
	"time"

	"shopos/dashboard/internal/app/domains/entity"
)

// RevenuePoint 单日营收数据点
type RevenuePoint struct {
	Date         string
	RevenueCents int64
}

// ComputeRevenueOverTime 计算时间窗口内的每日营收序列
// 取 createdAt 在 [now-days, now] 内的 PAID 订单，按 UTC 自然日分桶求和；
// 没有订单的日期不补零。结果按日期升序排列
func ComputeRevenueOverTime(orders []entity.Order, days int, now time.Time) []RevenuePoint {
	since := now.AddDate(0, 0, -days)

	points := make([]DatedAmount, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if o.Status != entity.OrderStatusPaid {
			continue
		}
		if o.CreatedAt.Before(since) || o.CreatedAt.After(now) {
			continue
		}
		points = append(points, DatedAmount{At: o.CreatedAt, Amount: o.TotalCents})
	}

	buckets := BucketByDay(points)

	series := make([]RevenuePoint, 0, len(buckets))
	for day, sum := range buckets {
		series = append(series, RevenuePoint{Date: day, RevenueCents: sum})
	}

	// ISO 日期字符串的字典序即时间序
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}
