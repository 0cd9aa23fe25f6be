package metrics

import "time"

// DatedAmount 带时间戳的金额，时间分桶的输入
type DatedAmount struct {
	At     time.Time
	Amount int64
}

// BucketByDay 按 UTC 自然日分桶求和
// 桶的键为 ISO 日期（YYYY-MM-DD），没有数据的日期不生成空桶
func BucketByDay(points []DatedAmount) map[string]int64 {
	buckets := make(map[string]int64)
	for _, p := range points {
		day := p.At.UTC().Format("2006-01-02")
		buckets[day] += p.Amount
	}
	return buckets
}
