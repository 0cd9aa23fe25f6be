package mathx

import "math"

// 所有百分比、均值类指标共用的舍入与除零策略：
// 百分比保留一位小数，货币均值取整到最小货币单位，除零一律返回 0。

// Round1 保留一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GrowthPercent 环比增长率（百分比，一位小数）
// prev == 0 时定义为 0，不产生 NaN/Inf
func GrowthPercent(cur, prev int) float64 {
	if prev == 0 {
		return 0
	}
	return Round1(float64(cur-prev) / float64(prev) * 100)
}

// Percent 占比（百分比，一位小数）
// whole == 0 时定义为 0
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round1(float64(part) / float64(whole) * 100)
}

// AvgCents 金额均值，四舍五入到最小货币单位
// n == 0 时定义为 0
func AvgCents(sum int64, n int) int64 {
	if n == 0 {
		return 0
	}
	return int64(math.Round(float64(sum) / float64(n)))
}
