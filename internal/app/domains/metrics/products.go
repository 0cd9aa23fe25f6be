package metrics

import (
	"sort"

	"shopos/dashboard/internal/app/domains/entity"
)

// ProductStats 商品统计结果
type ProductStats struct {
	Total      int
	Published  int
	OutOfStock int
}

// ComputeProductStats 计算商品统计
func ComputeProductStats(products []entity.Product) ProductStats {
	var stats ProductStats
	stats.Total = len(products)
	for i := range products {
		if products[i].Published {
			stats.Published++
		}
		if products[i].Stock == 0 {
			stats.OutOfStock++
		}
	}
	return stats
}

// TopProduct 热销商品条目
// Product 为按 product_id 解析出的商品，商品已删除时为 nil，条目本身保留
type TopProduct struct {
	ProductID    string
	QuantitySold int
	OrderCount   int
	Product      *entity.Product
}

// ComputeTopSellingProducts 计算热销商品排行
// 按 product_id 聚合明细行：QuantitySold 为数量之和，OrderCount 为明细行数；
// 按 QuantitySold 降序排列，相同销量按 product_id 升序保证结果稳定，截断到 limit
func ComputeTopSellingProducts(items []entity.OrderItem, products []entity.Product, limit int) []TopProduct {
	grouped := make(map[string]*TopProduct)
	for i := range items {
		it := &items[i]
		tp, ok := grouped[it.ProductID]
		if !ok {
			tp = &TopProduct{ProductID: it.ProductID}
			grouped[it.ProductID] = tp
		}
		tp.QuantitySold += it.Quantity
		tp.OrderCount++
	}

	ranked := make([]TopProduct, 0, len(grouped))
	for _, tp := range grouped {
		ranked = append(ranked, *tp)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].QuantitySold != ranked[j].QuantitySold {
			return ranked[i].QuantitySold > ranked[j].QuantitySold
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	byID := make(map[string]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for i := range ranked {
		ranked[i].Product = byID[ranked[i].ProductID]
	}

	return ranked
}
