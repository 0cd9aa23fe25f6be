package metrics

import (
	"sort"

	"shopos/dashboard/internal/app/domains/entity"
)

// 未归类商品的集合桶
const (
	UncategorizedKey  = "none"
	UncategorizedName = "Uncategorized"
)

// CollectionSales 按集合聚合的销售统计
type CollectionSales struct {
	CollectionID string
	Name         string
	RevenueCents int64
	Count        int
}

// ComputeSalesByCollection 计算按集合聚合的销售额
// 只统计能解析到商品的明细行：revenue += price*quantity，count += quantity，
// 归入商品所属集合；商品没有集合时归入 "none"/"Uncategorized" 桶。
// 商品已删除的明细行整体跳过，不归入任何桶。结果按营收降序排列
func ComputeSalesByCollection(items []entity.OrderItem, products []entity.Product, collections []entity.Collection) []CollectionSales {
	productByID := make(map[string]*entity.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}
	collectionByID := make(map[string]*entity.Collection, len(collections))
	for i := range collections {
		collectionByID[collections[i].ID] = &collections[i]
	}

	buckets := make(map[string]*CollectionSales)
	for i := range items {
		it := &items[i]
		product, ok := productByID[it.ProductID]
		if !ok {
			continue
		}

		key := UncategorizedKey
		name := UncategorizedName
		if product.CollectionID != nil {
			key = *product.CollectionID
			if col, ok := collectionByID[key]; ok {
				name = col.Name
			} else {
				name = key
			}
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &CollectionSales{CollectionID: key, Name: name}
			buckets[key] = bucket
		}
		bucket.RevenueCents += it.PriceCents * int64(it.Quantity)
		bucket.Count += it.Quantity
	}

	result := make([]CollectionSales, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].RevenueCents != result[j].RevenueCents {
			return result[i].RevenueCents > result[j].RevenueCents
		}
		return result[i].CollectionID < result[j].CollectionID
	})

	return result
}
