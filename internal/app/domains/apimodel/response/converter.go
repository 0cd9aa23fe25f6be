package response

import (
	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/domains/metrics"
	"shopos/dashboard/internal/app/domains/repo/rporder"
	"shopos/dashboard/internal/app/domains/services/svdashboard"
)

// FromRevenueStats 营收统计转响应 DTO
func FromRevenueStats(stats metrics.RevenueStats) RevenueResponse {
	return RevenueResponse{
		Total:      stats.TotalCents,
		OrderCount: stats.OrderCount,
	}
}

// FromRevenueSeries 营收时间序列转响应 DTO
func FromRevenueSeries(series []metrics.RevenuePoint) []RevenuePointResponse {
	result := make([]RevenuePointResponse, 0, len(series))
	for _, p := range series {
		result = append(result, RevenuePointResponse{
			Date:    p.Date,
			Revenue: p.RevenueCents,
		})
	}
	return result
}

// FromOrderStats 订单统计转响应 DTO
func FromOrderStats(stats metrics.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{
		Total:   stats.Total,
		Pending: stats.Pending,
		Paid:    stats.Paid,
		Shipped: stats.Shipped,
	}
}

// FromCustomerStats 客户统计转响应 DTO
func FromCustomerStats(stats metrics.CustomerStats) CustomerStatsResponse {
	return CustomerStatsResponse{
		Total:     stats.Total,
		ThisMonth: stats.ThisMonth,
		LastMonth: stats.LastMonth,
		Growth:    stats.Growth,
	}
}

// FromProductStats 商品统计转响应 DTO
func FromProductStats(stats metrics.ProductStats) ProductStatsResponse {
	return ProductStatsResponse{
		Total:      stats.Total,
		Published:  stats.Published,
		OutOfStock: stats.OutOfStock,
	}
}

// FromTopProducts 热销商品排行转响应 DTO
func FromTopProducts(top []metrics.TopProduct) []TopProductResponse {
	result := make([]TopProductResponse, 0, len(top))
	for _, tp := range top {
		result = append(result, TopProductResponse{
			ProductID:    tp.ProductID,
			QuantitySold: tp.QuantitySold,
			OrderCount:   tp.OrderCount,
			Product:      fromProductEntity(tp.Product),
		})
	}
	return result
}

func fromProductEntity(p *entity.Product) *ProductSummary {
	if p == nil {
		return nil
	}
	return &ProductSummary{
		ID:    p.ID,
		Title: p.Title,
		Slug:  p.Slug,
		Price: p.PriceCents,
		Stock: p.Stock,
	}
}

// FromCollectionSales 集合销售额转响应 DTO
func FromCollectionSales(sales []metrics.CollectionSales) []CollectionSalesResponse {
	result := make([]CollectionSalesResponse, 0, len(sales))
	for _, s := range sales {
		result = append(result, CollectionSalesResponse{
			Name:    s.Name,
			Revenue: s.RevenueCents,
			Count:   s.Count,
		})
	}
	return result
}

// FromRecentOrders 最近订单转响应 DTO
func FromRecentOrders(rows []rporder.OrderWithCustomer) []RecentOrderResponse {
	result := make([]RecentOrderResponse, 0, len(rows))
	for _, row := range rows {
		resp := RecentOrderResponse{
			ID:          row.Order.ID,
			OrderNumber: row.Order.OrderNumber,
			Email:       row.Order.Email,
			Status:      row.Order.Status,
			Total:       row.Order.TotalCents,
			CreatedAt:   row.Order.CreatedAt,
		}
		if row.Customer != nil {
			resp.Customer = &CustomerSummary{
				ID:        row.Customer.ID,
				Email:     row.Customer.Email,
				FirstName: row.Customer.FirstName,
				LastName:  row.Customer.LastName,
			}
		}
		result = append(result, resp)
	}
	return result
}

// FromConversionStats 转化率统计转响应 DTO
func FromConversionStats(stats metrics.ConversionStats) ConversionResponse {
	return ConversionResponse{
		TotalCustomers:      stats.TotalCustomers,
		CustomersWithOrders: stats.CustomersWithOrders,
		ConversionRate:      stats.ConversionRate,
	}
}

// FromOverview 总览转响应 DTO
func FromOverview(ov *svdashboard.Overview) OverviewResponse {
	return OverviewResponse{
		Revenue:      FromRevenueStats(ov.Revenue),
		Orders:       FromOrderStats(ov.Orders),
		Customers:    FromCustomerStats(ov.Customers),
		Products:     FromProductStats(ov.Products),
		RecentOrders: FromRecentOrders(ov.RecentOrders),
		TopProducts:  FromTopProducts(ov.TopProducts),
	}
}
