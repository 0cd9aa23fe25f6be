package response

import "time"

// 所有金额字段均为最小货币单位的整数（分），输出不使用浮点货币值

// RevenueResponse 营收统计（DTO）
type RevenueResponse struct {
	Total      int64 `json:"total"`
	OrderCount int   `json:"order_count"`
}

// RevenuePointResponse 单日营收数据点（DTO）
type RevenuePointResponse struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// OrderStatsResponse 订单统计（DTO）
type OrderStatsResponse struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Paid    int `json:"paid"`
	Shipped int `json:"shipped"`
}

// CustomerStatsResponse 客户统计（DTO）
type CustomerStatsResponse struct {
	Total     int     `json:"total"`
	ThisMonth int     `json:"this_month"`
	LastMonth int     `json:"last_month"`
	Growth    float64 `json:"growth"`
}

// ProductStatsResponse 商品统计（DTO）
type ProductStatsResponse struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	OutOfStock int `json:"out_of_stock"`
}

// ProductSummary 商品摘要（DTO）
type ProductSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

// TopProductResponse 热销商品条目（DTO）
// 商品已删除时 product 字段缺省，条目保留
type TopProductResponse struct {
	ProductID    string          `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	OrderCount   int             `json:"order_count"`
	Product      *ProductSummary `json:"product,omitempty"`
}

// CollectionSalesResponse 按集合聚合的销售额（DTO）
type CollectionSalesResponse struct {
	Name    string `json:"name"`
	Revenue int64  `json:"revenue"`
	Count   int    `json:"count"`
}

// CustomerSummary 客户展示字段（DTO）
type CustomerSummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RecentOrderResponse 最近订单条目（DTO）
// 客户已删除时 customer 字段缺省，订单邮箱仍可用于展示
type RecentOrderResponse struct {
	ID          string           `json:"id"`
	OrderNumber int64            `json:"order_number"`
	Email       string           `json:"email"`
	Status      string           `json:"status"`
	Total       int64            `json:"total"`
	CreatedAt   time.Time        `json:"created_at"`
	Customer    *CustomerSummary `json:"customer,omitempty"`
}

// AverageOrderValueResponse 平均客单价（DTO）
type AverageOrderValueResponse struct {
	AverageOrderValue int64 `json:"average_order_value"`
}

// ConversionResponse 转化率统计（DTO）
type ConversionResponse struct {
	TotalCustomers      int     `json:"total_customers"`
	CustomersWithOrders int     `json:"customers_with_orders"`
	ConversionRate      float64 `json:"conversion_rate"`
}

// OverviewResponse 仪表盘总览（DTO）
type OverviewResponse struct {
	Revenue      RevenueResponse       `json:"revenue"`
	Orders       OrderStatsResponse    `json:"orders"`
	Customers    CustomerStatsResponse `json:"customers"`
	Products     ProductStatsResponse  `json:"products"`
	RecentOrders []RecentOrderResponse `json:"recent_orders"`
	TopProducts  []TopProductResponse  `json:"top_products"`
}
