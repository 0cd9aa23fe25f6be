package entity

import "time"

// Order 订单实体（由下单子系统写入，本服务只读）
type Order struct {
	ID          string  `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderNumber int64   `gorm:"column:order_number;not null;uniqueIndex:uk_order_number"`
	Email       string  `gorm:"column:email;type:varchar(255);not null"`
	CustomerID  *string `gorm:"column:customer_id;type:varchar(64);index:idx_customer_id"`

	// 状态与金额（金额统一使用最小货币单位，整数分）
	Status     string `gorm:"column:status;type:varchar(16);not null;index:idx_status_created"`
	TotalCents int64  `gorm:"column:total_cents;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_status_created"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// 订单状态常量
const (
	OrderStatusPending    = "PENDING"
	OrderStatusPaid       = "PAID"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderItem 订单明细实体
// product_id 不做外键约束：商品允许在目录侧被删除，
// 指标计算需要对无法解析的商品做空安全处理
type OrderItem struct {
	ID         string `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID    string `gorm:"column:order_id;type:varchar(64);not null;index:idx_order_id"`
	ProductID  string `gorm:"column:product_id;type:varchar(64);not null;index:idx_product_id"`
	PriceCents int64  `gorm:"column:price_cents;not null"`
	Quantity   int    `gorm:"column:quantity;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
