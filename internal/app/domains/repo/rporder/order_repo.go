package rporder

import (
	"context"

	"shopos/dashboard/internal/app/domains/entity"
)

// OrderWithCustomer 订单与客户展示字段的关联结果
// 客户可能已被删除（customer_id 为空或解析不到），此时 Customer 为 nil
type OrderWithCustomer struct {
	Order    entity.Order
	Customer *entity.Customer
}

// OrderRepository 订单仓储接口（只定义，不实现）
// 本服务只读：快照查询由下单子系统维护的表提供
type OrderRepository interface {
	// ListAll 拉取全量订单快照
	ListAll(ctx context.Context) ([]entity.Order, error)

	// ListRecent 按创建时间倒序拉取最近订单，并关联客户展示字段
	ListRecent(ctx context.Context, limit int) ([]OrderWithCustomer, error)

	// ListItems 拉取全量订单明细快照
	ListItems(ctx context.Context) ([]entity.OrderItem, error)
}
