package mdorder

import (
	"context"

	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/domains/repo/rporder"
)

// OrderModule 订单模块（数据操作层）
type OrderModule struct {
	orderRepo rporder.OrderRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(orderRepo rporder.OrderRepository) *OrderModule {
	return &OrderModule{
		orderRepo: orderRepo,
	}
}

// GetOrders 拉取订单快照
func (m *OrderModule) GetOrders(ctx context.Context) ([]entity.Order, error) {
	return m.orderRepo.ListAll(ctx)
}

// GetRecentOrders 拉取最近订单（含客户展示字段）
func (m *OrderModule) GetRecentOrders(ctx context.Context, limit int) ([]rporder.OrderWithCustomer, error) {
	return m.orderRepo.ListRecent(ctx, limit)
}

// GetOrderItems 拉取订单明细快照
func (m *OrderModule) GetOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	return m.orderRepo.ListItems(ctx)
}
