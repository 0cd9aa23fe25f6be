package rporder

import (
	"context"

	"gorm.io/gorm"

	"shopos/dashboard/internal/app/domains/entity"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// ListAll 拉取全量订单快照
func (r *OrderRepositoryImpl) ListAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListRecent 按创建时间倒序拉取最近订单并关联客户
// 先取订单再按 customer_id 批量取客户，客户解析不到时保留订单、Customer 置 nil
func (r *OrderRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]OrderWithCustomer, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	customerIDs := make([]string, 0, len(orders))
	for i := range orders {
		if orders[i].CustomerID != nil {
			customerIDs = append(customerIDs, *orders[i].CustomerID)
		}
	}

	customerByID := make(map[string]*entity.Customer)
	if len(customerIDs) > 0 {
		var customers []entity.Customer
		err := r.db.WithContext(ctx).
			Where("id IN ?", customerIDs).
			Find(&customers).Error
		if err != nil {
			return nil, err
		}
		for i := range customers {
			customerByID[customers[i].ID] = &customers[i]
		}
	}

	result := make([]OrderWithCustomer, 0, len(orders))
	for i := range orders {
		row := OrderWithCustomer{Order: orders[i]}
		if orders[i].CustomerID != nil {
			row.Customer = customerByID[*orders[i].CustomerID]
		}
		result = append(result, row)
	}

	return result, nil
}

// ListItems 拉取全量订单明细快照
// 明细表整表拉取后在进程内聚合，聚合下推到存储层是后续的优化方向
func (r *OrderRepositoryImpl) ListItems(ctx context.Context) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
