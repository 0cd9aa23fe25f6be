package rpcustomer

import (
	"context"

	"gorm.io/gorm"

	"shopos/dashboard/internal/app/domains/entity"
)

// CustomerRepositoryImpl 客户仓储实现（MySQL）
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储实例
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// ListAll 拉取全量客户快照
func (r *CustomerRepositoryImpl) ListAll(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
