package mdcustomer

import (
	"context"

	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/domains/repo/rpcustomer"
)

// CustomerModule 客户模块（数据操作层）
type CustomerModule struct {
	customerRepo rpcustomer.CustomerRepository
}

// NewCustomerModule 创建客户模块
func NewCustomerModule(customerRepo rpcustomer.CustomerRepository) *CustomerModule {
	return &CustomerModule{
		customerRepo: customerRepo,
	}
}

// GetCustomers 拉取客户快照
func (m *CustomerModule) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	return m.customerRepo.ListAll(ctx)
}
