package rpcustomer

import (
	"context"

	"shopos/dashboard/internal/app/domains/entity"
)

// CustomerRepository 客户仓储接口（只定义，不实现）
type CustomerRepository interface {
	// ListAll 拉取全量客户快照
	ListAll(ctx context.Context) ([]entity.Customer, error)
}
