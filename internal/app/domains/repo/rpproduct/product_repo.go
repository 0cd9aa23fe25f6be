package rpproduct

import (
	"context"

	"shopos/dashboard/internal/app/domains/entity"
)

// ProductRepository 商品仓储接口（只定义，不实现）
// 集合是商品目录的附属维度，一并放在商品仓储
type ProductRepository interface {
	// ListAll 拉取全量商品快照
	ListAll(ctx context.Context) ([]entity.Product, error)

	// ListCollections 拉取全量集合快照
	ListCollections(ctx context.Context) ([]entity.Collection, error)
}
