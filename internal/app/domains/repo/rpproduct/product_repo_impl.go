package rpproduct

import (
	"context"

	"gorm.io/gorm"

	"shopos/dashboard/internal/app/domains/entity"
)

// ProductRepositoryImpl 商品仓储实现（MySQL）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// ListAll 拉取全量商品快照
func (r *ProductRepositoryImpl) ListAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCollections 拉取全量集合快照
func (r *ProductRepositoryImpl) ListCollections(ctx context.Context) ([]entity.Collection, error) {
	var collections []entity.Collection
	if err := r.db.WithContext(ctx).Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}
