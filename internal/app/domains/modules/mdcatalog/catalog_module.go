package mdcatalog

import (
	"context"

	"shopos/dashboard/internal/app/domains/entity"
	"shopos/dashboard/internal/app/domains/repo/rpproduct"
)

// CatalogModule 商品目录模块（数据操作层）
type CatalogModule struct {
	productRepo rpproduct.ProductRepository
}

// NewCatalogModule 创建商品目录模块
func NewCatalogModule(productRepo rpproduct.ProductRepository) *CatalogModule {
	return &CatalogModule{
		productRepo: productRepo,
	}
}

// GetProducts 拉取商品快照
func (m *CatalogModule) GetProducts(ctx context.Context) ([]entity.Product, error) {
	return m.productRepo.ListAll(ctx)
}

// GetCollections 拉取集合快照
func (m *CatalogModule) GetCollections(ctx context.Context) ([]entity.Collection, error) {
	return m.productRepo.ListCollections(ctx)
}
