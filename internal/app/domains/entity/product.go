package entity

import "time"

// Product 商品实体
type Product struct {
	ID           string  `gorm:"column:id;primaryKey;type:varchar(64)"`
	Title        string  `gorm:"column:title;type:varchar(255);not null"`
	Slug         string  `gorm:"column:slug;type:varchar(255);uniqueIndex:uk_slug;not null"`
	PriceCents   int64   `gorm:"column:price_cents;not null"`
	Stock        int     `gorm:"column:stock;not null;default:0"`
	CollectionID *string `gorm:"column:collection_id;type:varchar(64);index:idx_collection_id"`
	Published    bool    `gorm:"column:published;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Collection 商品集合实体
type Collection struct {
	ID   string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Name string `gorm:"column:name;type:varchar(255);not null"`
}

// TableName 指定表名
func (Collection) TableName() string {
	return "collections"
}
