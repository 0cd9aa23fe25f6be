package entity

import "time"

// Customer 客户实体
type Customer struct {
	ID        string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Email     string `gorm:"column:email;type:varchar(255);uniqueIndex:uk_email;not null"`
	FirstName string `gorm:"column:first_name;type:varchar(128)"`
	LastName  string `gorm:"column:last_name;type:varchar(128)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
