package model

import (
	"time"
)

// 统一用uint64做主键；不做软删除，删除就是真删除
type BaseModel struct {
	ID        uint64 `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllModels 返回需要AutoMigrate的全部模型，顺序按外键依赖排列
func AllModels() []interface{} {
	return []interface{}{&User{}, &Channel{}, &Video{}, &Comment{}, &Interaction{}}
}
