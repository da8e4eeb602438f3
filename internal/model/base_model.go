package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 公共字段，软删除通过 DeletedAt 实现：
// 默认查询一律过滤已删除记录，物理行保留
type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
