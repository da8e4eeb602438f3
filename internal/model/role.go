package model

// Role 角色，key 为业务唯一标识（未删除记录内唯一）
type Role struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
	Key  string `gorm:"size:100;index;not null" json:"key"`
	// 0: 禁用, 1: 启用
	Status int `gorm:"default:1" json:"status"`
}

func (Role) TableName() string {
	return "roles"
}
