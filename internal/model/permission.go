package model

// Permission 权限点，key 为权限标识（未删除记录内唯一）
// PID 指向父级权限，构成树形菜单
type Permission struct {
	BaseModel
	PID       int64  `gorm:"column:p_id;index;default:0" json:"pId"`
	AccountID int64  `gorm:"index;default:0" json:"accountId"`
	Key       string `gorm:"size:100;index;not null" json:"key"`
	// 0: 禁用, 1: 启用
	Status int `gorm:"default:1" json:"status"`
}

func (Permission) TableName() string {
	return "permissions"
}
