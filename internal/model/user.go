package model

// User 租户下的业务用户
type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20;index;not null" json:"phone"`
	Password string `gorm:"size:255;not null" json:"-"` // 哈希密码
	RoleID   int64  `gorm:"index" json:"roleId"`
	// 0: 禁用, 1: 启用
	Status int `gorm:"default:1" json:"status"`
}

func (User) TableName() string {
	return "users"
}
