package model

// Tenant 租户，phone 为注册手机号（未删除记录内唯一）
type Tenant struct {
	BaseModel
	Name  string `gorm:"size:200;not null" json:"name"`
	Phone string `gorm:"size:20;index;not null" json:"phone"`
}

func (Tenant) TableName() string {
	return "tenants"
}
