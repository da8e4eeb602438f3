package model

// Account 平台账户（可登录，isAdmin 标记管理员）
type Account struct {
	BaseModel
	// 基础信息
	Contact  string `gorm:"size:100" json:"contact"`
	Phone    string `gorm:"size:20;index;not null" json:"phone"`
	Password string `gorm:"size:255;not null" json:"-"` // 哈希密码

	// 企业信息
	Company       string `gorm:"size:200" json:"company"`
	LicenseNumber string `gorm:"size:100" json:"licenseNumber"`
	Address       string `gorm:"size:255" json:"address"`
	Remark        string `gorm:"size:500" json:"remark"`

	// 0: 普通账户, 1: 管理员
	IsAdmin int `gorm:"default:0" json:"isAdmin"`
	// 0: 禁用, 1: 启用
	Status int `gorm:"default:1" json:"status"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountStatus 账户状态
const (
	AccountStatusDisabled = 0
	AccountStatusActive   = 1
)
