package dto

// ==================== 账户管理 ====================

// CreateAccountRequest 创建账户请求，密码不由前端提供（使用初始密码）
type CreateAccountRequest struct {
	Phone         string `json:"phone" binding:"required,mobile"`
	Contact       string `json:"contact" binding:"required"`
	Company       string `json:"company"`
	LicenseNumber string `json:"licenseNumber"`
	Address       string `json:"address"`
	Remark        string `json:"remark"`
	IsAdmin       int    `json:"isAdmin" binding:"omitempty,oneof=0 1"`
}

// UpdateAccountRequest 更新账户请求（全量更新）
type UpdateAccountRequest struct {
	ID            int64  `json:"id" binding:"required"`
	Phone         string `json:"phone" binding:"omitempty,mobile"`
	Contact       string `json:"contact"`
	Company       string `json:"company"`
	LicenseNumber string `json:"licenseNumber"`
	Address       string `json:"address"`
	Remark        string `json:"remark"`
	IsAdmin       *int   `json:"isAdmin" binding:"omitempty,oneof=0 1"`
	Status        *int   `json:"status" binding:"omitempty,oneof=0 1"`
}
