package dto

// ==================== 用户管理 ====================

// CreateUserRequest 创建用户请求，密码使用初始密码
type CreateUserRequest struct {
	Phone  string `json:"phone" binding:"required,mobile"`
	Name   string `json:"name" binding:"required"`
	RoleID int64  `json:"roleId"`
}

// UpdateUserRequest 更新用户请求（全量更新）
type UpdateUserRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Phone  string `json:"phone" binding:"required,mobile"`
	Name   string `json:"name" binding:"required"`
	RoleID int64  `json:"roleId"`
	Status *int   `json:"status" binding:"omitempty,oneof=0 1"`
}
