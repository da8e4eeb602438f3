package dto

// ==================== 角色管理 ====================

// CreateRoleRequest 创建角色请求
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
	Key  string `json:"key" binding:"required"`
}

// UpdateRoleRequest 更新角色请求（全量更新）
type UpdateRoleRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Key    string `json:"key" binding:"required"`
	Status *int   `json:"status" binding:"omitempty,oneof=0 1"`
}
