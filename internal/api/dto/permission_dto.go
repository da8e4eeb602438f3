package dto

// ==================== 权限管理 ====================

// CreatePermissionRequest 创建权限请求
// ID 不允许由前端指定，出现时拒绝
type CreatePermissionRequest struct {
	ID        int64  `json:"id"`
	PID       int64  `json:"pId"`
	AccountID int64  `json:"accountId"`
	Key       string `json:"key" binding:"required"`
}

// UpdatePermissionRequest 更新权限请求（全量更新）
type UpdatePermissionRequest struct {
	ID        int64  `json:"id" binding:"required"`
	PID       int64  `json:"pId"`
	AccountID int64  `json:"accountId"`
	Key       string `json:"key" binding:"required"`
	Status    *int   `json:"status" binding:"omitempty,oneof=0 1"`
}
