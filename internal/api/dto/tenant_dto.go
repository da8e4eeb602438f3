package dto

// ==================== 租户管理 ====================

// CreateTenantRequest 创建租户请求
type CreateTenantRequest struct {
	Phone string `json:"phone" binding:"required,mobile"`
	Name  string `json:"name" binding:"required"`
}

// UpdateTenantRequest 更新租户请求（全量更新）
type UpdateTenantRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Phone string `json:"phone" binding:"required,mobile"`
	Name  string `json:"name" binding:"required"`
}
