package dto

// ==================== 登录 ====================

// LoginRequest 登录请求
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,mobile"`
	Password string `json:"password" binding:"required"`
}

// ==================== 修改密码 ====================

// ModifyPwdRequest 修改本人密码请求
type ModifyPwdRequest struct {
	OldPwd     string `json:"oldPwd" binding:"required"`
	NewPwd     string `json:"newPwd" binding:"required"`
	ConfirmPwd string `json:"confirmPwd" binding:"required"`
}
