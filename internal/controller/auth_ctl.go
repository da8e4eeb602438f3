package controller

import (
	"github.com/gin-gonic/gin"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/middleware"
	"tenant_admin_v1/internal/service"
)

// ==================== AuthController 认证控制器 ====================

// AuthController 认证控制器
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 创建认证控制器
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login 登录
// @Summary 登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} controller.Response
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	token, err := ctl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, token)
}

// GetAuthInfo 获取当前登录账户信息
// @Summary 获取认证信息
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controller.Response
// @Router /auth/info [get]
func (ctl *AuthController) GetAuthInfo(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	account, err := ctl.authService.GetAuthInfo(c.Request.Context(), accountID)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, account)
}
