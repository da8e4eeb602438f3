package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/middleware"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/service"
)

// ==================== AccountController 账户控制器 ====================

// AccountController 账户控制器
type AccountController struct {
	accountService *service.AccountService
}

// NewAccountController 创建账户控制器
func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// Create 创建账户
// @Summary 创建账户
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAccountRequest true "账户信息"
// @Success 200 {object} controller.Response
// @Router /account [post]
func (ctl *AccountController) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	account, err := ctl.accountService.Create(c.Request.Context(), &req)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, account)
}

// Update 更新账户
// @Summary 更新账户
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAccountRequest true "账户信息"
// @Success 200 {object} controller.Response
// @Router /account [put]
func (ctl *AccountController) Update(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.accountService.Update(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Delete 删除账户
// @Summary 删除账户（软删除）
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户 ID"
// @Success 200 {object} controller.Response
// @Router /account/{id} [delete]
func (ctl *AccountController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的账户ID")
		return
	}

	if err := ctl.accountService.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// List 账户列表
// @Summary 账户列表
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Param pageNo query int false "页码"
// @Param pageSize query int false "每页数量"
// @Success 200 {object} controller.Response
// @Router /account/list [get]
func (ctl *AccountController) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	accounts, total, err := ctl.accountService.List(c.Request.Context(), repository.PageFilter{
		Name:     query.Name,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, dto.PageResult{
		Records:  accounts,
		Total:    total,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
}

// Get 获取账户详情
// @Summary 获取账户详情
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户 ID"
// @Success 200 {object} controller.Response
// @Router /account/{id} [get]
func (ctl *AccountController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的账户ID")
		return
	}

	account, err := ctl.accountService.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, account)
}

// ModifyPwd 修改本人密码
// @Summary 修改本人密码
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ModifyPwdRequest true "密码信息"
// @Success 200 {object} controller.Response
// @Router /account/mp [post]
func (ctl *AccountController) ModifyPwd(c *gin.Context) {
	var req dto.ModifyPwdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	accountID := middleware.GetAccountID(c)

	if err := ctl.accountService.ModifyPwd(c.Request.Context(), accountID, &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}
