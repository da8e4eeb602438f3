package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/service"
)

// ==================== UserController 用户控制器 ====================

// UserController 用户控制器
type UserController struct {
	userService *service.UserService
}

// NewUserController 创建用户控制器
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Create 创建用户
func (ctl *UserController) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.userService.Create(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Update 更新用户
func (ctl *UserController) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.userService.Update(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Delete 删除用户（软删除）
func (ctl *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的用户ID")
		return
	}

	if err := ctl.userService.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// List 用户列表
func (ctl *UserController) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	users, total, err := ctl.userService.List(c.Request.Context(), repository.PageFilter{
		Name:     query.Name,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, dto.PageResult{
		Records:  users,
		Total:    total,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
}

// Get 获取用户详情
func (ctl *UserController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的用户ID")
		return
	}

	user, err := ctl.userService.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, user)
}
