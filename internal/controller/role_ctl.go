package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/service"
)

// ==================== RoleController 角色控制器 ====================

// RoleController 角色控制器
type RoleController struct {
	roleService *service.RoleService
}

// NewRoleController 创建角色控制器
func NewRoleController(roleService *service.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// Create 创建角色
func (ctl *RoleController) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.roleService.Create(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Update 更新角色
func (ctl *RoleController) Update(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.roleService.Update(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Delete 删除角色（软删除）
func (ctl *RoleController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的角色ID")
		return
	}

	if err := ctl.roleService.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// List 角色列表
func (ctl *RoleController) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	roles, total, err := ctl.roleService.List(c.Request.Context(), repository.PageFilter{
		Name:     query.Name,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, dto.PageResult{
		Records:  roles,
		Total:    total,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
}

// Get 获取角色详情
func (ctl *RoleController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的角色ID")
		return
	}

	role, err := ctl.roleService.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, role)
}
