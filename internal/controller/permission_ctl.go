package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/service"
)

// ==================== PermissionController 权限控制器 ====================

// PermissionController 权限控制器
type PermissionController struct {
	permService *service.PermissionService
}

// NewPermissionController 创建权限控制器
func NewPermissionController(permService *service.PermissionService) *PermissionController {
	return &PermissionController{permService: permService}
}

// Create 创建权限
func (ctl *PermissionController) Create(c *gin.Context) {
	var req dto.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.permService.Create(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Update 更新权限
func (ctl *PermissionController) Update(c *gin.Context) {
	var req dto.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.permService.Update(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Delete 删除权限（软删除）
func (ctl *PermissionController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的权限ID")
		return
	}

	if err := ctl.permService.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// List 权限列表
func (ctl *PermissionController) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	perms, total, err := ctl.permService.List(c.Request.Context(), repository.PageFilter{
		Name:     query.Name,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, dto.PageResult{
		Records:  perms,
		Total:    total,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
}

// Get 获取权限详情
func (ctl *PermissionController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的权限ID")
		return
	}

	perm, err := ctl.permService.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, perm)
}
