package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/service"
)

// ==================== TenantController 租户控制器 ====================

// TenantController 租户控制器
type TenantController struct {
	tenantService *service.TenantService
}

// NewTenantController 创建租户控制器
func NewTenantController(tenantService *service.TenantService) *TenantController {
	return &TenantController{tenantService: tenantService}
}

// Create 创建租户
func (ctl *TenantController) Create(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	tenant, err := ctl.tenantService.Create(c.Request.Context(), &req)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, tenant)
}

// Update 更新租户
func (ctl *TenantController) Update(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	if err := ctl.tenantService.Update(c.Request.Context(), &req); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// Delete 删除租户（软删除）
func (ctl *TenantController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的租户ID")
		return
	}

	if err := ctl.tenantService.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}

	ok(c, "ok")
}

// List 租户列表
func (ctl *TenantController) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, 400, dto.FirstError(err))
		return
	}

	tenants, total, err := ctl.tenantService.List(c.Request.Context(), repository.PageFilter{
		Name:     query.Name,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, dto.PageResult{
		Records:  tenants,
		Total:    total,
		PageNo:   query.PageNo,
		PageSize: query.PageSize,
	})
}

// Get 获取租户详情
func (ctl *TenantController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "无效的租户ID")
		return
	}

	tenant, err := ctl.tenantService.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, tenant)
}
