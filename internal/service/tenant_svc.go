package service

import (
	"context"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/pkg/errs"
)

// ==================== TenantService 租户服务 ====================

// TenantService 租户服务
type TenantService struct {
	tenantRepo repository.TenantRepository
}

// NewTenantService 创建租户服务
func NewTenantService(tenantRepo repository.TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// Create 创建租户，注册手机号在未删除记录内唯一
func (s *TenantService) Create(ctx context.Context, req *dto.CreateTenantRequest) (*model.Tenant, error) {
	exists, err := s.tenantRepo.ExistsByPhone(ctx, req.Phone, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTenantPhoneRegistered
	}

	tenant := &model.Tenant{
		Name:  req.Name,
		Phone: req.Phone,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Update 更新租户，手机号唯一性检查排除自身
func (s *TenantService) Update(ctx context.Context, req *dto.UpdateTenantRequest) error {
	tenant, err := s.tenantRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return ErrTenantNotFound
	}

	exists, err := s.tenantRepo.ExistsByPhone(ctx, req.Phone, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrTenantPhoneTaken
	}

	tenant.Name = req.Name
	tenant.Phone = req.Phone

	return s.tenantRepo.Update(ctx, tenant)
}

// Delete 删除租户（软删除），目标行不存在时视为成功
func (s *TenantService) Delete(ctx context.Context, id int64) error {
	return s.tenantRepo.Delete(ctx, id)
}

// Get 获取租户详情，已删除记录视为不存在
func (s *TenantService) Get(ctx context.Context, id int64) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}

// List 租户列表
func (s *TenantService) List(ctx context.Context, filter repository.PageFilter) ([]model.Tenant, int64, error) {
	return s.tenantRepo.List(ctx, filter)
}

// ==================== 错误定义 ====================

var (
	ErrTenantPhoneRegistered = errs.Bad("该手机号已被注册")
	ErrTenantPhoneTaken      = errs.Bad("手机号已经注册")
	ErrTenantNotFound        = errs.Bad("租户不存在")
)
