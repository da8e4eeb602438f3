package service

import (
	"context"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/pkg/errs"
)

// ==================== PermissionService 权限服务 ====================

// PermissionService 权限服务
type PermissionService struct {
	permRepo repository.PermissionRepository
}

// NewPermissionService 创建权限服务
func NewPermissionService(permRepo repository.PermissionRepository) *PermissionService {
	return &PermissionService{permRepo: permRepo}
}

// Create 创建权限，不允许携带 ID，key 在未删除记录内唯一
func (s *PermissionService) Create(ctx context.Context, req *dto.CreatePermissionRequest) error {
	if req.ID != 0 {
		return ErrPermissionIDPresent
	}

	exists, err := s.permRepo.ExistsByKey(ctx, req.Key, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrPermissionExists
	}

	perm := &model.Permission{
		PID:       req.PID,
		AccountID: req.AccountID,
		Key:       req.Key,
		Status:    1,
	}

	return s.permRepo.Create(ctx, perm)
}

// Update 更新权限，key 唯一性检查排除自身
func (s *PermissionService) Update(ctx context.Context, req *dto.UpdatePermissionRequest) error {
	perm, err := s.permRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if perm == nil {
		return ErrPermissionNotFound
	}

	exists, err := s.permRepo.ExistsByKey(ctx, req.Key, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrPermissionExists
	}

	perm.PID = req.PID
	perm.AccountID = req.AccountID
	perm.Key = req.Key
	if req.Status != nil {
		perm.Status = *req.Status
	}

	return s.permRepo.Update(ctx, perm)
}

// Delete 删除权限（软删除），目标行不存在时视为成功
func (s *PermissionService) Delete(ctx context.Context, id int64) error {
	return s.permRepo.Delete(ctx, id)
}

// Get 获取权限详情，已删除记录视为不存在
func (s *PermissionService) Get(ctx context.Context, id int64) (*model.Permission, error) {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, ErrPermissionNotFound
	}
	return perm, nil
}

// List 权限列表
func (s *PermissionService) List(ctx context.Context, filter repository.PageFilter) ([]model.Permission, int64, error) {
	return s.permRepo.List(ctx, filter)
}

// ==================== 错误定义 ====================

var (
	ErrPermissionIDPresent = errs.Bad("权限ID存在")
	ErrPermissionExists    = errs.Bad("权限已存在")
	ErrPermissionNotFound  = errs.Bad("权限不存在")
)
