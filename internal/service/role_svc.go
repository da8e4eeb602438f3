package service

import (
	"context"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/pkg/errs"
)

// ==================== RoleService 角色服务 ====================

// RoleService 角色服务
type RoleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService 创建角色服务
func NewRoleService(roleRepo repository.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// Create 创建角色，key 在未删除记录内唯一
func (s *RoleService) Create(ctx context.Context, req *dto.CreateRoleRequest) error {
	exists, err := s.roleRepo.ExistsByKey(ctx, req.Key, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrRoleExists
	}

	role := &model.Role{
		Name:   req.Name,
		Key:    req.Key,
		Status: 1,
	}

	return s.roleRepo.Create(ctx, role)
}

// Update 更新角色，key 唯一性检查排除自身
func (s *RoleService) Update(ctx context.Context, req *dto.UpdateRoleRequest) error {
	role, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	exists, err := s.roleRepo.ExistsByKey(ctx, req.Key, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrRoleExists
	}

	role.Name = req.Name
	role.Key = req.Key
	if req.Status != nil {
		role.Status = *req.Status
	}

	return s.roleRepo.Update(ctx, role)
}

// Delete 删除角色（软删除），目标行不存在时视为成功
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return s.roleRepo.Delete(ctx, id)
}

// Get 获取角色详情，已删除记录视为不存在
func (s *RoleService) Get(ctx context.Context, id int64) (*model.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

// List 角色列表
func (s *RoleService) List(ctx context.Context, filter repository.PageFilter) ([]model.Role, int64, error) {
	return s.roleRepo.List(ctx, filter)
}

// ==================== 错误定义 ====================

var (
	ErrRoleExists   = errs.Bad("角色已存在")
	ErrRoleNotFound = errs.Bad("角色不存在")
)
