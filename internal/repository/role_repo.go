package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tenant_admin_v1/internal/model"
)

// ==================== RoleRepository 角色仓库 ====================

// RoleRepository 角色仓库接口
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id int64) (*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter PageFilter) ([]model.Role, int64, error)
	ExistsByKey(ctx context.Context, key string, excludeID int64) (bool, error)
}

// ==================== 实现 ====================

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓库
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create 创建角色
func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// GetByID 根据 ID 获取角色
func (r *roleRepository) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &role, err
}

// Update 更新角色
func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// Delete 删除角色（软删除）
func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Role{}, id).Error
}

// List 角色列表，name 前缀匹配
func (r *roleRepository) List(ctx context.Context, filter PageFilter) ([]model.Role, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Role{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := filter.offset()

	var roles []model.Role
	err := query.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&roles).Error

	return roles, total, err
}

// ExistsByKey 检查角色标识是否被未删除记录占用，excludeID > 0 时排除自身
func (r *roleRepository) ExistsByKey(ctx context.Context, key string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Role{}).
		Where("key = ?", key)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
