package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tenant_admin_v1/internal/model"
)

// ==================== PermissionRepository 权限仓库 ====================

// PermissionRepository 权限仓库接口
type PermissionRepository interface {
	Create(ctx context.Context, perm *model.Permission) error
	GetByID(ctx context.Context, id int64) (*model.Permission, error)
	Update(ctx context.Context, perm *model.Permission) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter PageFilter) ([]model.Permission, int64, error)
	ExistsByKey(ctx context.Context, key string, excludeID int64) (bool, error)
}

// ==================== 实现 ====================

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository 创建权限仓库
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// Create 创建权限
func (r *permissionRepository) Create(ctx context.Context, perm *model.Permission) error {
	return r.db.WithContext(ctx).Create(perm).Error
}

// GetByID 根据 ID 获取权限
func (r *permissionRepository) GetByID(ctx context.Context, id int64) (*model.Permission, error) {
	var perm model.Permission
	err := r.db.WithContext(ctx).First(&perm, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &perm, err
}

// Update 更新权限
func (r *permissionRepository) Update(ctx context.Context, perm *model.Permission) error {
	return r.db.WithContext(ctx).Save(perm).Error
}

// Delete 删除权限（软删除）
func (r *permissionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Permission{}, id).Error
}

// List 权限列表，key 前缀匹配
func (r *permissionRepository) List(ctx context.Context, filter PageFilter) ([]model.Permission, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Permission{})

	if filter.Name != "" {
		query = query.Where("key LIKE ?", filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := filter.offset()

	var perms []model.Permission
	err := query.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&perms).Error

	return perms, total, err
}

// ExistsByKey 检查权限标识是否被未删除记录占用，excludeID > 0 时排除自身
func (r *permissionRepository) ExistsByKey(ctx context.Context, key string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Permission{}).
		Where("key = ?", key)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
