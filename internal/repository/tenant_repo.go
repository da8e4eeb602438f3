package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tenant_admin_v1/internal/model"
)

// ==================== TenantRepository 租户仓库 ====================

// TenantRepository 租户仓库接口
type TenantRepository interface {
	Create(ctx context.Context, tenant *model.Tenant) error
	GetByID(ctx context.Context, id int64) (*model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter PageFilter) ([]model.Tenant, int64, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
}

// ==================== 实现 ====================

type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository 创建租户仓库
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

// Create 创建租户
func (r *tenantRepository) Create(ctx context.Context, tenant *model.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// GetByID 根据 ID 获取租户
func (r *tenantRepository) GetByID(ctx context.Context, id int64) (*model.Tenant, error) {
	var tenant model.Tenant
	err := r.db.WithContext(ctx).First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tenant, err
}

// Update 更新租户
func (r *tenantRepository) Update(ctx context.Context, tenant *model.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

// Delete 删除租户（软删除）
func (r *tenantRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Tenant{}, id).Error
}

// List 租户列表，name 前缀匹配
func (r *tenantRepository) List(ctx context.Context, filter PageFilter) ([]model.Tenant, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Tenant{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := filter.offset()

	var tenants []model.Tenant
	err := query.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tenants).Error

	return tenants, total, err
}

// ExistsByPhone 检查注册手机号是否被未删除记录占用，excludeID > 0 时排除自身
func (r *tenantRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Where("phone = ?", phone)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
