package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tenant_admin_v1/internal/model"
)

// ==================== AccountRepository 账户仓库 ====================

// AccountRepository 账户仓库接口
// 所有查询默认排除软删除记录（gorm DeletedAt）
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByPhone(ctx context.Context, phone string) (*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter PageFilter) ([]model.Account, int64, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
}

// PageFilter 分页筛选条件
type PageFilter struct {
	// Name 前缀匹配（资源各自决定匹配哪个字段）
	Name     string
	PageNo   int
	PageSize int
}

// offset 计算分页偏移，缺省 pageNo=1 pageSize=10
func (f *PageFilter) offset() (int, int) {
	if f.PageNo < 1 {
		f.PageNo = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
	return (f.PageNo - 1) * f.PageSize, f.PageSize
}

// ==================== 实现 ====================

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建账户仓库
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create 创建账户
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// GetByID 根据 ID 获取账户
func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

// GetByPhone 根据手机号获取账户
func (r *accountRepository) GetByPhone(ctx context.Context, phone string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

// Update 更新账户
func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// UpdatePassword 更新密码
func (r *accountRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	return r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Update("password", hashedPassword).Error
}

// Delete 删除账户（软删除，目标行已删除时静默成功）
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Account{}, id).Error
}

// List 账户列表，total 为过滤后的总数
func (r *accountRepository) List(ctx context.Context, filter PageFilter) ([]model.Account, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Account{})

	if filter.Name != "" {
		query = query.Where("contact LIKE ?", filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := filter.offset()

	var accounts []model.Account
	err := query.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error

	return accounts, total, err
}

// ExistsByPhone 检查手机号是否被未删除记录占用，excludeID > 0 时排除自身
func (r *accountRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("phone = ?", phone)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
