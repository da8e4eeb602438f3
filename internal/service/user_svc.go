package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/pkg/errs"
)

// ==================== UserService 用户服务 ====================

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create 创建用户，手机号在未删除记录内唯一，密码为初始密码
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) error {
	exists, err := s.userRepo.ExistsByPhone(ctx, req.Phone, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserPhoneExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(InitPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: string(hashedPassword),
		RoleID:   req.RoleID,
		Status:   1,
	}

	return s.userRepo.Create(ctx, user)
}

// Update 更新用户，手机号唯一性检查排除自身
func (s *UserService) Update(ctx context.Context, req *dto.UpdateUserRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	exists, err := s.userRepo.ExistsByPhone(ctx, req.Phone, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserPhoneExists
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.RoleID = req.RoleID
	if req.Status != nil {
		user.Status = *req.Status
	}

	return s.userRepo.Update(ctx, user)
}

// Delete 删除用户（软删除），目标行不存在时视为成功
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// Get 获取用户详情，已删除记录视为不存在
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List 用户列表
func (s *UserService) List(ctx context.Context, filter repository.PageFilter) ([]model.User, int64, error) {
	return s.userRepo.List(ctx, filter)
}

// ==================== 错误定义 ====================

var (
	ErrUserPhoneExists = errs.Bad("手机号已经存在")
	ErrUserNotFound    = errs.Bad("用户不存在")
)
