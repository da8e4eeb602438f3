package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/middleware"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/pkg/errs"
)

// ==================== AuthService 认证服务 ====================

// AuthService 认证服务
type AuthService struct {
	accountRepo repository.AccountRepository
}

// NewAuthService 创建认证服务
func NewAuthService(accountRepo repository.AccountRepository) *AuthService {
	return &AuthService{accountRepo: accountRepo}
}

// Login 登录，成功返回签名 Token
// 手机号不存在和密码错误返回同一条消息，避免账号枚举
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	account, err := s.accountRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrLoginFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return "", ErrLoginFailed
	}

	return middleware.GenerateToken(account.ID, account.Phone, account.IsAdmin)
}

// GetAuthInfo 获取当前登录账户信息，密码字段不参与序列化
func (s *AuthService) GetAuthInfo(ctx context.Context, accountID int64) (*model.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ==================== 错误定义 ====================

var (
	ErrLoginFailed = errs.Bad("手机号或密码不正确")
)
