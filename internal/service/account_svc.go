package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/pkg/errs"
)

// InitPassword 新建账户/用户的初始密码
const InitPassword = "123456"

// ==================== AccountService 账户服务 ====================

// AccountService 账户服务
type AccountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService 创建账户服务
func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// Create 创建账户，手机号在未删除记录内唯一，密码为初始密码
func (s *AccountService) Create(ctx context.Context, req *dto.CreateAccountRequest) (*model.Account, error) {
	exists, err := s.accountRepo.ExistsByPhone(ctx, req.Phone, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountPhoneExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(InitPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Contact:       req.Contact,
		Phone:         req.Phone,
		Password:      string(hashedPassword),
		Company:       req.Company,
		LicenseNumber: req.LicenseNumber,
		Address:       req.Address,
		Remark:        req.Remark,
		IsAdmin:       req.IsAdmin,
		Status:        model.AccountStatusActive,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update 更新账户，手机号唯一性检查排除自身
func (s *AccountService) Update(ctx context.Context, req *dto.UpdateAccountRequest) error {
	account, err := s.accountRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if req.Phone != "" {
		exists, err := s.accountRepo.ExistsByPhone(ctx, req.Phone, req.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAccountPhoneExists
		}
		account.Phone = req.Phone
	}

	account.Contact = req.Contact
	account.Company = req.Company
	account.LicenseNumber = req.LicenseNumber
	account.Address = req.Address
	account.Remark = req.Remark
	if req.IsAdmin != nil {
		account.IsAdmin = *req.IsAdmin
	}
	if req.Status != nil {
		account.Status = *req.Status
	}

	return s.accountRepo.Update(ctx, account)
}

// Delete 删除账户（软删除），目标行不存在时视为成功
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.accountRepo.Delete(ctx, id)
}

// Get 获取账户详情，已删除记录视为不存在
func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// List 账户列表
func (s *AccountService) List(ctx context.Context, filter repository.PageFilter) ([]model.Account, int64, error) {
	return s.accountRepo.List(ctx, filter)
}

// ModifyPwd 修改本人密码，旧密码校验通过后重新哈希入库
func (s *AccountService) ModifyPwd(ctx context.Context, accountID int64, req *dto.ModifyPwdRequest) error {
	if req.NewPwd != req.ConfirmPwd {
		return ErrPwdConfirmMismatch
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.OldPwd)); err != nil {
		return ErrOldPwdIncorrect
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.accountRepo.UpdatePassword(ctx, accountID, string(hashedPassword))
}

// ==================== 错误定义 ====================

var (
	ErrAccountPhoneExists = errs.Bad("手机号已存在")
	ErrAccountNotFound    = errs.Bad("账户不存在")
	ErrPwdConfirmMismatch = errs.Bad("新密码和确认密码不一致")
	ErrOldPwdIncorrect    = errs.Bad("旧密码不正确")
)
