package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ==================== 校验器注册 ====================

// 中国大陆手机号
var mobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// RegisterValidators 注册自定义校验规则，启动时调用一次
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
}

// ==================== 错误消息提取 ====================

// 校验错误消息表，key 为 "结构体.字段.规则"
var validationMsgs = map[string]string{
	"LoginRequest.Phone.required":    "手机号不能为空",
	"LoginRequest.Phone.mobile":      "请输入正确的手机号",
	"LoginRequest.Password.required": "密码不能为空",

	"ModifyPwdRequest.OldPwd.required":     "请输入旧密码",
	"ModifyPwdRequest.NewPwd.required":     "请输入新密码",
	"ModifyPwdRequest.ConfirmPwd.required": "请输入确认密码",

	"CreateAccountRequest.Phone.required":   "请输入正确的手机号",
	"CreateAccountRequest.Phone.mobile":     "请输入正确的手机号",
	"CreateAccountRequest.Contact.required": "联系人不能为空",
	"UpdateAccountRequest.ID.required":      "账户ID不能为空",
	"UpdateAccountRequest.Phone.mobile":     "请输入正确的手机号",

	"CreateUserRequest.Phone.required": "请输入正确的手机号",
	"CreateUserRequest.Phone.mobile":   "请输入正确的手机号",
	"CreateUserRequest.Name.required":  "用户名不能为空",
	"UpdateUserRequest.ID.required":    "用户ID不能为空",
	"UpdateUserRequest.Phone.required": "请输入正确的手机号",
	"UpdateUserRequest.Phone.mobile":   "请输入正确的手机号",
	"UpdateUserRequest.Name.required":  "用户名不能为空",

	"CreateRoleRequest.Name.required": "角色名称不能为空",
	"CreateRoleRequest.Key.required":  "角色标识不能为空",
	"UpdateRoleRequest.ID.required":   "角色ID不能为空",
	"UpdateRoleRequest.Name.required": "角色名称不能为空",
	"UpdateRoleRequest.Key.required":  "角色标识不能为空",

	"CreatePermissionRequest.Key.required": "权限标识不能为空",
	"UpdatePermissionRequest.ID.required":  "权限ID不能为空",
	"UpdatePermissionRequest.Key.required": "权限标识不能为空",

	"CreateTenantRequest.Phone.required": "请输入正确的手机号",
	"CreateTenantRequest.Phone.mobile":   "请输入正确的手机号",
	"CreateTenantRequest.Name.required":  "租户名称不能为空",
	"UpdateTenantRequest.ID.required":    "租户id不能为空",
	"UpdateTenantRequest.Phone.required": "请输入正确的手机号",
	"UpdateTenantRequest.Phone.mobile":   "请输入正确的手机号",
	"UpdateTenantRequest.Name.required":  "租户名称不能为空",

	"PageQuery.PageSize.min": "每页最少显示1条",
	"PageQuery.PageSize.max": "每页最多不能超过100条",
}

// FirstError 提取第一条校验失败的中文消息，未命中消息表时回退为通用提示
func FirstError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		key := e.StructNamespace() + "." + e.Tag()
		if msg, ok := validationMsgs[key]; ok {
			return msg
		}
	}
	return "参数验证错误: " + err.Error()
}
