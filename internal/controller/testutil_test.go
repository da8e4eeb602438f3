package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/controller"
	"tenant_admin_v1/internal/middleware"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/router"
	"tenant_admin_v1/internal/service"
)

// ==================== 测试辅助 ====================

// testServer 完整的接口测试环境：内存数据库 + 真实路由
type testServer struct {
	engine     *gin.Engine
	db         *gorm.DB
	accountSvc *service.AccountService
}

// apiResponse 统一响应结构，Data 保持原始 JSON 由用例自行解析
type apiResponse struct {
	Status int
	Code   int             `json:"code"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := dto.RegisterValidators(); err != nil {
		t.Fatalf("注册校验器失败: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Account{},
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Tenant{},
	); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}

	accountRepo := repository.NewAccountRepository(db)
	accountSvc := service.NewAccountService(accountRepo)

	ctls := &router.Controllers{
		Auth:       controller.NewAuthController(service.NewAuthService(accountRepo)),
		Account:    controller.NewAccountController(accountSvc),
		User:       controller.NewUserController(service.NewUserService(repository.NewUserRepository(db))),
		Role:       controller.NewRoleController(service.NewRoleService(repository.NewRoleRepository(db))),
		Permission: controller.NewPermissionController(service.NewPermissionService(repository.NewPermissionRepository(db))),
		Tenant:     controller.NewTenantController(service.NewTenantService(repository.NewTenantRepository(db))),
	}

	// 限流阈值放到足够大，避免干扰用例
	limiter := middleware.NewIPRateLimiter(100000, time.Minute)
	engine := router.SetupRouter(zap.NewNop(), limiter, ctls)

	return &testServer{engine: engine, db: db, accountSvc: accountSvc}
}

// do 发起一次请求并解析响应信封
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *apiResponse {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求体失败: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	resp := &apiResponse{Status: w.Code}
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatalf("解析响应失败: %v, body = %s", err, w.Body.String())
	}
	return resp
}

// seedAdmin 创建一个管理员账户并签发其 Token
func (s *testServer) seedAdmin(t *testing.T, phone string) (*model.Account, string) {
	t.Helper()

	account, err := s.accountSvc.Create(context.Background(), &dto.CreateAccountRequest{
		Contact: "管理员",
		Phone:   phone,
		IsAdmin: 1,
	})
	if err != nil {
		t.Fatalf("创建管理员账户失败: %v", err)
	}

	token, err := middleware.GenerateToken(account.ID, account.Phone, account.IsAdmin)
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}
	return account, token
}
