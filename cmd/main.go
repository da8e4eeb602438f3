package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tenant_admin_v1/internal/api/dto"
	"tenant_admin_v1/internal/config"
	"tenant_admin_v1/internal/controller"
	"tenant_admin_v1/internal/middleware"
	"tenant_admin_v1/internal/model"
	"tenant_admin_v1/internal/repository"
	"tenant_admin_v1/internal/router"
	"tenant_admin_v1/internal/service"
	"tenant_admin_v1/pkg/database"
	"tenant_admin_v1/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg := config.Load()

	// 2. 初始化日志
	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 3. 初始化数据库
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}

	// 4. JWT 与校验器
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: cfg.JWTSecret,
		TokenTTL:  cfg.JWTTTL,
		Issuer:    "tenant-admin",
	})
	if err := dto.RegisterValidators(); err != nil {
		log.Fatal("校验器注册失败", zap.Error(err))
	}

	// 5. 初始化依赖
	deps := initDependencies(db)

	// 6. 初始化路由
	limiter := middleware.NewIPRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	r := router.SetupRouter(log, limiter, deps.Controllers)

	// 7. 启动服务
	startServer(r, cfg.ServerPort, log)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Account    repository.AccountRepository
	User       repository.UserRepository
	Role       repository.RoleRepository
	Permission repository.PermissionRepository
	Tenant     repository.TenantRepository
}

// Services 服务集合
type Services struct {
	Auth       *service.AuthService
	Account    *service.AccountService
	User       *service.UserService
	Role       *service.RoleService
	Permission *service.PermissionService
	Tenant     *service.TenantService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库并迁移表结构
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	return database.InitDB(cfg.DatabaseDSN,
		&model.Account{},
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Tenant{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	repos := &Repositories{
		Account:    repository.NewAccountRepository(db),
		User:       repository.NewUserRepository(db),
		Role:       repository.NewRoleRepository(db),
		Permission: repository.NewPermissionRepository(db),
		Tenant:     repository.NewTenantRepository(db),
	}

	services := &Services{
		Auth:       service.NewAuthService(repos.Account),
		Account:    service.NewAccountService(repos.Account),
		User:       service.NewUserService(repos.User),
		Role:       service.NewRoleService(repos.Role),
		Permission: service.NewPermissionService(repos.Permission),
		Tenant:     service.NewTenantService(repos.Tenant),
	}

	controllers := &router.Controllers{
		Auth:       controller.NewAuthController(services.Auth),
		Account:    controller.NewAccountController(services.Account),
		User:       controller.NewUserController(services.User),
		Role:       controller.NewRoleController(services.Role),
		Permission: controller.NewPermissionController(services.Permission),
		Tenant:     controller.NewTenantController(services.Tenant),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务并等待退出信号
func startServer(r *gin.Engine, port string, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Info("服务启动", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务强制关闭", zap.Error(err))
	}

	log.Info("服务已退出")
}
