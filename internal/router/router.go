package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"tenant_admin_v1/internal/controller"
	"tenant_admin_v1/internal/middleware"
)

// Controllers 控制器集合
type Controllers struct {
	Auth       *controller.AuthController
	Account    *controller.AccountController
	User       *controller.UserController
	Role       *controller.RoleController
	Permission *controller.PermissionController
	Tenant     *controller.TenantController
}

// SetupRouter 注册所有路由
// 除 /auth/login 外全部要求 Token，资源管理接口额外要求管理员
func SetupRouter(log *zap.Logger, limiter *middleware.IPRateLimiter, ctls *Controllers) *gin.Engine {
	r := gin.New()

	r.Use(middleware.GinLogger(log))
	r.Use(middleware.GinRecovery(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Use(middleware.RateLimit(limiter))

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// auth 鉴权组
	auth := r.Group("/auth")
	{
		auth.POST("/login", ctls.Auth.Login)
		auth.GET("/info", middleware.JWTAuth(), ctls.Auth.GetAuthInfo)
	}

	// account 账户组，修改本人密码只要求登录
	account := r.Group("/account", middleware.JWTAuth())
	{
		account.POST("/mp", ctls.Account.ModifyPwd)

		admin := account.Group("", middleware.AdminRequired())
		{
			admin.POST("", ctls.Account.Create)
			admin.PUT("", ctls.Account.Update)
			admin.DELETE("/:id", ctls.Account.Delete)
			admin.GET("/list", ctls.Account.List)
			admin.GET("/:id", ctls.Account.Get)
		}
	}

	// user 用户组
	user := r.Group("/user", middleware.JWTAuth(), middleware.AdminRequired())
	{
		user.POST("", ctls.User.Create)
		user.PUT("", ctls.User.Update)
		user.DELETE("/:id", ctls.User.Delete)
		user.GET("/list", ctls.User.List)
		user.GET("/:id", ctls.User.Get)
	}

	// role 角色组
	role := r.Group("/role", middleware.JWTAuth(), middleware.AdminRequired())
	{
		role.POST("", ctls.Role.Create)
		role.PUT("", ctls.Role.Update)
		role.DELETE("/:id", ctls.Role.Delete)
		role.GET("/list", ctls.Role.List)
		role.GET("/:id", ctls.Role.Get)
	}

	// permission 权限组
	permission := r.Group("/permission", middleware.JWTAuth(), middleware.AdminRequired())
	{
		permission.POST("", ctls.Permission.Create)
		permission.PUT("", ctls.Permission.Update)
		permission.DELETE("/:id", ctls.Permission.Delete)
		permission.GET("/list", ctls.Permission.List)
		permission.GET("/:id", ctls.Permission.Get)
	}

	// tenant 租户组
	tenant := r.Group("/tenant", middleware.JWTAuth(), middleware.AdminRequired())
	{
		tenant.POST("", ctls.Tenant.Create)
		tenant.PUT("", ctls.Tenant.Update)
		tenant.DELETE("/:id", ctls.Tenant.Delete)
		tenant.GET("/list", ctls.Tenant.List)
		tenant.GET("/:id", ctls.Tenant.Get)
	}

	return r
}
