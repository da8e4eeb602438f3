package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 签名密钥
	TokenTTL  time.Duration // Token 有效期
	Issuer    string        // 签发者
}

// DefaultJWTConfig 默认配置，Token 有效期固定 1 天，无刷新机制
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey: "tenant-admin-secret-key-change-in-production",
		TokenTTL:  24 * time.Hour,
		Issuer:    "tenant-admin",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// AccountClaims 账户声明，携带账户 ID、手机号和管理员标记
type AccountClaims struct {
	AccountID int64  `json:"id"`
	Phone     string `json:"phone"`
	IsAdmin   int    `json:"isAdmin"`
	jwt.RegisteredClaims
}

// ==================== Token 生成与解析 ====================

// GenerateToken 签发 Token
func GenerateToken(accountID int64, phone string, isAdmin int) (string, error) {
	now := time.Now()
	claims := &AccountClaims{
		AccountID: accountID,
		Phone:     phone,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AccountClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyAccountID = "account_id"
	ContextKeyPhone     = "phone"
	ContextKeyIsAdmin   = "is_admin"
	ContextKeyClaims    = "claims"
)

// JWTAuth 认证中间件
// 业务失败统一走传输层 200 + 响应体 code，认证失败也不例外
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusOK, gin.H{
				"code": 401,
				"msg":  "认证过期",
			})
			c.Abort()
			return
		}

		// 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusOK, gin.H{
				"code": 401,
				"msg":  "认证过期",
			})
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"code": 401,
				"msg":  "认证过期",
			})
			c.Abort()
			return
		}

		// 注入账户信息到 Context
		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Set(ContextKeyPhone, claims.Phone)
		c.Set(ContextKeyIsAdmin, claims.IsAdmin)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// AdminRequired 管理员权限校验中间件，置于 JWTAuth 之后
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIsAdmin(c) != 1 {
			c.JSON(http.StatusOK, gin.H{
				"code": 403,
				"msg":  "没有权限, 请联系管理员",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetAccountID 从 Context 获取账户 ID
func GetAccountID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyAccountID); exists {
		return id.(int64)
	}
	return 0
}

// GetPhone 从 Context 获取手机号
func GetPhone(c *gin.Context) string {
	if phone, exists := c.Get(ContextKeyPhone); exists {
		return phone.(string)
	}
	return ""
}

// GetIsAdmin 从 Context 获取管理员标记
func GetIsAdmin(c *gin.Context) int {
	if isAdmin, exists := c.Get(ContextKeyIsAdmin); exists {
		return isAdmin.(int)
	}
	return 0
}

// GetClaims 从 Context 获取完整 Claims
func GetClaims(c *gin.Context) *AccountClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*AccountClaims)
	}
	return nil
}
