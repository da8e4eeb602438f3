package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200, "id": GetAccountID(c), "isAdmin": GetIsAdmin(c)})
	})
	r.GET("/admin", JWTAuth(), AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200})
	})
	return r
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(7, "13800000000", 1)
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("解析 Token 失败: %v", err)
	}
	if claims.AccountID != 7 || claims.Phone != "13800000000" || claims.IsAdmin != 1 {
		t.Errorf("claims = %+v", claims)
	}

	// 有效期固定为配置的 TTL
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > jwtConfig.TokenTTL || ttl < jwtConfig.TokenTTL-time.Minute {
		t.Errorf("ttl = %v, want ~%v", ttl, jwtConfig.TokenTTL)
	}
}

func TestParseToken_Expired(t *testing.T) {
	old := GetJWTConfig()
	t.Cleanup(func() { SetJWTConfig(old) })

	SetJWTConfig(&JWTConfig{
		SecretKey: old.SecretKey,
		TokenTTL:  -time.Hour,
		Issuer:    old.Issuer,
	})
	token, _ := GenerateToken(1, "13800000000", 0)

	if _, err := ParseToken(token); err == nil {
		t.Error("过期 Token 应解析失败")
	}
}

func TestJWTAuth_MissingToken(t *testing.T) {
	r := setupGuardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 业务失败也走传输层 200
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != 401 || resp.Msg != "认证过期" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestJWTAuth_InjectsClaims(t *testing.T) {
	r := setupGuardedRouter()
	token, _ := GenerateToken(7, "13800000000", 1)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Code    int   `json:"code"`
		ID      int64 `json:"id"`
		IsAdmin int   `json:"isAdmin"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != 200 || resp.ID != 7 || resp.IsAdmin != 1 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAdminRequired_Forbidden(t *testing.T) {
	r := setupGuardedRouter()
	token, _ := GenerateToken(7, "13800000000", 0)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != 403 {
		t.Errorf("code = %d, want 403", resp.Code)
	}
}
