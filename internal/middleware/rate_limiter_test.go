package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	limiter := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("第 %d 次请求应放行", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("超过窗口上限后应拒绝")
	}

	// 不同 IP 独立计数
	if !limiter.Allow("10.0.0.2") {
		t.Error("其他 IP 不应受影响")
	}
}

func TestIPRateLimiter_WindowReset(t *testing.T) {
	limiter := NewIPRateLimiter(1, 30*time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("首次请求应放行")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("窗口内第二次请求应拒绝")
	}

	time.Sleep(50 * time.Millisecond)
	if !limiter.Allow("10.0.0.1") {
		t.Error("窗口滚动后应重新放行")
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(2, time.Minute)

	r := gin.New()
	r.GET("/ping", RateLimit(limiter), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200})
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	do()
	do()
	w := do()

	// 限流是传输层 429
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}

	var resp struct {
		Msg string `json:"msg"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Msg != "Sometimes You Just Have to Slow Down." {
		t.Errorf("msg = %q", resp.Msg)
	}
}
