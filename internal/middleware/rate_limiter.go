package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== IPRateLimiter IP 限流器 ====================

// IPRateLimiter 固定窗口限流器，按客户端 IP 计数
// 进程内存实现，进程退出即清零，不做持久化
type IPRateLimiter struct {
	windows sync.Map // ip -> *windowEntry
	max     int
	window  time.Duration
}

// windowEntry 窗口计数
type windowEntry struct {
	start time.Time
	count int
	mu    sync.Mutex
}

// NewIPRateLimiter 创建限流器
// max: 窗口内最大请求数; window: 窗口长度
func NewIPRateLimiter(max int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{max: max, window: window}
}

// Allow 检查该 IP 是否允许本次请求
func (r *IPRateLimiter) Allow(ip string) bool {
	actual, _ := r.windows.LoadOrStore(ip, &windowEntry{start: time.Now()})
	entry := actual.(*windowEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.Sub(entry.start) >= r.window {
		// 窗口轮转
		entry.start = now
		entry.count = 0
	}

	if entry.count >= r.max {
		return false
	}
	entry.count++
	return true
}

// Reset 重置指定 IP 的计数
func (r *IPRateLimiter) Reset(ip string) {
	r.windows.Delete(ip)
}

// ==================== Gin 中间件 ====================

// RateLimit 限流中间件，超限返回传输层 429
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code": 429,
				"msg":  "Sometimes You Just Have to Slow Down.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
