package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter 滑动窗口速率限制器，按客户端IP分别计数
type RateLimiter struct {
	mutex    sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

// NewRateLimiter 创建速率限制器，并启动后台任务定期回收不再活跃的IP记录
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go rl.pruneLoop()
	return rl
}

// Allow 检查是否允许该key在当前窗口内再发一个请求
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.window)

	// 清理该key窗口外的旧请求
	valid := rl.requests[key][:0]
	for _, reqTime := range rl.requests[key] {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

// pruneLoop 定期删除整个窗口内都没有请求的key，防止map无限增长。
// 回收协程随限制器存活到进程结束，不提供停止接口。
func (rl *RateLimiter) pruneLoop() {
	ticker := time.NewTicker(10 * rl.window)
	for range ticker.C {
		windowStart := time.Now().Add(-rl.window)

		rl.mutex.Lock()
		for key, requests := range rl.requests {
			active := false
			for _, reqTime := range requests {
				if reqTime.After(windowStart) {
					active = true
					break
				}
			}
			if !active {
				delete(rl.requests, key)
			}
		}
		rl.mutex.Unlock()
	}
}

// RateLimit 速率限制中间件，按客户端IP限流
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code": 429,
				"msg":  "请求过于频繁，请稍后重试",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ConcurrencyLimit 全局并发限制中间件
func ConcurrencyLimit(maxConcurrent int) gin.HandlerFunc {
	semaphore := make(chan struct{}, maxConcurrent)

	return func(c *gin.Context) {
		select {
		case semaphore <- struct{}{}:
			defer func() { <-semaphore }()
			c.Next()
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code": 503,
				"msg":  "服务器繁忙，请稍后重试",
			})
			c.Abort()
		}
	}
}
