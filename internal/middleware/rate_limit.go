package middleware

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"image-hub-server/internal/config"
	"image-hub-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// allowByRedisRateLimit 基于 Redis 的固定窗口限流（按秒计数）。
// 多实例部署时共享同一份计数；rps/burst 任一不大于 0 视为禁用，直接放行。
func allowByRedisRateLimit(client *redis.Client, keyPrefix string, ip string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	window := time.Now().Unix()
	key := service.RedisKey(keyPrefix, ip, time.Unix(window, 0).Format("150405"))

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// 窗口首个请求时设置过期，避免键堆积
		if err := client.Expire(ctx, key, 2*time.Second).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(rps)+int64(burst), nil
}

// RateLimitMiddleware 创建一个按 IP 的限流中间件。
// Redis 可用时走共享窗口限流，否则退回进程内 token bucket。
func RateLimitMiddleware() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if redisClient := service.GetRedisClient(); redisClient != nil {
			ok, err := allowByRedisRateLimit(redisClient, "rate", ip, cfg.RPS, cfg.Burst)
			if err == nil {
				if !ok {
					c.JSON(http.StatusTooManyRequests, gin.H{"error": "TooManyRequests", "detail": "请求过于频繁，请稍后再试"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			log.Printf("Redis 限流失败，退回进程内限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.RPS), cfg.Burst)
		})

		l := limiter.getLimiter(ip)

		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(cfg.RPS) {
			l.SetLimit(rate.Limit(cfg.RPS))
		}
		if l.Burst() != cfg.Burst {
			l.SetBurst(cfg.Burst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "TooManyRequests", "detail": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
