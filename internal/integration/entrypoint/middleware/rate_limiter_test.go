package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doLogin(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:52000"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterInMemory(t *testing.T) {
	t.Run("should allow requests below the limit", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiterWithConfig(nil, 3, time.Minute))

		for i := 0; i < 3; i++ {
			if code := doLogin(router); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, code)
			}
		}
	})

	t.Run("should reject requests over the limit", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiterWithConfig(nil, 3, time.Minute))

		for i := 0; i < 3; i++ {
			doLogin(router)
		}
		if code := doLogin(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after limit, got %d", code)
		}
	})

	t.Run("should allow again after Reset", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(nil, 1, time.Minute)
		router := newLimitedRouter(limiter)

		doLogin(router)
		if code := doLogin(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}

		limiter.Reset()

		if code := doLogin(router); code != http.StatusOK {
			t.Fatalf("expected 200 after reset, got %d", code)
		}
	})
}

func TestRateLimiterRedis(t *testing.T) {
	newRedisClient := func(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
		t.Helper()
		server, err := miniredis.Run()
		if err != nil {
			t.Fatalf("failed to start miniredis: %v", err)
		}
		t.Cleanup(server.Close)
		return redis.NewClient(&redis.Options{Addr: server.Addr()}), server
	}

	t.Run("should count attempts in Redis and reject over the limit", func(t *testing.T) {
		client, _ := newRedisClient(t)
		router := newLimitedRouter(NewRateLimiterWithConfig(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			if code := doLogin(router); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, code)
			}
		}
		if code := doLogin(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after limit, got %d", code)
		}
	})

	t.Run("should allow again once the window expires", func(t *testing.T) {
		client, server := newRedisClient(t)
		router := newLimitedRouter(NewRateLimiterWithConfig(client, 1, time.Minute))

		doLogin(router)
		if code := doLogin(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}

		server.FastForward(time.Minute + time.Second)

		if code := doLogin(router); code != http.StatusOK {
			t.Fatalf("expected 200 after window expiry, got %d", code)
		}
	})

	t.Run("should fall back to in-memory counters when Redis is down", func(t *testing.T) {
		client, server := newRedisClient(t)
		router := newLimitedRouter(NewRateLimiterWithConfig(client, 2, time.Minute))

		server.Close()

		for i := 0; i < 2; i++ {
			if code := doLogin(router); code != http.StatusOK {
				t.Fatalf("request %d: expected 200 via fallback, got %d", i+1, code)
			}
		}
		if code := doLogin(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 via fallback, got %d", code)
		}
	})
}
