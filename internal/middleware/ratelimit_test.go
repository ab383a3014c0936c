package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shortmap-platform/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(limitConfig *config.Limit) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(limitConfig))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router
}

func doGet(router *gin.Engine, path string) int {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitDisabled(t *testing.T) {
	router := setupRateLimitRouter(&config.Limit{Enabled: false})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doGet(router, "/ping"))
	}
}

func TestRateLimitBurstExceeded(t *testing.T) {
	// 每分钟 60 次即每秒 1 次，突发 2：连续第三次请求应被限流
	router := setupRateLimitRouter(&config.Limit{
		Enabled:  true,
		Requests: 60,
		Burst:    2,
	})

	assert.Equal(t, http.StatusOK, doGet(router, "/ping"))
	assert.Equal(t, http.StatusOK, doGet(router, "/ping"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "/ping"), "超出突发额度应返回 429")
}

func TestRateLimitSkipPaths(t *testing.T) {
	router := setupRateLimitRouter(&config.Limit{
		Enabled:   true,
		Requests:  60,
		Burst:     1,
		SkipPaths: []string{"/health"},
	})

	// 耗尽突发额度
	assert.Equal(t, http.StatusOK, doGet(router, "/ping"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "/ping"))

	// 跳过路径不受限流影响
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doGet(router, "/health"))
	}
}
