package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shortmap-platform/internal/logsink"
	"shortmap-platform/internal/manager"
	"shortmap-platform/internal/model"
	"shortmap-platform/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTest 为集成测试初始化一个干净的环境
func setupTest() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewDevelopment()
	sugaredLogger := logger.Sugar()

	// 内存存储 + 禁用状态的远端日志上报
	mappingStore := store.New(store.NewMemoryKV(), "")
	sink := logsink.NewClient("", "backend", sugaredLogger)
	mappingManager := manager.NewManager(mappingStore, sink, sugaredLogger, "http://localhost:8080")

	mappingHandler := NewMappingHandler(mappingManager, 30*time.Minute)

	router := gin.New()
	router.GET("/:code", mappingHandler.RedirectToOriginal)
	api := router.Group("/api")
	{
		api.POST("/shorten", mappingHandler.CreateMapping)
		api.GET("/links", mappingHandler.GetAllMappings)
		api.DELETE("/links/:code", mappingHandler.DeleteMapping)
		api.GET("/stats", mappingHandler.GetStats)
	}
	return router
}

func doCreate(t *testing.T, router *gin.Engine, body CreateMappingRequest) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/api/shorten", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestCreateAndRedirect 测试创建和重定向的完整流程
func TestCreateAndRedirect(t *testing.T) {
	router := setupTest()

	originalURL := "https://www.example.com/very/long/path/that/needs/shortening"
	w := doCreate(t, router, CreateMappingRequest{URL: originalURL})
	assert.Equal(t, http.StatusCreated, w.Code, "创建映射时，状态码应为 201 Created")

	var createResp CreateMappingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.NotEmpty(t, createResp.ShortURL, "响应中应包含短链接 URL")
	assert.Equal(t, int64(0), createResp.Mapping.AccessCount)
	assert.Equal(t, "http://localhost:8080/"+createResp.Mapping.ShortCode, createResp.ShortURL)

	// 访问短链接并验证重定向
	req, _ := http.NewRequest(http.MethodGet, "/"+createResp.Mapping.ShortCode, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code, "访问短码时，状态码应为 302 Found")
	assert.Equal(t, originalURL, w.Header().Get("Location"), "重定向的 URL 应与原始 URL 匹配")
}

func TestCreateWithCustomCodeAndConflict(t *testing.T) {
	router := setupTest()

	w := doCreate(t, router, CreateMappingRequest{URL: "https://example.com", CustomCode: "promo26"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp CreateMappingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "promo26", createResp.Mapping.ShortCode)

	// 重复的自定义短码应返回 409
	w = doCreate(t, router, CreateMappingRequest{URL: "https://example.org", CustomCode: "promo26"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateValidation(t *testing.T) {
	router := setupTest()

	// 非法 URL
	w := doCreate(t, router, CreateMappingRequest{URL: "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 非法短码格式
	w = doCreate(t, router, CreateMappingRequest{URL: "https://example.com", CustomCode: "a!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 非法有效期
	zero := 0
	w = doCreate(t, router, CreateMappingRequest{URL: "https://example.com", ValidityMinutes: &zero})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedirectMiss(t *testing.T) {
	router := setupTest()

	req, _ := http.NewRequest(http.MethodGet, "/nosuch", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "未知短码应返回 404")
}

func TestListAndDelete(t *testing.T) {
	router := setupTest()

	w := doCreate(t, router, CreateMappingRequest{URL: "https://example.com", CustomCode: "todel01"})
	require.Equal(t, http.StatusCreated, w.Code)

	// 列表应包含刚创建的映射
	req, _ := http.NewRequest(http.MethodGet, "/api/links", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var mappings []model.Mapping
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mappings))
	require.Len(t, mappings, 1)
	assert.Equal(t, "todel01", mappings[0].ShortCode)

	// 删除后列表为空
	req, _ = http.NewRequest(http.MethodDelete, "/api/links/todel01", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 再次删除返回 404
	req, _ = http.NewRequest(http.MethodDelete, "/api/links/todel01", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStats(t *testing.T) {
	router := setupTest()

	w := doCreate(t, router, CreateMappingRequest{URL: "https://example.com", CustomCode: "stat001"})
	require.Equal(t, http.StatusCreated, w.Code)

	// 访问两次
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/stat001", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusFound, rec.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/api/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalMappings int64 `json:"total_mappings"`
		TotalAccesses int64 `json:"total_accesses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalMappings)
	assert.Equal(t, int64(2), stats.TotalAccesses)
}
