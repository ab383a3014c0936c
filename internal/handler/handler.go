package handler

import (
	"errors"
	"net/http"
	"time"

	"shortmap-platform/internal/manager"
	"shortmap-platform/internal/model"

	"github.com/gin-gonic/gin"
)

// MappingHandler 处理器，只消费管理器的四个操作
type MappingHandler struct {
	manager         *manager.Manager
	defaultValidity time.Duration
}

// NewMappingHandler 创建处理器实例
func NewMappingHandler(m *manager.Manager, defaultValidity time.Duration) *MappingHandler {
	if defaultValidity <= 0 {
		defaultValidity = manager.DefaultValidity
	}
	return &MappingHandler{
		manager:         m,
		defaultValidity: defaultValidity,
	}
}

// HealthCheck 健康检查
func (h *MappingHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
}

// CreateMappingRequest 创建请求体
type CreateMappingRequest struct {
	URL             string `json:"url" binding:"required" example:"https://github.com/gin-gonic/gin"`
	CustomCode      string `json:"custom_code" example:"mycode1"`
	ValidityMinutes *int   `json:"validity_minutes" example:"30"`
}

// CreateMappingResponse 创建响应体
type CreateMappingResponse struct {
	ShortURL string        `json:"short_url" example:"http://localhost:8080/xxxxxx"`
	Mapping  model.Mapping `json:"mapping"`
}

// CreateMapping godoc
// @Summary 创建短链映射
// @Description 为一个长 URL 创建一条新映射，可指定自定义短码与有效期（分钟，默认 30）
// @Tags Mapping
// @Accept  json
// @Produce  json
// @Param   request  body   CreateMappingRequest  true  "创建参数"
// @Success 201 {object} CreateMappingResponse "成功响应"
// @Failure 400 {object} gin.H "请求无效"
// @Failure 409 {object} gin.H "短码已被占用"
// @Failure 500 {object} gin.H "服务器内部错误"
// @Router /api/shorten [post]
func (h *MappingHandler) CreateMapping(c *gin.Context) {
	var req CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据: " + err.Error()})
		return
	}

	// 未提供有效期时使用默认值，提供后的合法性由管理器判定
	validity := h.defaultValidity
	if req.ValidityMinutes != nil {
		validity = time.Duration(*req.ValidityMinutes) * time.Minute
	}

	mapping, err := h.manager.Create(c.Request.Context(), req.URL, req.CustomCode, validity)
	if err != nil {
		switch {
		case errors.Is(err, manager.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": "原始 URL 无效"})
		case errors.Is(err, manager.ErrInvalidCodeFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "短码格式无效，应为 3-10 位字母或数字"})
		case errors.Is(err, manager.ErrInvalidValidity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "有效期必须为正数"})
		case errors.Is(err, manager.ErrCodeTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "短码已被占用"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "创建映射失败"})
		}
		return
	}
	if mapping == nil {
		// 存储故障被管理器吞掉后的降级结果
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建映射失败"})
		return
	}

	c.JSON(http.StatusCreated, CreateMappingResponse{
		ShortURL: h.manager.ShortLink(mapping.ShortCode),
		Mapping:  *mapping,
	})
}

// RedirectToOriginal godoc
// @Summary 短码跳转
// @Description 按短码解析并 302 跳转到原始 URL，不存在与已过期统一返回 404
// @Tags Mapping
// @Produce  json
// @Param   code  path  string  true  "短码"
// @Success 302
// @Failure 404 {object} gin.H "链接不存在或已过期"
// @Router /{code} [get]
func (h *MappingHandler) RedirectToOriginal(c *gin.Context) {
	code := c.Param("code")
	originalURL, ok := h.manager.Resolve(c.Request.Context(), code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "链接不存在或已过期"})
		return
	}
	c.Redirect(http.StatusFound, originalURL)
}

// GetAllMappings godoc
// @Summary 映射列表
// @Description 返回所有未过期的映射，按插入顺序
// @Tags Mapping
// @Produce  json
// @Success 200 {array} model.Mapping
// @Router /api/links [get]
func (h *MappingHandler) GetAllMappings(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.List(c.Request.Context()))
}

// DeleteMapping godoc
// @Summary 删除映射
// @Description 删除指定短码的映射，无论其是否已过期
// @Tags Mapping
// @Produce  json
// @Param   code  path  string  true  "短码"
// @Success 200 {object} gin.H "删除成功"
// @Failure 404 {object} gin.H "映射不存在"
// @Router /api/links/{code} [delete]
func (h *MappingHandler) DeleteMapping(c *gin.Context) {
	code := c.Param("code")
	if !h.manager.Delete(c.Request.Context(), code) {
		c.JSON(http.StatusNotFound, gin.H{"error": "映射不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetStats godoc
// @Summary 汇总统计
// @Description 基于列表操作汇总映射数与访问总数
// @Tags Mapping
// @Produce  json
// @Success 200 {object} gin.H
// @Router /api/stats [get]
func (h *MappingHandler) GetStats(c *gin.Context) {
	mappings := h.manager.List(c.Request.Context())

	var stats struct {
		TotalMappings int64 `json:"total_mappings"`
		TotalAccesses int64 `json:"total_accesses"`
	}
	stats.TotalMappings = int64(len(mappings))
	for _, mapping := range mappings {
		stats.TotalAccesses += mapping.AccessCount
	}
	c.JSON(http.StatusOK, stats)
}
