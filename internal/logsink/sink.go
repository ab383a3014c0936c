package logsink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// 日志级别
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)

// Event 上报到远端日志服务的事件体
type Event struct {
	Stack   string `json:"stack"`
	Level   string `json:"level"`
	Package string `json:"packageName"`
	Message string `json:"message"`
}

// Ack 远端日志服务的应答体
type Ack struct {
	LogID     string `json:"logID"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// Client 远端日志上报客户端
// 所有上报均为 fire-and-forget：任何失败都在客户端内部吞掉，
// 绝不影响触发上报的那次操作的结果
type Client struct {
	endpoint   string
	stack      string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient 创建上报客户端，endpoint 为空时客户端被禁用（所有调用为空操作）
func NewClient(endpoint, stack string, logger *zap.SugaredLogger) *Client {
	return &Client{
		endpoint: endpoint,
		stack:    stack,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Enabled 返回客户端是否已配置
func (c *Client) Enabled() bool {
	return c != nil && c.endpoint != ""
}

// Notify 异步上报一条事件，立即返回
func (c *Client) Notify(level, pkg, message string) {
	if !c.Enabled() {
		return
	}
	go func() {
		if _, err := c.send(Event{
			Stack:   c.stack,
			Level:   level,
			Package: pkg,
			Message: message,
		}); err != nil {
			// 上报失败只在本地记一条 debug，不向上传播
			c.logger.Debugf("日志上报失败: %v", err)
		}
	}()
}

// send 同步发送一条事件并解析应答
// 网络错误、非 2xx 状态码、应答解析失败一律视为同一种失败
func (c *Client) send(event Event) (*Ack, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("序列化事件失败: %w", err)
	}

	resp, err := c.httpClient.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("请求日志服务失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("日志服务返回状态码 %d", resp.StatusCode)
	}

	var ack Ack
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("解析应答失败: %w", err)
	}
	return &ack, nil
}
