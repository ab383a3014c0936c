package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shortmap-platform/internal/logsink"
	"shortmap-platform/internal/model"
	"shortmap-platform/internal/shortcode"
	"shortmap-platform/internal/store"

	"go.uber.org/zap"
)

// DefaultValidity 是未指定有效期时的默认值
const DefaultValidity = 30 * time.Minute

const sinkPackage = "manager"

// Manager 映射生命周期管理器，负责创建、解析、列表、删除以及惰性过期清理
// 存储中的集合是唯一事实来源，任何操作都不跨调用缓存数据
type Manager struct {
	store   *store.Store
	gen     *shortcode.Generator
	sink    *logsink.Client
	logger  *zap.SugaredLogger
	baseURL string
	now     func() time.Time
}

// NewManager 创建管理器实例
func NewManager(st *store.Store, sink *logsink.Client, logger *zap.SugaredLogger, baseURL string) *Manager {
	return &Manager{
		store:   st,
		gen:     shortcode.NewGenerator(),
		sink:    sink,
		logger:  logger.Named("manager"),
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// ShortLink 由短码推导出完整短链
func (m *Manager) ShortLink(code string) string {
	return m.baseURL + "/" + code
}

// Create 创建一条新映射
// customCode 为空时生成随机短码，validity 必须为正数
func (m *Manager) Create(ctx context.Context, originalURL, customCode string, validity time.Duration) (*model.Mapping, error) {
	if !shortcode.ValidURL(originalURL) {
		m.sink.Notify(logsink.LevelError, sinkPackage, "创建失败: 原始 URL 无效")
		return nil, ErrInvalidURL
	}
	if validity <= 0 {
		m.sink.Notify(logsink.LevelError, sinkPackage, "创建失败: 有效期无效")
		return nil, ErrInvalidValidity
	}

	mappings, ok := m.loadSwept(ctx)
	if !ok {
		return nil, nil
	}

	code := customCode
	if code != "" {
		if !shortcode.ValidCode(code) {
			m.sink.Notify(logsink.LevelError, sinkPackage, "创建失败: 短码格式无效 "+code)
			return nil, ErrInvalidCodeFormat
		}
		if codeExists(mappings, code) {
			m.sink.Notify(logsink.LevelWarn, sinkPackage, "创建失败: 短码已被占用 "+code)
			return nil, ErrCodeTaken
		}
	} else {
		generated, err := m.generateUniqueCode(mappings)
		if err != nil {
			m.logger.Errorf("生成唯一短码失败: %v", err)
			m.sink.Notify(logsink.LevelError, sinkPackage, "创建失败: 无法生成唯一短码")
			return nil, err
		}
		code = generated
	}

	now := m.now()
	mapping := model.Mapping{
		ShortCode:   code,
		OriginalURL: originalURL,
		CreatedAt:   now,
		ExpiresAt:   now.Add(validity),
		AccessCount: 0,
	}

	if err := m.store.Write(ctx, append(mappings, mapping)); err != nil {
		m.absorbStorageFault("create", err)
		return nil, nil
	}

	m.logger.Infow("映射创建成功", "short_code", code, "expires_at", mapping.ExpiresAt)
	m.sink.Notify(logsink.LevelInfo, sinkPackage, "映射创建成功: "+code)
	return &mapping, nil
}

// Resolve 按短码解析映射
// 命中时累加访问计数并返回原始 URL；不存在与已过期返回同一种未命中信号
func (m *Manager) Resolve(ctx context.Context, code string) (string, bool) {
	mappings, ok := m.loadSwept(ctx)
	if !ok {
		return "", false
	}

	for i := range mappings {
		if mappings[i].ShortCode != code {
			continue
		}
		mappings[i].AccessCount++
		if err := m.store.Write(ctx, mappings); err != nil {
			m.absorbStorageFault("resolve", err)
			return "", false
		}
		m.sink.Notify(logsink.LevelInfo, sinkPackage, "解析命中: "+code)
		return mappings[i].OriginalURL, true
	}

	m.logger.Infow("解析未命中", "short_code", code)
	m.sink.Notify(logsink.LevelWarn, sinkPackage, "解析未命中: "+code)
	return "", false
}

// List 返回所有未过期的映射，保持插入顺序
func (m *Manager) List(ctx context.Context) []model.Mapping {
	mappings, ok := m.loadSwept(ctx)
	if !ok {
		return []model.Mapping{}
	}
	return mappings
}

// Delete 删除指定短码的映射，无论其是否已过期
// 返回是否确实删除了记录
func (m *Manager) Delete(ctx context.Context, code string) bool {
	mappings, err := m.store.Read(ctx)
	if err != nil {
		m.absorbStorageFault("delete", err)
		return false
	}

	kept := mappings[:0:0]
	removed := false
	for _, mapping := range mappings {
		if mapping.ShortCode == code {
			removed = true
			continue
		}
		kept = append(kept, mapping)
	}
	if !removed {
		m.sink.Notify(logsink.LevelWarn, sinkPackage, "删除未命中: "+code)
		return false
	}

	if err := m.store.Write(ctx, kept); err != nil {
		m.absorbStorageFault("delete", err)
		return false
	}

	m.logger.Infow("映射删除成功", "short_code", code)
	m.sink.Notify(logsink.LevelInfo, sinkPackage, "映射删除成功: "+code)
	return true
}

// loadSwept 读取集合并执行一次过期清理
// 存储故障被就地吞掉并记录，调用方得到 ok=false 后降级为空结果
func (m *Manager) loadSwept(ctx context.Context) ([]model.Mapping, bool) {
	mappings, err := m.store.Read(ctx)
	if err != nil {
		m.absorbStorageFault("read", err)
		return nil, false
	}

	now := m.now()
	kept := mappings[:0:0]
	dropped := 0
	for _, mapping := range mappings {
		if mapping.Live(now) {
			kept = append(kept, mapping)
			continue
		}
		dropped++
		m.logger.Infow("清理过期映射", "short_code", mapping.ShortCode, "expired_at", mapping.ExpiresAt)
		m.sink.Notify(logsink.LevelDebug, sinkPackage, "清理过期映射: "+mapping.ShortCode)
	}
	if dropped == 0 {
		return mappings, true
	}

	if err := m.store.Write(ctx, kept); err != nil {
		m.absorbStorageFault("sweep", err)
		return nil, false
	}
	return kept, true
}

// generateUniqueCode 生成集合内唯一的随机短码
// 同一长度最多尝试 MaxAttemptsPerLength 次，之后加长一位，避免无界重试
func (m *Manager) generateUniqueCode(mappings []model.Mapping) (string, error) {
	for length := shortcode.CodeLength; length <= shortcode.MaxCodeLength; length++ {
		for attempt := 0; attempt < shortcode.MaxAttemptsPerLength; attempt++ {
			code, err := m.gen.RandomCode(length)
			if err != nil {
				return "", err
			}
			if !codeExists(mappings, code) {
				return code, nil
			}
		}
	}
	return "", fmt.Errorf("短码空间耗尽: 长度 %d-%d 均无可用短码", shortcode.CodeLength, shortcode.MaxCodeLength)
}

// absorbStorageFault 存储故障只记录，不向调用方传播
func (m *Manager) absorbStorageFault(op string, err error) {
	m.logger.Errorw("存储操作失败", "op", op, "error", err)
	m.sink.Notify(logsink.LevelError, sinkPackage, "存储操作失败: "+op)
}

func codeExists(mappings []model.Mapping, code string) bool {
	for _, mapping := range mappings {
		if mapping.ShortCode == code {
			return true
		}
	}
	return false
}
