package store

import (
	"context"
	"encoding/json"
	"fmt"

	"shortmap-platform/internal/model"
)

// DefaultKey 是映射集合在持久层中的固定键名
const DefaultKey = "shortmap:mappings"

// KV 扁平的同步键值存储，是管理器之下唯一的持久化原语
type KV interface {
	// Get 返回键对应的值；键不存在时 ok 为 false 且不报错
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set 整体替换键对应的值
	Set(ctx context.Context, key string, value []byte) error
}

// Store 在单个键上读写整个映射集合（JSON 数组）
type Store struct {
	kv  KV
	key string
}

// New 创建 Store，key 为空时使用 DefaultKey
func New(kv KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key}
}

// Read 读取完整的映射集合，键缺失视为空集合
func (s *Store) Read(ctx context.Context) ([]model.Mapping, error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("读取存储失败: %w", err)
	}
	if !ok || len(data) == 0 {
		return []model.Mapping{}, nil
	}

	var mappings []model.Mapping
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("解析存储数据失败: %w", err)
	}
	return mappings, nil
}

// Write 以完整集合整体覆盖存储内容
func (s *Store) Write(ctx context.Context, mappings []model.Mapping) error {
	if mappings == nil {
		mappings = []model.Mapping{}
	}
	data, err := json.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("序列化存储数据失败: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("写入存储失败: %w", err)
	}
	return nil
}
