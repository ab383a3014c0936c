package store

import (
	"context"
	"errors"

	"shortmap-platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV 基于 gorm 的键值存储，整个集合存放在 mapping_blobs 表的单行中
// SQLite 文件对应单机本地存储，MySQL 配置与原有部署方式保持一致
type GormKV struct {
	db *gorm.DB
}

// NewGormKV 创建数据库键值存储
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob model.MappingBlob
	err := g.db.WithContext(ctx).Where("store_key = ?", key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(blob.Value), true, nil
}

func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	blob := model.MappingBlob{Key: key, Value: string(value)}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"store_value", "updated_at"}),
	}).Create(&blob).Error
}
