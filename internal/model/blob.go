package model

import (
	"time"
)

// MappingBlob 持久化表中的单行记录
// 整个映射集合以 JSON 数组形式存放在 Value 中，Key 固定
type MappingBlob struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"column:store_key;size:64;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"column:store_value;type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (MappingBlob) TableName() string {
	return "mapping_blobs"
}
