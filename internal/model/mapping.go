package model

import (
	"time"
)

// Mapping 短链映射记录
// 除 AccessCount 外所有字段在创建后不可变
type Mapping struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccessCount int64     `json:"access_count"`
}

// Live 判断映射在给定时刻是否仍然有效
func (m *Mapping) Live(now time.Time) bool {
	return m.ExpiresAt.After(now)
}
