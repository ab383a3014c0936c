package shortcode

import (
	"crypto/rand"
	"math/big"
	"net/url"
	"regexp"
)

const (
	// Charset 包含用于生成短码的所有字符
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength 是生成的短码的默认长度
	CodeLength = 6
	// MaxCodeLength 是短码的最大长度（与自定义短码的上限一致）
	MaxCodeLength = 10
	// MaxAttemptsPerLength 是同一长度下的最大碰撞重试次数
	MaxAttemptsPerLength = 10
)

// codePattern 自定义短码的合法格式：3-10 位字母或数字
var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)

// ValidCode 校验自定义短码格式（仅用于调用方提供的短码）
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// ValidURL 校验字符串是否为绝对 URL
// 不限制 scheme，与原有行为保持一致
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs()
}

// Generator 负责生成随机短码
type Generator struct{}

// NewGenerator 创建一个新的短码生成器实例
func NewGenerator() *Generator {
	return &Generator{}
}

// RandomCode 生成一个给定长度的随机短码，字符在字母表上均匀独立分布
func (g *Generator) RandomCode(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(Charset))))
		if err != nil {
			return "", err
		}
		b[i] = Charset[num.Int64()]
	}
	return string(b), nil
}
