package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClientRequiresHost(t *testing.T) {
	// 地址未配置时必须在启动阶段报错，而不是返回 nil 客户端
	client, err := NewRedisClient(&Options{Host: ""})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClientUnreachableHost(t *testing.T) {
	client, err := NewRedisClient(&Options{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err, "连接失败应返回错误")
	assert.Nil(t, client)
}
