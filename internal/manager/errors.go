package manager

import "errors"

// 创建操作可能返回的业务错误
var (
	// ErrInvalidURL 原始 URL 不是合法的绝对 URL
	ErrInvalidURL = errors.New("原始 URL 无效")

	// ErrInvalidCodeFormat 自定义短码不符合 3-10 位字母数字的格式
	ErrInvalidCodeFormat = errors.New("短码格式无效")

	// ErrCodeTaken 自定义短码已被占用
	ErrCodeTaken = errors.New("短码已被占用")

	// ErrInvalidValidity 有效期必须为正数
	ErrInvalidValidity = errors.New("有效期无效")
)
