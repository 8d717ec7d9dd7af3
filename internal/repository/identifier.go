package repository

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// parseNumericIdentifier 解析纯数字标识符。
// 路径片段要么是数字 id，要么是 slug；这里是两分支解析的第一分支。
func parseNumericIdentifier(identifier string) (uint, bool) {
	if identifier == "" {
		return 0, false
	}
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// IsUniqueViolation 判断存储层错误是否为唯一约束冲突。
// GORM 开启 TranslateError 后返回 ErrDuplicatedKey；
// 其余方言按错误文本兜底识别。
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
