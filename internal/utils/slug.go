package utils

import "strings"

// Slugify 将名称转换为 URL 安全的小写 slug。
// 仅保留字母数字，连续的空白与标点折叠为单个连字符，并去掉首尾连字符。
// 无法得到任何有效字符时返回空串，由调用方判定为非法名称。
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
