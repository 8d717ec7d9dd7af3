package utils

import (
	"fmt"
	"time"
)

const (
	kb = 1024
	mb = 1024 * kb
	gb = 1024 * mb
)

// FormatFileSize 将字节数格式化为人类可读的大小。
// 1024 以下按字节整数输出，KB/MB/GB 保留一位小数。
func FormatFileSize(size int64) string {
	switch {
	case size >= gb:
		return fmt.Sprintf("%.1f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// FormatDate 按展示时区渲染日期部分，如 "March 05, 2024"。
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("January 02, 2006")
}

// FormatTime 按展示时区渲染时间部分（12 小时制），如 "08:15 PM"。
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("03:04 PM")
}
