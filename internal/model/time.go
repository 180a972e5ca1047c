package model

import (
	"fmt"
	"time"
)

// DateLayout 是站点中所有日期字段使用的格式。
const DateLayout = "2006-01-02"

// Date 是不带时间部分的日期，JSON 与数据库中都以 "YYYY-MM-DD" 表示。
type Date string

// ParseDate 解析 "YYYY-MM-DD"。
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateOf 返回 t 所在日期。
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Time 返回日期零点 (UTC)。
func (d Date) Time() (time.Time, error) {
	return ParseDate(string(d))
}
