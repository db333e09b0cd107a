package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseID 解析路径中的主键，0 与非数字均视为无效
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

// ParseTimeParam 解析查询参数中的时间，支持 RFC3339、"2006-01-02 15:04:05" 和 "2006-01-02"
func ParseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, TimeFormat, DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", s)
}
