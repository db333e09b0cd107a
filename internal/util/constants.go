package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 种子数据模式
const (
	SeedNone    = ""
	SeedReplace = "replace"  // 先清空再写入
	SeedIfEmpty = "if_empty" // 表非空时拒绝
)

// RequestIDKey gin.Context 中请求 ID 的键
const RequestIDKey = "request_id"
