package model

import (
	"time"
)

// DefaultStatus 新建记录未指定状态时使用
const DefaultStatus = "Learning"

// Record 通用资源引擎对实体的最小要求：主键与乐观锁版本号
type Record interface {
	GetID() uint
	SetID(id uint)
	GetVersion() int
	SetVersion(v int)
}

// RecordPtr 约束 *T 实现 Record，供泛型仓储/服务使用
type RecordPtr[T any] interface {
	*T
	Record
}

// TopicBase 学习主题通用字段（五类主题表共用）
// swagger:model
type TopicBase struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string     `gorm:"size:255;not null" json:"title" binding:"required"`
	Category       string     `gorm:"size:100;index;not null;default:''" json:"category"`
	Status         string     `gorm:"size:32;not null;default:'Learning'" json:"status"`
	IsFavorite     bool       `gorm:"not null" json:"isFavorite"`
	Notes          string     `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastReviewedAt *time.Time `json:"lastReviewedAt"`
	Version        int        `gorm:"not null;default:1" json:"version"`
}

func (b *TopicBase) GetID() uint { return b.ID }
func (b *TopicBase) SetID(id uint) { b.ID = id }
func (b *TopicBase) GetVersion() int { return b.Version }
func (b *TopicBase) SetVersion(v int) { b.Version = v }
func (b *TopicBase) GetTopic() *TopicBase { return b }

// Topic 由所有嵌入 TopicBase 的模型实现
type Topic interface {
	Record
	GetTopic() *TopicBase
}

// RecentActivity 最近一次复习时间，未复习过则为创建时间
func (b *TopicBase) RecentActivity() time.Time {
	if b.LastReviewedAt != nil {
		return *b.LastReviewedAt
	}
	return b.CreatedAt
}
