package model

import "time"

// StudySession 学习记录
// swagger:model
type StudySession struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title" binding:"required"`
	Type            string    `gorm:"size:100;index;not null;default:''" json:"type"`
	Status          string    `gorm:"size:32;not null;default:'Learning'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	SessionDate     time.Time `gorm:"index;not null" json:"sessionDate"`
	DurationMinutes int       `gorm:"not null;default:0" json:"durationMinutes"`
	Version         int       `gorm:"not null;default:1" json:"version"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}

func (s *StudySession) GetID() uint { return s.ID }
func (s *StudySession) SetID(id uint) { s.ID = id }
func (s *StudySession) GetVersion() int { return s.Version }
func (s *StudySession) SetVersion(v int) { s.Version = v }

// AllModels 需要自动迁移的全部表
func AllModels() []interface{} {
	return []interface{}{
		&AspNetCoreTopic{},
		&DesignPatternTopic{},
		&SystemDesignTopic{},
		&CSharpTopic{},
		&EFCoreTopic{},
		&StudySession{},
	}
}
