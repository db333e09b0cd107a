package service

import (
	"cmp"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
	"time"
)

// Policy 描述单个资源与通用引擎的差异：表列、时间戳规则、排序和可选能力
type Policy[T any] struct {
	Name      string
	Columns   repository.Columns
	Immutable []string // Update 时不允许覆盖的列

	OnCreate func(item *T, now time.Time)
	OnUpdate func(item, current *T, now time.Time)
	Compare  func(a, b *T) int

	SeedMode string
	SeedData func() []T

	Favorite       bool // 支持收藏切换
	FavoriteFilter bool // 列表支持 favorite 过滤
	Clear          bool
}

// TopicPolicy 五类学习主题的默认策略：收藏优先，再按分类、标题升序
func TopicPolicy[T any, PT interface {
	*T
	model.Topic
}](name string, seed func() []T) Policy[T] {
	return Policy[T]{
		Name:      name,
		Columns:   repository.Columns{Category: "category"},
		Immutable: []string{"created_at"},
		OnCreate: func(item *T, now time.Time) {
			t := PT(item).GetTopic()
			t.CreatedAt = now
			if t.LastReviewedAt != nil {
				reviewed := t.LastReviewedAt.UTC()
				t.LastReviewedAt = &reviewed
			}
			if t.Status == "" {
				t.Status = model.DefaultStatus
			}
		},
		OnUpdate: func(item, current *T, now time.Time) {
			t := PT(item).GetTopic()
			t.CreatedAt = PT(current).GetTopic().CreatedAt
			t.LastReviewedAt = &now
		},
		Compare: func(a, b *T) int {
			return compareByCategory(PT(a).GetTopic(), PT(b).GetTopic(), true)
		},
		SeedMode: util.SeedReplace,
		SeedData: seed,
		Favorite: true,
		Clear:    true,
	}
}

// SystemDesignPolicy 系统设计主题：按最近活跃时间倒序，仅空表允许导入种子数据，不支持清空
func SystemDesignPolicy(seed func() []model.SystemDesignTopic) Policy[model.SystemDesignTopic] {
	p := TopicPolicy[model.SystemDesignTopic]("systemdesign", seed)
	p.Compare = func(a, b *model.SystemDesignTopic) int {
		if c := compareFavorite(a.IsFavorite, b.IsFavorite); c != 0 {
			return c
		}
		if c := b.RecentActivity().Compare(a.RecentActivity()); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	}
	p.SeedMode = util.SeedIfEmpty
	p.FavoriteFilter = true
	p.Clear = false
	return p
}

// StudySessionPolicy 学习记录：按学习日期倒序，type 作为分组列
func StudySessionPolicy() Policy[model.StudySession] {
	return Policy[model.StudySession]{
		Name:    "studysessions",
		Columns: repository.Columns{Category: "type", Date: "session_date"},
		OnCreate: func(item *model.StudySession, now time.Time) {
			if item.Status == "" {
				item.Status = model.DefaultStatus
			}
			if item.SessionDate.IsZero() {
				item.SessionDate = now
			}
			// 统一存 UTC，SQLite 按文本比较日期
			item.SessionDate = item.SessionDate.UTC()
		},
		OnUpdate: func(item, current *model.StudySession, now time.Time) {
			item.SessionDate = item.SessionDate.UTC()
		},
		Compare: func(a, b *model.StudySession) int {
			if c := b.SessionDate.Compare(a.SessionDate); c != 0 {
				return c
			}
			return cmp.Compare(b.ID, a.ID)
		},
		Clear: true,
	}
}

func compareFavorite(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

// compareByCategory 分类、标题按字节序升序，ID 兜底保证稳定
func compareByCategory(a, b *model.TopicBase, favoriteFirst bool) int {
	if favoriteFirst {
		if c := compareFavorite(a.IsFavorite, b.IsFavorite); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
