package service

import (
	"context"
	"fmt"
	"slices"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/tracing"
)

// SystemDesignService 在通用资源之上增加复习记录与收藏视图
type SystemDesignService struct {
	*ResourceService[model.SystemDesignTopic, *model.SystemDesignTopic]
}

func NewSystemDesignService(repo *repository.Repository[model.SystemDesignTopic, *model.SystemDesignTopic], policy Policy[model.SystemDesignTopic]) *SystemDesignService {
	return &SystemDesignService{ResourceService: NewResourceService(repo, policy)}
}

// ReviewInput 一次复习的结果
type ReviewInput struct {
	ConfidenceLevel int
	Status          string
	Notes           string
}

// RecordReview 记录复习：更新复习时间、信心值与状态，备注为空时保留原值
func (s *SystemDesignService) RecordReview(ctx context.Context, id uint, input ReviewInput) (item *model.SystemDesignTopic, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".RecordReview")
	defer func() { tracing.EndSpan(span, err) }()

	columns := map[string]interface{}{
		"last_reviewed_at": s.now(),
		"confidence_level": input.ConfidenceLevel,
		"status":           input.Status,
	}
	if input.Notes != "" {
		columns["notes"] = input.Notes
	}

	affected, err := s.repo.UpdateColumns(ctx, id, columns)
	if err != nil {
		return nil, fmt.Errorf("record review %d: %w", id, err)
	}
	if affected == 0 {
		return nil, util.ErrRecordNotFound
	}
	s.record("review")
	return s.find(ctx, id)
}

// Favorites 全部收藏主题，按分类、标题升序
func (s *SystemDesignService) Favorites(ctx context.Context) (items []model.SystemDesignTopic, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Favorites")
	defer func() { tracing.EndSpan(span, err) }()

	favorite := true
	items, err = s.repo.Find(ctx, repository.ListFilter{Favorite: &favorite})
	if err != nil {
		return nil, fmt.Errorf("list favorite %s: %w", s.policy.Name, err)
	}
	slices.SortStableFunc(items, func(a, b model.SystemDesignTopic) int {
		return compareByCategory(&a.TopicBase, &b.TopicBase, false)
	})
	return items, nil
}
