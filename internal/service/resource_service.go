package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"
	"study_tracker_backend/pkg/monitoring"
	"study_tracker_backend/pkg/tracing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResourceService 单表资源的通用业务实现，差异由 Policy 描述
type ResourceService[T any, PT model.RecordPtr[T]] struct {
	repo   *repository.Repository[T, PT]
	policy Policy[T]
	now    func() time.Time
}

func NewResourceService[T any, PT model.RecordPtr[T]](repo *repository.Repository[T, PT], policy Policy[T]) *ResourceService[T, PT] {
	return &ResourceService[T, PT]{
		repo:   repo,
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *ResourceService[T, PT]) Policy() Policy[T] {
	return s.policy
}

// SetClock 替换时间来源，测试使用
func (s *ResourceService[T, PT]) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ResourceService[T, PT]) List(ctx context.Context, filter repository.ListFilter) (items []T, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".List")
	defer func() { tracing.EndSpan(span, err) }()

	if !s.policy.FavoriteFilter {
		filter.Favorite = nil
	}

	items, err = s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.policy.Name, err)
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return s.policy.Compare(&a, &b)
	})
	return items, nil
}

func (s *ResourceService[T, PT]) Get(ctx context.Context, id uint) (item *T, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Get")
	defer func() { tracing.EndSpan(span, err) }()

	return s.find(ctx, id)
}

// Create 忽略调用方传入的 ID，写入创建时间与默认状态
func (s *ResourceService[T, PT]) Create(ctx context.Context, item PT) (err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Create")
	defer func() { tracing.EndSpan(span, err) }()

	item.SetID(0)
	item.SetVersion(1)
	s.policy.OnCreate((*T)(item), s.now())

	if err := s.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("create %s: %w", s.policy.Name, err)
	}
	s.record("create")
	return nil
}

// Update 读取当前行、应用变更、按版本号写回
// 路径 ID 与请求体 ID 不一致时不做任何写入
func (s *ResourceService[T, PT]) Update(ctx context.Context, id uint, item PT) (err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Update")
	defer func() { tracing.EndSpan(span, err) }()

	if item.GetID() != id {
		return util.ErrIDMismatch
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	currentVersion := PT(current).GetVersion()
	if v := item.GetVersion(); v != 0 && v != currentVersion {
		return util.ErrOptimisticLock
	}

	item.SetVersion(currentVersion)
	s.policy.OnUpdate((*T)(item), current, s.now())

	if err := s.repo.Replace(ctx, item, s.policy.Immutable...); err != nil {
		if !errors.Is(err, util.ErrOptimisticLock) {
			return fmt.Errorf("update %s %d: %w", s.policy.Name, id, err)
		}
		// 写入时版本已变化：记录被删除按不存在处理，否则为并发冲突
		if _, findErr := s.find(ctx, id); errors.Is(findErr, util.ErrRecordNotFound) {
			return util.ErrRecordNotFound
		}
		logger.Log.Warn("Optimistic lock conflict",
			zap.String("resource", s.policy.Name),
			zap.Uint("id", id),
		)
		return util.ErrOptimisticLock
	}
	s.record("update")
	return nil
}

func (s *ResourceService[T, PT]) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Delete")
	defer func() { tracing.EndSpan(span, err) }()

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", s.policy.Name, id, err)
	}
	if affected == 0 {
		return util.ErrRecordNotFound
	}
	s.record("delete")
	return nil
}

func (s *ResourceService[T, PT]) ToggleFavorite(ctx context.Context, id uint) (item *T, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".ToggleFavorite")
	defer func() { tracing.EndSpan(span, err) }()

	if !s.policy.Favorite {
		return nil, util.ErrUnsupported
	}

	affected, err := s.repo.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite %s %d: %w", s.policy.Name, id, err)
	}
	if affected == 0 {
		return nil, util.ErrRecordNotFound
	}
	s.record("favorite")
	return s.find(ctx, id)
}

// Clear 删除表内全部记录，返回删除数量
func (s *ResourceService[T, PT]) Clear(ctx context.Context) (deleted int64, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Clear")
	defer func() { tracing.EndSpan(span, err) }()

	if !s.policy.Clear {
		return 0, util.ErrUnsupported
	}

	deleted, err = s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear %s: %w", s.policy.Name, err)
	}
	logger.Log.Info("Resource cleared", zap.String("resource", s.policy.Name), zap.Int64("deleted", deleted))
	s.record("clear")
	return deleted, nil
}

// Seed 写入固定的示例数据，返回写入数量
func (s *ResourceService[T, PT]) Seed(ctx context.Context) (inserted int, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Seed")
	defer func() { tracing.EndSpan(span, err) }()

	if s.policy.SeedMode == util.SeedNone || s.policy.SeedData == nil {
		return 0, util.ErrUnsupported
	}

	now := s.now()
	items := s.policy.SeedData()
	for i := range items {
		item := PT(&items[i])
		item.SetID(0)
		item.SetVersion(1)
		s.policy.OnCreate(&items[i], now)
	}

	switch s.policy.SeedMode {
	case util.SeedIfEmpty:
		inserted, err = s.repo.InsertIfEmpty(ctx, items)
	default:
		inserted, err = s.repo.ReplaceAll(ctx, items)
	}
	if err != nil {
		if errors.Is(err, util.ErrTableNotEmpty) {
			return 0, err
		}
		return 0, fmt.Errorf("seed %s: %w", s.policy.Name, err)
	}

	logger.Log.Info("Resource seeded", zap.String("resource", s.policy.Name), zap.Int("inserted", inserted))
	s.record("seed")
	return inserted, nil
}

func (s *ResourceService[T, PT]) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.policy.Name, err)
	}
	return count, nil
}

// Categories 去重后的分组值，按字节序升序
func (s *ResourceService[T, PT]) Categories(ctx context.Context) (categories []string, err error) {
	ctx, span := tracing.StartSpan(ctx, s.policy.Name+".Categories")
	defer func() { tracing.EndSpan(span, err) }()

	categories, err = s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s categories: %w", s.policy.Name, err)
	}
	slices.Sort(categories)
	return slices.Compact(categories), nil
}

func (s *ResourceService[T, PT]) find(ctx context.Context, id uint) (*T, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find %s %d: %w", s.policy.Name, id, err)
	}
	return item, nil
}

func (s *ResourceService[T, PT]) record(operation string) {
	monitoring.ResourceOperations.WithLabelValues(s.policy.Name, operation).Inc()
}
