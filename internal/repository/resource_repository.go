package repository

import (
	"context"
	"fmt"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// Columns 资源表中参与过滤的列名
type Columns struct {
	Category string // 分组列，学习记录使用 type
	Date     string // 日期范围过滤列，为空表示不支持
}

// ListFilter 列表过滤条件，零值表示不过滤，多个条件按 AND 组合
type ListFilter struct {
	Category string
	Status   string
	Favorite *bool
	From     *time.Time
	To       *time.Time
}

// Repository 单表通用数据访问
type Repository[T any, PT model.RecordPtr[T]] struct {
	DB      *gorm.DB
	columns Columns
}

func NewRepository[T any, PT model.RecordPtr[T]](db *gorm.DB, columns Columns) *Repository[T, PT] {
	if columns.Category == "" {
		columns.Category = "category"
	}
	return &Repository[T, PT]{DB: db, columns: columns}
}

func (r *Repository[T, PT]) Find(ctx context.Context, filter ListFilter) ([]T, error) {
	query := r.DB.WithContext(ctx).Model(new(T))

	if filter.Category != "" {
		query = query.Where(fmt.Sprintf("%s = ?", r.columns.Category), filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Favorite != nil {
		query = query.Where("is_favorite = ?", *filter.Favorite)
	}
	if r.columns.Date != "" {
		if filter.From != nil {
			query = query.Where(fmt.Sprintf("%s >= ?", r.columns.Date), *filter.From)
		}
		if filter.To != nil {
			query = query.Where(fmt.Sprintf("%s <= ?", r.columns.Date), *filter.To)
		}
	}

	items := make([]T, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository[T, PT]) FindByID(ctx context.Context, id uint) (*T, error) {
	var item T
	err := r.DB.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository[T, PT]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

func (r *Repository[T, PT]) Create(ctx context.Context, item PT) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// Replace 整行覆盖写入，以读取时的 version 作为乐观锁条件
// immutable 中的列不会被写入
func (r *Repository[T, PT]) Replace(ctx context.Context, item PT, immutable ...string) error {
	oldVersion := item.GetVersion()
	item.SetVersion(oldVersion + 1)

	result := r.DB.WithContext(ctx).
		Model(item).
		Where("id = ? AND version = ?", item.GetID(), oldVersion).
		Select("*").
		Omit(append([]string{"id"}, immutable...)...).
		Updates(item)
	if result.Error != nil {
		item.SetVersion(oldVersion)
		return result.Error
	}
	if result.RowsAffected == 0 {
		item.SetVersion(oldVersion)
		return util.ErrOptimisticLock
	}
	return nil
}

// UpdateColumns 按主键原子更新指定列并递增 version，返回受影响行数
func (r *Repository[T, PT]) UpdateColumns(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	columns["version"] = gorm.Expr("version + 1")
	result := r.DB.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(columns)
	return result.RowsAffected, result.Error
}

// ToggleFavorite 在单条 UPDATE 中翻转收藏标记
func (r *Repository[T, PT]) ToggleFavorite(ctx context.Context, id uint) (int64, error) {
	return r.UpdateColumns(ctx, id, map[string]interface{}{
		"is_favorite": gorm.Expr("NOT is_favorite"),
	})
}

func (r *Repository[T, PT]) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.DB.WithContext(ctx).Delete(new(T), id)
	return result.RowsAffected, result.Error
}

// DeleteAll 清空整表，返回删除行数
func (r *Repository[T, PT]) DeleteAll(ctx context.Context) (int64, error) {
	result := r.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(new(T))
	return result.RowsAffected, result.Error
}

// ReplaceAll 在同一事务内清空整表并写入 items
func (r *Repository[T, PT]) ReplaceAll(ctx context.Context, items []T) (int, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error; err != nil {
			return err
		}
		return insertAll(tx, items)
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// InsertIfEmpty 仅当表为空时写入 items，否则返回 util.ErrTableNotEmpty
func (r *Repository[T, PT]) InsertIfEmpty(ctx context.Context, items []T) (int, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrTableNotEmpty
		}
		return insertAll(tx, items)
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Categories 返回分组列中所有非空的去重值（未排序）
func (r *Repository[T, PT]) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.DB.WithContext(ctx).
		Model(new(T)).
		Distinct().
		Where(fmt.Sprintf("%s <> ?", r.columns.Category), "").
		Pluck(r.columns.Category, &categories).Error
	return categories, err
}

func insertAll[T any](tx *gorm.DB, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return tx.CreateInBatches(&items, 100).Error
}
