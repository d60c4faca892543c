package store

import (
	"context"
	"errors"
	"strings"

	"eldercare_booking/model"

	"gorm.io/gorm"
)

type gormActivityStore struct {
	db *gorm.DB
}

func NewGormActivityStore(db *gorm.DB) ActivityStore {
	return &gormActivityStore{db: db}
}

func (s *gormActivityStore) List(ctx context.Context, filter model.FilterActivity, activeOnly bool) (model.Activities, error) {
	condition := s.db.WithContext(ctx).Model(&model.Activity{})
	if activeOnly {
		condition = condition.Where("is_active = ?", true)
	}
	if filter.Category != "" && filter.Category != "all" {
		condition = condition.Where("category = ?", filter.Category)
	}
	if filter.Format != "" {
		condition = condition.Where("format = ?", filter.Format)
	}
	if filter.Package != "" {
		condition = condition.Where("package = ?", filter.Package)
	}
	if filter.Search != "" {
		condition = condition.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var activities model.Activities
	if err := condition.Order("created_at desc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *gormActivityStore) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := s.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (s *gormActivityStore) FindBySlug(ctx context.Context, slug string) (*model.Activity, error) {
	var activity model.Activity
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (s *gormActivityStore) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Activity{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}

func (s *gormActivityStore) Save(ctx context.Context, activity *model.Activity) error {
	return s.db.WithContext(ctx).Save(activity).Error
}

func (s *gormActivityStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormActivityStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Activity{}).Count(&count).Error
	return count, err
}
