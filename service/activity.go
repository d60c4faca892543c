package service

import (
	"context"
	"fmt"

	"eldercare_booking/model"
	"eldercare_booking/store"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

const activityImageFolder = "eldercare/activities"

type ActivityService struct {
	activities store.ActivityStore
	uploader   ImageUploader
}

func NewActivityService(activities store.ActivityStore, uploader ImageUploader) *ActivityService {
	return &ActivityService{activities: activities, uploader: uploader}
}

func (s *ActivityService) List(ctx context.Context, filter model.FilterActivity) (model.Activities, error) {
	activities, err := s.activities.List(ctx, filter, true)
	if err != nil {
		return nil, errors.Wrap(err, "list activities")
	}
	return activities, nil
}

func (s *ActivityService) Get(ctx context.Context, id uint) (*model.Activity, error) {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "find activity")
	}
	return activity, nil
}

func (s *ActivityService) GetBySlug(ctx context.Context, value string) (*model.Activity, error) {
	activity, err := s.activities.FindBySlug(ctx, value)
	if err != nil {
		return nil, mapStoreErr(err, "find activity by slug")
	}
	return activity, nil
}

// uniqueSlug thêm hậu tố -1, -2... cho tới khi không trùng
func (s *ActivityService) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "hoat-dong"
	}
	result := base
	for i := 1; ; i++ {
		exists, err := s.activities.SlugExists(ctx, result, excludeID)
		if err != nil {
			return "", errors.Wrap(err, "check slug")
		}
		if !exists {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *ActivityService) Create(ctx context.Context, actor model.Actor, input *model.ActivityInput) (*model.Activity, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	var activity model.Activity
	if err := copier.Copy(&activity, input); err != nil {
		return nil, errors.Wrap(err, "copy activity input")
	}
	activity.IsActive = input.IsActive == nil || *input.IsActive
	if activity.Package == "" {
		activity.Package = "standard"
	}
	if activity.Features == nil {
		activity.Features = []string{}
	}

	image, err := resolveImage(ctx, s.uploader, input.Image, activityImageFolder)
	if err != nil {
		return nil, err
	}
	activity.Image = image

	if activity.Slug, err = s.uniqueSlug(ctx, input.Title, 0); err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, &activity); err != nil {
		return nil, errors.Wrap(err, "create activity")
	}
	return &activity, nil
}

// Update chỉ ghi đè các trường có giá trị, đổi tiêu đề thì sinh lại slug
func (s *ActivityService) Update(ctx context.Context, actor model.Actor, id uint, input *model.ActivityInput) (*model.Activity, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "find activity")
	}
	oldTitle := activity.Title

	if err := copier.CopyWithOption(activity, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errors.Wrap(err, "copy activity input")
	}
	if input.IsActive != nil {
		activity.IsActive = *input.IsActive
	}
	if input.Image != "" {
		if activity.Image, err = resolveImage(ctx, s.uploader, input.Image, activityImageFolder); err != nil {
			return nil, err
		}
	}
	if activity.Title != oldTitle {
		if activity.Slug, err = s.uniqueSlug(ctx, activity.Title, activity.ID); err != nil {
			return nil, err
		}
	}

	if err := s.activities.Save(ctx, activity); err != nil {
		return nil, mapStoreErr(err, "save activity")
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, actor model.Actor, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.activities.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "delete activity")
	}
	return nil
}
