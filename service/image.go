package service

import (
	"context"

	"eldercare_booking/utils"

	"github.com/pkg/errors"
)

// ImageUploader tải ảnh base64 lên kho ảnh và trả về URL công khai
type ImageUploader interface {
	Upload(ctx context.Context, dataURL, folder string) (string, error)
}

// resolveImage chỉ tải lên các giá trị data URL, URL sẵn có giữ nguyên
func resolveImage(ctx context.Context, uploader ImageUploader, value, folder string) (string, error) {
	if value == "" || uploader == nil || !utils.IsDataURL(value) {
		return value, nil
	}
	url, err := uploader.Upload(ctx, value, folder)
	if err != nil {
		return "", errors.Wrap(err, "upload image")
	}
	return url, nil
}
