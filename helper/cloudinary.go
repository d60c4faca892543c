package helper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/logger"
	"eldercare_booking/model"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CloudinaryUploader tải ảnh base64 (giấy tờ người cao tuổi, thẻ bảo hiểm, ảnh hoạt động) lên Cloudinary
type CloudinaryUploader struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

// InitCloudinary trả về nil khi chưa cấu hình, ảnh base64 khi đó được lưu nguyên
func InitCloudinary() *CloudinaryUploader {
	cloudName := config.Config("CLOUDINARY_CLOUD_NAME")
	apiKey := config.Config("CLOUDINARY_API_KEY")
	apiSecret := config.Config("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		logger.Warning("Cloudinary chưa được cấu hình, bỏ qua upload ảnh")
		return nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		logger.Error("Cloudinary init failed", err)
		return nil
	}
	return &CloudinaryUploader{cld: cld, cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, dataURL, folder string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, dataURL, uploader.UploadParams{
		Folder:       folder,
		PublicID:     uuid.NewString(),
		ResourceType: "image",
	})
	if err != nil {
		return "", errors.Wrap(err, "cloudinary upload")
	}
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	return result.SecureURL, nil
}

// SignUpload chữ ký cho phép trình duyệt upload thẳng lên Cloudinary
func (u *CloudinaryUploader) SignUpload(folder string, now time.Time) (*model.UploadSignature, error) {
	timestamp := now.Unix()
	params := url.Values{}
	params.Set("folder", folder)
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, u.apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "sign upload params")
	}
	return &model.UploadSignature{
		Timestamp: timestamp,
		Signature: signature,
		APIKey:    u.apiKey,
		CloudName: u.cloudName,
		Folder:    folder,
		UploadURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName),
	}, nil
}
