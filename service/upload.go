package service

import (
	"time"

	"eldercare_booking/model"
)

type UploadSigner interface {
	SignUpload(folder string, now time.Time) (*model.UploadSignature, error)
}

var uploadFolders = map[string]string{
	"":           elderDocumentFolder,
	"documents":  elderDocumentFolder,
	"profiles":   profileDocumentFolder,
	"activities": activityImageFolder,
}

type UploadService struct {
	signer UploadSigner
	now    func() time.Time
}

func NewUploadService(signer UploadSigner) *UploadService {
	return &UploadService{signer: signer, now: time.Now}
}

// Signature chỉ admin được ký upload vào thư mục ảnh hoạt động
func (s *UploadService) Signature(actor model.Actor, input *model.UploadSignatureInput) (*model.UploadSignature, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	if s.signer == nil {
		return nil, ErrNotConfigured
	}
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	if input.Folder == "activities" {
		if err := requireAdmin(actor); err != nil {
			return nil, err
		}
	}
	return s.signer.SignUpload(uploadFolders[input.Folder], s.now())
}
