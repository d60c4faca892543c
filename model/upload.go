package model

type UploadSignature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
	UploadURL string `json:"uploadUrl"`
}

type UploadSignatureInput struct {
	Folder string `json:"folder" validate:"omitempty,oneof=documents profiles activities"`
}
