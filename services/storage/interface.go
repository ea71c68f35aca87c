package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the asset host used for profile images and KYC
// documents. KYC files are uploaded browser-to-host; this service signs
// uploads, persists server-side assets and resolves download URLs.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
	SignUploadParams(folder string) UnsignedUploadParams
}

// UnsignedUploadParams is what the SPA needs to upload directly to the asset
// host: target URL pieces plus a signature over the timestamped params.
type UnsignedUploadParams struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}
