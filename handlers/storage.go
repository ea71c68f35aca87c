package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"broheal/services/storage"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler exposes asset uploads and upload signing. KYC documents are
// uploaded straight from the browser with signed params; server-side uploads
// cover profile images.
type StorageHandler struct {
	Storage storage.StorageService
}

// Upload accepts a multipart file, pushes it to the asset host and returns
// the hosted URL.
func (h *StorageHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}
	folder := c.DefaultPostForm("folder", "uploads")

	tmp := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		getLogger(c).Error("failed to buffer upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process upload", "")
		return
	}
	defer os.Remove(tmp)

	url, err := h.Storage.UploadFile(c.Request.Context(), tmp, folder)
	if err != nil {
		getLogger(c).Error("failed to upload file", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// SignUpload returns the parameters the SPA needs for a direct
// browser-to-host upload.
func (h *StorageHandler) SignUpload(c *gin.Context) {
	folder := c.DefaultQuery("folder", "kyc")
	c.JSON(http.StatusOK, h.Storage.SignUploadParams(folder))
}

// signedURLTTL bounds how long a reviewer's document link stays valid.
const signedURLTTL = 15 * time.Minute

// SignedDownloadURL returns a short-lived URL for an authenticated asset.
// KYC documents are stored as authenticated resources, so reviewers fetch
// them through here rather than by raw public URL.
func (h *StorageHandler) SignedDownloadURL(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing publicId", "")
		return
	}
	resourceType := c.DefaultQuery("type", "image")

	url, err := h.Storage.GetSecureDownloadURL(c.Request.Context(), resourceType, publicID, signedURLTTL)
	if err != nil {
		getLogger(c).Error("failed to sign download url", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign URL", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
