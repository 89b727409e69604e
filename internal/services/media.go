package services

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/repositories"
)

// MediaConfig bounds the images sent to the booking API
type MediaConfig struct {
	MaxImageWidth  int
	MaxImageHeight int
	JPEGQuality    int
}

// MediaService prepares photos and videos for upload
type MediaService struct {
	config MediaConfig
}

// NewMediaService creates a new media service
func NewMediaService(config MediaConfig) *MediaService {
	if config.MaxImageWidth <= 0 {
		config.MaxImageWidth = 1920
	}
	if config.MaxImageHeight <= 0 {
		config.MaxImageHeight = 1080
	}
	if config.JPEGQuality <= 0 || config.JPEGQuality > 100 {
		config.JPEGQuality = 85
	}
	return &MediaService{config: config}
}

// Prepare turns a raw upload into a MediaUpload. Images larger than the
// configured bounds are scaled down keeping their aspect ratio; videos are
// passed through untouched.
func (s *MediaService) Prepare(productID int, mediaType models.MediaType, filename, contentType string, content io.Reader) (*repositories.MediaUpload, error) {
	switch mediaType {
	case models.MediaImage:
		return s.prepareImage(productID, filename, content)
	case models.MediaVideo:
		if contentType != "" && !strings.HasPrefix(contentType, "video/") {
			return nil, fmt.Errorf("%w: %s is not a video", models.ErrUnsupportedMedia, contentType)
		}
		return &repositories.MediaUpload{
			ProductID:   productID,
			MediaType:   models.MediaVideo,
			Filename:    filename,
			ContentType: contentType,
			Content:     content,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedMedia, mediaType)
	}
}

func (s *MediaService) prepareImage(productID int, filename string, content io.Reader) (*repositories.MediaUpload, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil || !isSupportedImageFormat(format) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedMedia, filepath.Ext(filename))
	}

	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a readable image: %v", models.ErrUnsupportedMedia, filename, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > s.config.MaxImageWidth || bounds.Dy() > s.config.MaxImageHeight {
		img = imaging.Fit(img, s.config.MaxImageWidth, s.config.MaxImageHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(s.config.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &repositories.MediaUpload{
		ProductID:   productID,
		MediaType:   models.MediaImage,
		Filename:    filename,
		ContentType: imageContentType(format),
		Content:     &buf,
	}, nil
}

func isSupportedImageFormat(format imaging.Format) bool {
	switch format {
	case imaging.JPEG, imaging.PNG, imaging.GIF:
		return true
	}
	return false
}

func imageContentType(format imaging.Format) string {
	switch format {
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
