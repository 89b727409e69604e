package repositories

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"vendor-booking-portal/internal/models"
)

// MediaRepository handles product photos and videos
type MediaRepository struct {
	api *APIClient
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(api *APIClient) *MediaRepository {
	return &MediaRepository{api: api}
}

// MediaUpload is a prepared file ready to be sent upstream
type MediaUpload struct {
	ProductID   int
	MediaType   models.MediaType
	Filename    string
	ContentType string
	Content     io.Reader
}

// Upload sends a media file as multipart/form-data
func (r *MediaRepository) Upload(ctx context.Context, upload *MediaUpload) (*models.Media, error) {
	fields := map[string]string{
		"product":    strconv.Itoa(upload.ProductID),
		"media_type": string(upload.MediaType),
	}
	file := MultipartFile{
		Field:       "file",
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Content:     upload.Content,
	}

	var media models.Media
	if err := r.api.PostMultipart(ctx, "/media/", fields, file, &media); err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}
	return &media, nil
}

// Delete removes a media file
func (r *MediaRepository) Delete(ctx context.Context, id int) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/media/%d/", id)); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return nil
}
