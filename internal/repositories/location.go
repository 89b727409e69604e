package repositories

import (
	"context"
	"fmt"

	"vendor-booking-portal/internal/models"
)

// LocationRepository handles product locations
type LocationRepository struct {
	api *APIClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(api *APIClient) *LocationRepository {
	return &LocationRepository{api: api}
}

// Create creates the location of a product
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	var created models.Location
	if err := r.api.Post(ctx, "/location/", location, &created); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return &created, nil
}

// Update replaces an existing location
func (r *LocationRepository) Update(ctx context.Context, id int, location *models.Location) (*models.Location, error) {
	var updated models.Location
	if err := r.api.Put(ctx, fmt.Sprintf("/location/%d/", id), location, &updated); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return &updated, nil
}
