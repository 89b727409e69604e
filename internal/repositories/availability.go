package repositories

import (
	"context"
	"fmt"

	"vendor-booking-portal/internal/models"
)

// AvailabilityRepository handles open days, closed dates and time windows
type AvailabilityRepository struct {
	api *APIClient
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(api *APIClient) *AvailabilityRepository {
	return &AvailabilityRepository{api: api}
}

// Create creates the availability of a product
func (r *AvailabilityRepository) Create(ctx context.Context, availability *models.Availability) (*models.Availability, error) {
	var created models.Availability
	if err := r.api.Post(ctx, "/availability/", availability, &created); err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}
	return &created, nil
}

// Patch updates an existing availability
func (r *AvailabilityRepository) Patch(ctx context.Context, id int, availability *models.Availability) (*models.Availability, error) {
	var updated models.Availability
	if err := r.api.Patch(ctx, fmt.Sprintf("/availability/%d/", id), availability, &updated); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return &updated, nil
}
