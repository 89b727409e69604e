package repositories

import (
	"context"
	"fmt"

	"vendor-booking-portal/internal/models"
)

// PricingRepository handles pricing tiers
type PricingRepository struct {
	api *APIClient
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(api *APIClient) *PricingRepository {
	return &PricingRepository{api: api}
}

// Create creates a pricing entry
func (r *PricingRepository) Create(ctx context.Context, entry *models.PricingEntry) (*models.PricingEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var created models.PricingEntry
	if err := r.api.Post(ctx, "/pricing/", entry, &created); err != nil {
		return nil, fmt.Errorf("failed to create pricing: %w", err)
	}
	return &created, nil
}

// Patch updates a pricing entry
func (r *PricingRepository) Patch(ctx context.Context, id int, entry *models.PricingEntry) (*models.PricingEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var updated models.PricingEntry
	if err := r.api.Patch(ctx, fmt.Sprintf("/pricing/%d/", id), entry, &updated); err != nil {
		return nil, fmt.Errorf("failed to update pricing: %w", err)
	}
	return &updated, nil
}
