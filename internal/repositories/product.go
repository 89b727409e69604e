package repositories

import (
	"context"
	"fmt"

	"vendor-booking-portal/internal/models"
)

// ProductRepository handles product resources on the booking API
type ProductRepository struct {
	api *APIClient
}

// NewProductRepository creates a new product repository
func NewProductRepository(api *APIClient) *ProductRepository {
	return &ProductRepository{api: api}
}

// ProductUpdate is the writable subset of a product. Empty fields are left
// untouched by PATCH.
type ProductUpdate struct {
	Category    string               `json:"category,omitempty"`
	Subcategory string               `json:"subcategory,omitempty"`
	Kind        models.ProductKind   `json:"kind,omitempty"`
	Name        string               `json:"name,omitempty"`
	Description string               `json:"description,omitempty"`
	Status      models.ProductStatus `json:"status,omitempty"`
}

// Create creates a product from the classification step
func (r *ProductRepository) Create(ctx context.Context, form *models.ClassificationForm) (*models.Product, error) {
	payload := ProductUpdate{
		Category:    form.Category,
		Subcategory: form.Subcategory,
		Kind:        form.Kind,
	}

	var product models.Product
	if err := r.api.Post(ctx, "/products/", payload, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// GetByID retrieves a product with its nested resources
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.api.Get(ctx, fmt.Sprintf("/products/%d/", id), &product); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", models.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// Update replaces the writable product fields
func (r *ProductRepository) Update(ctx context.Context, id int, update *ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := r.api.Put(ctx, fmt.Sprintf("/products/%d/", id), update, &product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// Patch updates only the given product fields
func (r *ProductRepository) Patch(ctx context.Context, id int, update *ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := r.api.Patch(ctx, fmt.Sprintf("/products/%d/", id), update, &product); err != nil {
		return nil, fmt.Errorf("failed to patch product: %w", err)
	}
	return &product, nil
}

// Delete deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/products/%d/", id)); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
