package services

import (
	"context"

	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/repositories"
)

// ProductRepository defines product operations on the booking API
type ProductRepository interface {
	Create(ctx context.Context, form *models.ClassificationForm) (*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, id int, update *repositories.ProductUpdate) (*models.Product, error)
	Patch(ctx context.Context, id int, update *repositories.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id int) error
}

// LocationRepository defines location operations on the booking API
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) (*models.Location, error)
	Update(ctx context.Context, id int, location *models.Location) (*models.Location, error)
}

// AvailabilityRepository defines availability operations on the booking API
type AvailabilityRepository interface {
	Create(ctx context.Context, availability *models.Availability) (*models.Availability, error)
	Patch(ctx context.Context, id int, availability *models.Availability) (*models.Availability, error)
}

// MediaRepository defines media operations on the booking API
type MediaRepository interface {
	Upload(ctx context.Context, upload *repositories.MediaUpload) (*models.Media, error)
	Delete(ctx context.Context, id int) error
}

// PricingRepository defines pricing operations on the booking API
type PricingRepository interface {
	Create(ctx context.Context, entry *models.PricingEntry) (*models.PricingEntry, error)
	Patch(ctx context.Context, id int, entry *models.PricingEntry) (*models.PricingEntry, error)
}

// BookingRepository submits bookings to the booking API
type BookingRepository interface {
	Create(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)
}

// ProductReader is the read side used by the cart
type ProductReader interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}
