package repositories

import (
	"context"
	"fmt"

	"vendor-booking-portal/internal/models"
)

// BookingRepository submits carts to the booking API
type BookingRepository struct {
	api *APIClient
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(api *APIClient) *BookingRepository {
	return &BookingRepository{api: api}
}

// Create submits a booking for the cart lines
func (r *BookingRepository) Create(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := r.api.Post(ctx, "/bookings/", req, &booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}
