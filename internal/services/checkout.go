package services

import (
	"context"
	"log"

	"vendor-booking-portal/internal/models"
)

// CheckoutService submits the cart as a booking
type CheckoutService struct {
	bookings BookingRepository
	cart     *CartService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(bookings BookingRepository, cart *CartService) *CheckoutService {
	return &CheckoutService{
		bookings: bookings,
		cart:     cart,
	}
}

// Checkout books the cart. The cart is cleared only once the booking API has
// acknowledged the booking.
func (s *CheckoutService) Checkout(ctx context.Context, ws *models.Workspace) (*models.Booking, error) {
	if ws.Cart.IsEmpty() {
		return nil, models.ErrCartEmpty
	}

	booking, err := s.bookings.Create(ctx, models.NewBookingRequest(&ws.Cart))
	if err != nil {
		return nil, err
	}

	log.Printf("booking %s created for product %d (%d lines)", booking.Number, ws.Cart.ProductID, len(ws.Cart.Items))
	s.cart.Clear(&ws.Cart)
	ws.Touch()
	return booking, nil
}
