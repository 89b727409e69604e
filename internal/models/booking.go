package models

// BookingRequest is sent upstream when a cart is checked out
type BookingRequest struct {
	Product int           `json:"product"`
	Mode    TicketMode    `json:"mode"`
	Tickets []BookingLine `json:"tickets"`
}

// BookingLine is one cart item as the booking API expects it
type BookingLine struct {
	Name        string  `json:"name"`
	IDNumber    string  `json:"id_number"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
	PricingType int     `json:"pricing_type"`
}

// Booking is the acknowledgement returned by the booking API
type Booking struct {
	ID          int     `json:"id"`
	Number      string  `json:"number"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"total_price"`
	PaymentLink string  `json:"payment_link,omitempty"`
}

// NewBookingRequest converts a cart into a booking request
func NewBookingRequest(cart *Cart) *BookingRequest {
	req := &BookingRequest{
		Product: cart.ProductID,
		Mode:    cart.Mode,
		Tickets: make([]BookingLine, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		req.Tickets = append(req.Tickets, BookingLine{
			Name:        item.Name,
			IDNumber:    item.IDNumber,
			PhoneNumber: item.PhoneNumber,
			Email:       item.Email,
			Quantity:    item.Quantity,
			Total:       item.Total,
			PricingType: item.PricingType,
		})
	}
	return req
}
