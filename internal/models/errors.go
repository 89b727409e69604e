package models

import "errors"

// Common errors used throughout the application
var (
	ErrDraftNotFound        = errors.New("no product draft in progress")
	ErrProductNotFound      = errors.New("product not found")
	ErrPricingEntryNotFound = errors.New("pricing entry not found")
	ErrUnknownStep          = errors.New("unknown wizard step")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidTicketMode    = errors.New("invalid ticket mode")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrUnsupportedMedia     = errors.New("unsupported media type")

	// Cart rejections are shown to the user as an alert
	ErrSingleTicketLimit    = errors.New("you can only add up to 3 tickets at a time")
	ErrBulkQuantityExceeded = errors.New("quantity exceeds the maximum number of tickets for this pricing")
	ErrBulkCapReached       = errors.New("the maximum number of tickets for this pricing has been reached")
)

// IsCartRejection returns true for business rule rejections of the cart
func IsCartRejection(err error) bool {
	return errors.Is(err, ErrSingleTicketLimit) ||
		errors.Is(err, ErrBulkQuantityExceeded) ||
		errors.Is(err, ErrBulkCapReached)
}
