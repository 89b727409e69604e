package services

import (
	"context"
	"fmt"

	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/utils"
)

// CartService maintains the ticket cart of a workspace
type CartService struct {
	products ProductReader
}

// NewCartService creates a new cart service
func NewCartService(products ProductReader) *CartService {
	return &CartService{products: products}
}

// AddTicket resolves the selected pricing entry and adds the ticket line
func (s *CartService) AddTicket(ctx context.Context, ws *models.Workspace, form *models.AddTicketForm) (*models.CartItem, error) {
	product, err := s.products.GetByID(ctx, form.ProductID)
	if err != nil {
		return nil, err
	}

	entry, ok := product.PricingByID(form.PricingType)
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrPricingEntryNotFound, form.PricingType)
	}

	item, err := s.Add(&ws.Cart, entry, form)
	if err != nil {
		return nil, err
	}
	ws.Touch()
	return item, nil
}

// Add appends a line to the cart after checking the mode limits. The line
// total uses the entry cost at this moment and is never recomputed. A line for
// another product starts a new cart, but only once it has been accepted.
func (s *CartService) Add(cart *models.Cart, entry *models.PricingEntry, form *models.AddTicketForm) (*models.CartItem, error) {
	startsNew := cart.ProductID != 0 && cart.ProductID != form.ProductID

	view := *cart
	if startsNew {
		view.Items = nil
	}
	if err := checkLimits(&view, entry, form); err != nil {
		return nil, err
	}

	if startsNew {
		s.Clear(cart)
	}

	item := models.CartItem{
		ID:          utils.NewLineItemID(),
		Name:        form.Name,
		IDNumber:    form.IDNumber,
		PhoneNumber: form.PhoneNumber,
		Email:       form.Email,
		Quantity:    form.Quantity,
		Total:       entry.Cost * float64(form.Quantity),
		PricingType: form.PricingType,
		ProductID:   form.ProductID,
	}

	cart.ProductID = form.ProductID
	cart.Items = append(cart.Items, item)
	return &item, nil
}

// checkLimits applies the single and bulk mode caps to cart
func checkLimits(cart *models.Cart, entry *models.PricingEntry, form *models.AddTicketForm) error {
	switch cart.Mode {
	case models.ModeBulk:
		maxTickets := entry.MaximumNumberOfTickets
		totalItems := cart.Summary().TotalItems

		if form.Quantity > maxTickets {
			return models.ErrBulkQuantityExceeded
		}
		// reaching the cap exactly already blocks further adds
		if totalItems == maxTickets || totalItems > maxTickets || totalItems+form.Quantity > maxTickets {
			return models.ErrBulkCapReached
		}
	default:
		if len(cart.Items) >= models.MaxSingleTickets {
			return models.ErrSingleTicketLimit
		}
	}
	return nil
}

// Remove drops the line with id. Unknown ids are ignored.
func (s *CartService) Remove(cart *models.Cart, id string) bool {
	for i, item := range cart.Items {
		if item.ID == id {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart, keeping its mode
func (s *CartService) Clear(cart *models.Cart) {
	cart.Items = []models.CartItem{}
	cart.ProductID = 0
}

// SetMode switches between single and bulk mode. The cart is always emptied,
// even when the mode does not change.
func (s *CartService) SetMode(cart *models.Cart, mode models.TicketMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %s", models.ErrInvalidTicketMode, mode)
	}
	cart.Mode = mode
	s.Clear(cart)
	return nil
}
