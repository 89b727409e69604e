package models

// TicketMode selects how tickets are added to the cart
type TicketMode string

const (
	ModeSingle TicketMode = "single"
	ModeBulk   TicketMode = "bulk"
)

// MaxSingleTickets caps the cart length in single ticket mode
const MaxSingleTickets = 3

// IsValid reports whether the mode is known
func (m TicketMode) IsValid() bool {
	return m == ModeSingle || m == ModeBulk
}

// Cart is the in-session list of ticket line items for one product
type Cart struct {
	Mode      TicketMode `json:"mode"`
	ProductID int        `json:"product_id"`
	Items     []CartItem `json:"items"`
}

// CartItem is one ticket line. Total is frozen when the item is added.
type CartItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IDNumber    string  `json:"id_number"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
	PricingType int     `json:"pricing_type"`
	ProductID   int     `json:"product_id"`
}

// CartSummary is derived from the cart items
type CartSummary struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

// Summary computes the running totals
func (c *Cart) Summary() CartSummary {
	var summary CartSummary
	for _, item := range c.Items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice += item.Total
	}
	return summary
}

// IsEmpty returns true when the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
