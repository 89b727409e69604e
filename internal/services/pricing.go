package services

import (
	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/utils"
)

// ServiceFeeRate is charged on top of the discounted price
const ServiceFeeRate = 0.05

// PricingInput is what the vendor enters for one tier
type PricingInput struct {
	PricePerSession float64 `json:"price_per_session"`
	BulkDiscount    float64 `json:"bulk_discount"`
}

// PricingBreakdown holds the unrounded figures. Total is what gets stored as
// the pricing entry cost.
type PricingBreakdown struct {
	Base       float64 `json:"base"`
	Discount   float64 `json:"discount"`
	Net        float64 `json:"net"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

// PricingDisplay is the breakdown rounded to whole units for the vendor
type PricingDisplay struct {
	Currency       string `json:"currency"`
	Base           int64  `json:"base"`
	Discount       int64  `json:"discount"`
	ServiceFee     int64  `json:"service_fee"`
	Total          int64  `json:"total"`
	BaseText       string `json:"base_text"`
	DiscountText   string `json:"discount_text"`
	ServiceFeeText string `json:"service_fee_text"`
	TotalText      string `json:"total_text"`
}

// PricingCalculator turns vendor input into chargeable totals
type PricingCalculator struct {
	feeRate  float64
	currency string
}

// NewPricingCalculator creates a calculator that formats in currencyCode
func NewPricingCalculator(currencyCode string) *PricingCalculator {
	return &PricingCalculator{
		feeRate:  ServiceFeeRate,
		currency: currencyCode,
	}
}

// Compute applies the discount and adds the service fee. A discount larger
// than the price yields a negative total; nothing guards against it here.
func (c *PricingCalculator) Compute(input PricingInput) PricingBreakdown {
	net := input.PricePerSession - input.BulkDiscount
	fee := c.feeRate * net

	return PricingBreakdown{
		Base:       input.PricePerSession,
		Discount:   input.BulkDiscount,
		Net:        net,
		ServiceFee: fee,
		Total:      net + fee,
	}
}

// Display rounds the breakdown and formats it. An empty currencyCode uses the
// calculator default.
func (c *PricingCalculator) Display(b PricingBreakdown, currencyCode string) PricingDisplay {
	if currencyCode == "" {
		currencyCode = c.currency
	}

	return PricingDisplay{
		Currency:       currencyCode,
		Base:           utils.RoundAmount(b.Base),
		Discount:       utils.RoundAmount(b.Discount),
		ServiceFee:     utils.RoundAmount(b.ServiceFee),
		Total:          utils.RoundAmount(b.Total),
		BaseText:       utils.FormatAmount(b.Base, currencyCode),
		DiscountText:   utils.FormatAmount(b.Discount, currencyCode),
		ServiceFeeText: utils.FormatAmount(b.ServiceFee, currencyCode),
		TotalText:      utils.FormatAmount(b.Total, currencyCode),
	}
}

// EntryFromForm builds the pricing entry sent upstream. Cost is the unrounded
// total.
func (c *PricingCalculator) EntryFromForm(productID int, form *models.PricingForm) (*models.PricingEntry, PricingBreakdown) {
	breakdown := c.Compute(PricingInput{
		PricePerSession: form.PricePerSession,
		BulkDiscount:    form.BulkDiscount,
	})

	entry := &models.PricingEntry{
		ID:                     form.ID,
		Product:                productID,
		Type:                   form.Type,
		Cost:                   breakdown.Total,
		Currency:               form.Currency,
		MaximumNumberOfTickets: form.MaximumNumberOfTickets,
	}
	if form.Type == models.PricingTicket {
		tier := form.TicketTier
		entry.TicketTier = &tier
	}

	return entry, breakdown
}
