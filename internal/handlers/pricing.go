package handlers

import (
	"math"
	"net/http"
	"strconv"

	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/services"
	"vendor-booking-portal/internal/utils"
)

// PricingHandler serves live price previews for the pricing step
type PricingHandler struct {
	calculator      *services.PricingCalculator
	defaultCurrency string
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(calculator *services.PricingCalculator, defaultCurrency string) *PricingHandler {
	return &PricingHandler{
		calculator:      calculator,
		defaultCurrency: defaultCurrency,
	}
}

// QuoteResponse is a priced breakdown
type QuoteResponse struct {
	Success   bool                      `json:"success"`
	Breakdown services.PricingBreakdown `json:"breakdown"`
	Display   services.PricingDisplay   `json:"display"`
}

// Quote computes the service fee and total for ?price= and ?discount=
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	errs := models.FieldErrors{}

	price, ok := parseAmount(query.Get("price"))
	if !ok || price <= 0 {
		errs["price"] = append(errs["price"], "Must be greater than 0")
	}

	var discount float64
	if raw := query.Get("discount"); raw != "" {
		discount, ok = parseAmount(raw)
		if !ok || discount < 0 {
			errs["discount"] = append(errs["discount"], "Must be 0 or more")
		}
	}

	currency := query.Get("currency")
	if currency == "" {
		currency = h.defaultCurrency
	} else if !utils.ValidCurrencyCode(currency) {
		errs["currency"] = append(errs["currency"], "Unknown currency code")
	}

	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	breakdown := h.calculator.Compute(services.PricingInput{
		PricePerSession: price,
		BulkDiscount:    discount,
	})

	writeJSON(w, http.StatusOK, QuoteResponse{
		Success:   true,
		Breakdown: breakdown,
		Display:   h.calculator.Display(breakdown, currency),
	})
}

// parseAmount accepts finite decimal numbers only. ParseFloat also takes
// "NaN" and "Inf", which cannot be priced or encoded as JSON.
func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
