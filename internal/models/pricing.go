package models

import "errors"

// PricingType is the kind of priced option a product offers
type PricingType string

const (
	PricingSession             PricingType = "session"
	PricingDayPass             PricingType = "day_pass"
	PricingMonthlySubscription PricingType = "monthly_subscription"
	PricingTicket              PricingType = "ticket"
)

// TicketTier applies to ticket pricing only
type TicketTier string

const (
	TierEarlyBird         TicketTier = "early_bird"
	TierStandard          TicketTier = "standard"
	TierStandardAtTheGate TicketTier = "standard_at_the_gate"
	TierLastMinute        TicketTier = "last_minute"
	TierVIP               TicketTier = "vip"
	TierVVIP              TicketTier = "vvip"
)

// PricingEntry is one priced option of a product. Cost already includes the
// service fee.
type PricingEntry struct {
	ID                     *int        `json:"id,omitempty"`
	Product                int         `json:"product"`
	Type                   PricingType `json:"type"`
	TicketTier             *TicketTier `json:"ticket_tier,omitempty"`
	Cost                   float64     `json:"cost"`
	Currency               int         `json:"currency"`
	MaximumNumberOfTickets int         `json:"maximum_number_of_tickets"`
}

// IsValid reports whether the pricing type is known
func (t PricingType) IsValid() bool {
	switch t {
	case PricingSession, PricingDayPass, PricingMonthlySubscription, PricingTicket:
		return true
	}
	return false
}

// IsValid reports whether the tier is known
func (t TicketTier) IsValid() bool {
	switch t {
	case TierEarlyBird, TierStandard, TierStandardAtTheGate, TierLastMinute, TierVIP, TierVVIP:
		return true
	}
	return false
}

// Validate checks the entry before it is sent upstream
func (e *PricingEntry) Validate() error {
	if !e.Type.IsValid() {
		return errors.New("invalid pricing type")
	}

	if e.Type == PricingTicket {
		if e.TicketTier == nil {
			return errors.New("ticket tier is required for ticket pricing")
		}
		if !e.TicketTier.IsValid() {
			return errors.New("invalid ticket tier")
		}
	}

	if e.MaximumNumberOfTickets <= 0 {
		return errors.New("maximum number of tickets must be greater than 0")
	}

	return nil
}
