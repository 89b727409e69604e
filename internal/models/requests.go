package models

import "time"

// ClassificationForm is submitted on the first wizard step
type ClassificationForm struct {
	Category    string      `json:"category" validate:"required,max=100"`
	Subcategory string      `json:"subcategory" validate:"required,max=100"`
	Kind        ProductKind `json:"kind" validate:"required,oneof=event experience"`
}

// DescriptionForm carries the product copy and its venue
type DescriptionForm struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=5000"`
	Address     string  `json:"address" validate:"required,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
	Country     string  `json:"country" validate:"omitempty,max=100"`
	Latitude    float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude" validate:"omitempty,longitude"`
}

// AvailabilityForm describes when the product can be booked
type AvailabilityForm struct {
	Start       string   `json:"start" validate:"required,datetime=2006-01-02"`
	End         string   `json:"end" validate:"required,datetime=2006-01-02"`
	StartTime   *string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	Duration    string   `json:"duration" validate:"omitempty,max=50"`
	OpenDays    []string `json:"open_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ClosedDates []string `json:"closed_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

// PricingForm is what the vendor types on the pricing step. ID is set when an
// existing tier is edited.
type PricingForm struct {
	ID                     *int        `json:"id,omitempty"`
	Type                   PricingType `json:"type" validate:"required,oneof=session day_pass monthly_subscription ticket"`
	TicketTier             TicketTier  `json:"ticket_tier" validate:"omitempty,oneof=early_bird standard standard_at_the_gate last_minute vip vvip"`
	PricePerSession        float64     `json:"price_per_session" validate:"required,gt=0"`
	BulkDiscount           float64     `json:"bulk_discount" validate:"gte=0"`
	MaximumNumberOfTickets int         `json:"maximum_number_of_tickets" validate:"required,gt=0"`
	Currency               int         `json:"currency" validate:"required,gt=0"`
}

// AddTicketForm adds one line to the cart
type AddTicketForm struct {
	Name        string `json:"name" validate:"required,max=200"`
	IDNumber    string `json:"id_number" validate:"required,max=50"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	PricingType int    `json:"pricing_type" validate:"required,gt=0"`
	ProductID   int    `json:"product_id" validate:"required,gt=0"`
}

// TicketModeRequest switches the cart between single and bulk mode
type TicketModeRequest struct {
	Mode TicketMode `json:"mode" validate:"required,oneof=single bulk"`
}

// StepRequest moves the wizard to a step given by key or index
type StepRequest struct {
	Step  StepKey `json:"step"`
	Index int     `json:"index"`
}

// Validate validates the classification form
func (f *ClassificationForm) Validate() error {
	return validateStruct(f)
}

// Validate validates the description form
func (f *DescriptionForm) Validate() error {
	return validateStruct(f)
}

// Validate validates the availability form, including the date order
func (f *AvailabilityForm) Validate() error {
	if err := validateStruct(f); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", f.Start)
	end, _ := time.Parse("2006-01-02", f.End)
	if end.Before(start) {
		return FieldErrors{"end": {"End date must be on or after the start date"}}
	}

	return nil
}

// Validate validates the pricing form. A discount larger than the price is
// accepted as is.
func (f *PricingForm) Validate() error {
	if err := validateStruct(f); err != nil {
		return err
	}

	if f.Type == PricingTicket && f.TicketTier == "" {
		return FieldErrors{"ticket_tier": {"This field is required"}}
	}

	return nil
}

// Validate validates the add ticket form
func (f *AddTicketForm) Validate() error {
	return validateStruct(f)
}

// Validate validates the ticket mode request
func (r *TicketModeRequest) Validate() error {
	return validateStruct(r)
}
