package models

import "time"

// ProductKind drives which wizard steps a product goes through
type ProductKind string

const (
	KindExperience ProductKind = "experience"
	KindEvent      ProductKind = "event"
)

// DefaultProductKind is the kind a fresh wizard starts with
const DefaultProductKind = KindExperience

// IsValid reports whether the kind is one the portal knows about
func (k ProductKind) IsValid() bool {
	return k == KindExperience || k == KindEvent
}

// ProductStatus represents the lifecycle status of a product on the booking API
type ProductStatus string

const (
	ProductDraft  ProductStatus = "draft"
	ProductActive ProductStatus = "active"
	ProductPaused ProductStatus = "paused"
)

// MediaType distinguishes photos from videos
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Product is the vendor product being assembled by the wizard. Every slice is
// persisted by its own endpoint; the struct is a projection of those responses.
type Product struct {
	ID           *int           `json:"id,omitempty"`
	Number       string         `json:"number,omitempty"`
	Category     string         `json:"category"`
	Subcategory  string         `json:"subcategory"`
	Kind         ProductKind    `json:"kind,omitempty"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Status       ProductStatus  `json:"status,omitempty"`
	Location     *Location      `json:"location,omitempty"`
	Availability *Availability  `json:"availability,omitempty"`
	Media        []Media        `json:"media"`
	Pricing      []PricingEntry `json:"pricing"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

// Location is the product venue
type Location struct {
	ID        *int    `json:"id,omitempty"`
	Product   int     `json:"product"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Availability holds the open window of a product
type Availability struct {
	ID          *int     `json:"id,omitempty"`
	Product     int      `json:"product"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	StartTime   *string  `json:"start_time,omitempty"`
	EndTime     *string  `json:"end_time,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	OpenDays    []string `json:"open_days"`
	ClosedDates []string `json:"closed_dates,omitempty"`
}

// Media is a photo or video attached to a product, kept in upload order
type Media struct {
	ID        int       `json:"id"`
	Product   int       `json:"product"`
	MediaType MediaType `json:"media_type"`
	File      string    `json:"file"`
}

// HasID returns true once the booking API has assigned an id
func (p *Product) HasID() bool {
	return p != nil && p.ID != nil
}

// IDValue returns the product id or 0 when the draft is not created yet
func (p *Product) IDValue() int {
	if !p.HasID() {
		return 0
	}
	return *p.ID
}

// PricingByID finds a pricing entry on the product
func (p *Product) PricingByID(id int) (*PricingEntry, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Pricing {
		if p.Pricing[i].ID != nil && *p.Pricing[i].ID == id {
			return &p.Pricing[i], true
		}
	}
	return nil, false
}
