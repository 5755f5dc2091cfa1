package model

import "time"

// Property represents a single real-estate listing.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Area        float64   `json:"area"`
	Image       string    `json:"image"`
	Type        string    `json:"type"`
	Featured    bool      `json:"featured"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
}

// Listing types. Anything else is rejected by the service.
const (
	TypeSale = "sale"
	TypeRent = "rent"
)

// PropertyInput is a partial property as supplied by clients on create and update.
// Nil pointers mean "not supplied": create fills them with defaults, update leaves
// the stored value untouched. ID is never client-settable and has no field here.
type PropertyInput struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Area        *float64 `json:"area"`
	Image       *string  `json:"image"`
	Type        *string  `json:"type"`
	Featured    *bool    `json:"featured"`
	Description *string  `json:"description"`
	UserID      *string  `json:"userId"`
}
