package repository

import (
	"context"
	"errors"

	"dreamdwell/internal/model"
)

// ErrNotFound is returned by any backing when the requested property id does not
// exist. Backings translate their native "no rows" signal into this sentinel so the
// service never depends on a specific store.
var ErrNotFound = errors.New("property not found")

// PropertyRepository defines data access for properties. Implementations live in
// subpackages (postgres, memory) and must expose identical observable semantics.
// No business logic here — strictly persistence operations.
type PropertyRepository interface {
	// Create inserts a complete property record. The caller provides all fields
	// including ID and timestamps. Returns the stored record.
	Create(ctx context.Context, p *model.Property) (*model.Property, error)

	// FindByID returns a property by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Property, error)

	// List returns every property matching the criteria, in store-native order.
	// An empty result is not an error.
	List(ctx context.Context, c Criteria) ([]model.Property, error)

	// UpdateFields merges the supplied fields over the stored record and returns
	// the result, or ErrNotFound. Keys must be drawn from UpdatableFields.
	UpdateFields(ctx context.Context, id string, fields Fields) (*model.Property, error)

	// Delete removes a property by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// Fields is a partial-update set keyed by the JSON field name.
type Fields map[string]any

// UpdatableFields enumerates the field names a partial update may carry.
// "id" and "createdAt" are deliberately absent: both are immutable.
var UpdatableFields = []string{
	"title", "price", "location", "bedrooms", "bathrooms", "area",
	"image", "type", "featured", "description", "updatedAt", "userId",
}
