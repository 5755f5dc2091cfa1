package memory

import (
	"context"
	"sync"
	"time"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
)

// PropertyMemory is an in-memory implementation of repository.PropertyRepository
// intended for local development and tests. Records are kept in insertion order.
// A RWMutex guards the slice: the backing is shared across request goroutines and
// lost updates under concurrent create/update/delete are not acceptable.
type PropertyMemory struct {
	mu    sync.RWMutex
	items []model.Property
}

// NewPropertyMemory creates an empty in-memory repository.
func NewPropertyMemory() *PropertyMemory {
	return &PropertyMemory{}
}

// NewSeeded creates an in-memory repository pre-populated with the demo listings,
// matching what the development server has always served out of the box.
func NewSeeded() *PropertyMemory {
	r := NewPropertyMemory()
	now := time.Now().UTC()
	for _, p := range seedProperties {
		p.CreatedAt = now
		p.UpdatedAt = now
		r.items = append(r.items, p)
	}
	return r
}

var _ repository.PropertyRepository = (*PropertyMemory)(nil)

// Create appends the record. IDs are assumed unique; the service generates them.
func (r *PropertyMemory) Create(_ context.Context, p *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *p)
	out := *p
	return &out, nil
}

// FindByID returns a copy of the record with the given ID.
func (r *PropertyMemory) FindByID(_ context.Context, id string) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List scans all records and returns those matching the criteria, in insertion order.
func (r *PropertyMemory) List(_ context.Context, c repository.Criteria) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Property, 0, len(r.items))
	for i := range r.items {
		if c.Matches(&r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

// UpdateFields merges the supplied fields over the stored record and returns the result.
func (r *PropertyMemory) UpdateFields(_ context.Context, id string, fields repository.Fields) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		applyFields(&r.items[i], fields)
		out := r.items[i]
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

// Delete removes the record with the given ID.
func (r *PropertyMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func applyFields(p *model.Property, fields repository.Fields) {
	for key, v := range fields {
		switch key {
		case "title":
			p.Title, _ = v.(string)
		case "price":
			p.Price, _ = v.(float64)
		case "location":
			p.Location, _ = v.(string)
		case "bedrooms":
			p.Bedrooms, _ = v.(int)
		case "bathrooms":
			p.Bathrooms, _ = v.(int)
		case "area":
			p.Area, _ = v.(float64)
		case "image":
			p.Image, _ = v.(string)
		case "type":
			p.Type, _ = v.(string)
		case "featured":
			p.Featured, _ = v.(bool)
		case "description":
			p.Description, _ = v.(string)
		case "updatedAt":
			p.UpdatedAt, _ = v.(time.Time)
		case "userId":
			p.UserID, _ = v.(string)
		}
	}
}
