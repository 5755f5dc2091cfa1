package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
)

var (
	ErrIDRequired  = errors.New("id is required")
	ErrNotFound    = errors.New("property not found")
	ErrInvalidType = errors.New(`type must be "sale" or "rent"`)
)

// Defaults applied to fields omitted on create.
const (
	DefaultTitle    = "Untitled Property"
	DefaultLocation = "Unknown Location"
	DefaultImageURL = "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=600&h=400&fit=crop"
	DefaultUserID   = "demo-user"
)

// PropertyService defines the use cases for handling property listings.
// Both transports (the HTTP server and the Lambda adapter) call this interface;
// status codes and response envelopes are rendered only by the transports.
type PropertyService interface {
	// List returns every stored property matching the criteria. An empty result
	// is not an error.
	List(ctx context.Context, c repository.Criteria) ([]model.Property, error)

	// Get returns a single property by its ID.
	Get(ctx context.Context, id string) (*model.Property, error)

	// Create persists a new property. Every input field is optional; omitted
	// fields receive defaults, the ID and both timestamps are stamped here.
	Create(ctx context.Context, in model.PropertyInput) (*model.Property, error)

	// Update merges the supplied fields over an existing property and refreshes
	// updatedAt. The ID and createdAt never change. Omitted fields keep their
	// stored values; defaults are not reapplied.
	Update(ctx context.Context, id string, in model.PropertyInput) (*model.Property, error)

	// Delete removes a property by ID. A missing ID is ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// propertyService is a concrete implementation of PropertyService.
type propertyService struct {
	repo repository.PropertyRepository
}

// NewPropertyService constructs a new PropertyService.
func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) List(ctx context.Context, c repository.Criteria) ([]model.Property, error) {
	return s.repo.List(ctx, c)
}

func (s *propertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *propertyService) Create(ctx context.Context, in model.PropertyInput) (*model.Property, error) {
	if err := validateType(in.Type); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Property{
		ID:          uuid.New().String(),
		Title:       stringOr(in.Title, DefaultTitle),
		Price:       floatOr(in.Price, 0),
		Location:    stringOr(in.Location, DefaultLocation),
		Bedrooms:    intOr(in.Bedrooms, 0),
		Bathrooms:   intOr(in.Bathrooms, 0),
		Area:        floatOr(in.Area, 0),
		Image:       stringOr(in.Image, DefaultImageURL),
		Type:        stringOr(in.Type, model.TypeSale),
		Featured:    boolOr(in.Featured, false),
		Description: stringOr(in.Description, ""),
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      stringOr(in.UserID, DefaultUserID),
	}

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return stored, nil
}

func (s *propertyService) Update(ctx context.Context, id string, in model.PropertyInput) (*model.Property, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateType(in.Type); err != nil {
		return nil, err
	}

	fields := repository.Fields{"updatedAt": time.Now().UTC()}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Bedrooms != nil {
		fields["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		fields["bathrooms"] = *in.Bathrooms
	}
	if in.Area != nil {
		fields["area"] = *in.Area
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.UserID != nil {
		fields["userId"] = *in.UserID
	}

	p, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *propertyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateType(t *string) error {
	if t == nil {
		return nil
	}
	if *t != model.TypeSale && *t != model.TypeRent {
		return ErrInvalidType
	}
	return nil
}

func stringOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
