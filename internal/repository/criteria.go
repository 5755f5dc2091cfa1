package repository

import (
	"strconv"
	"strings"

	"dreamdwell/internal/model"
)

// Criteria holds the optional list filters. A nil field imposes no constraint;
// supplied constraints are ANDed. The same value drives both the in-memory
// predicate (Matches) and the SQL translation in the postgres backing, and the
// two must select identical result sets for identical inputs.
type Criteria struct {
	Type        *string
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
	MaxBedrooms *int
	Location    *string
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Type == nil && c.MinPrice == nil && c.MaxPrice == nil &&
		c.MinBedrooms == nil && c.MaxBedrooms == nil && c.Location == nil
}

// Matches evaluates the criteria against a single property.
// Bounds are inclusive; location is a case-insensitive substring match.
func (c Criteria) Matches(p *model.Property) bool {
	if c.Type != nil && p.Type != *c.Type {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MaxBedrooms != nil && p.Bedrooms > *c.MaxBedrooms {
		return false
	}
	if c.Location != nil && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(*c.Location)) {
		return false
	}
	return true
}

// ParseCriteria builds a Criteria from raw query-string values, keyed by the
// public parameter names (type, minPrice, maxPrice, minBedrooms, maxBedrooms,
// location). Empty values impose no constraint. Numeric parameters that fail to
// parse are dropped rather than rejecting every record. Both transports feed
// their query parameters through here so filtering cannot drift between them.
func ParseCriteria(query map[string]string) Criteria {
	var c Criteria
	if v := query["type"]; v != "" {
		c.Type = &v
	}
	if v := query["location"]; v != "" {
		c.Location = &v
	}
	if f, ok := parseFloat(query["minPrice"]); ok {
		c.MinPrice = &f
	}
	if f, ok := parseFloat(query["maxPrice"]); ok {
		c.MaxPrice = &f
	}
	if n, ok := parseInt(query["minBedrooms"]); ok {
		c.MinBedrooms = &n
	}
	if n, ok := parseInt(query["maxBedrooms"]); ok {
		c.MaxBedrooms = &n
	}
	return c
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
