package repository

import (
	"testing"

	"dreamdwell/internal/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int { return &n }

var fixture = model.Property{
	ID:       "fixture",
	Title:    "A",
	Price:    100000,
	Location: "Austin, TX",
	Bedrooms: 2,
	Type:     model.TypeSale,
}

func TestCriteria_Matches(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want bool
	}{
		{"no constraints", Criteria{}, true},
		{"type match", Criteria{Type: strPtr(model.TypeSale)}, true},
		{"type mismatch", Criteria{Type: strPtr(model.TypeRent)}, false},
		{"price within bounds", Criteria{MinPrice: floatPtr(50000), MaxPrice: floatPtr(150000)}, true},
		{"price at lower bound is inclusive", Criteria{MinPrice: floatPtr(100000)}, true},
		{"price at upper bound is inclusive", Criteria{MaxPrice: floatPtr(100000)}, true},
		{"price below min", Criteria{MinPrice: floatPtr(100001)}, false},
		{"price above max", Criteria{MaxPrice: floatPtr(99999)}, false},
		{"bedrooms within bounds", Criteria{MinBedrooms: intPtr(2), MaxBedrooms: intPtr(2)}, true},
		{"bedrooms below min", Criteria{MinBedrooms: intPtr(3)}, false},
		{"bedrooms above max", Criteria{MaxBedrooms: intPtr(1)}, false},
		{"location substring ignores case", Criteria{Location: strPtr("austin")}, true},
		{"location substring upper query", Criteria{Location: strPtr("AUSTIN")}, true},
		{"location no match", Criteria{Location: strPtr("boston")}, false},
		{"all criteria AND together", Criteria{
			Type:     strPtr(model.TypeSale),
			MinPrice: floatPtr(50000),
			MaxPrice: floatPtr(150000),
			Location: strPtr("tx"),
		}, true},
		{"one failing criterion rejects", Criteria{
			Type:        strPtr(model.TypeSale),
			MinBedrooms: intPtr(3),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fixture
			assert.Equal(t, tt.want, tt.c.Matches(&p))
		})
	}
}

func TestParseCriteria(t *testing.T) {
	t.Run("all parameters", func(t *testing.T) {
		c := ParseCriteria(map[string]string{
			"type":        "sale",
			"minPrice":    "50000",
			"maxPrice":    "150000",
			"minBedrooms": "1",
			"maxBedrooms": "3",
			"location":    "austin",
		})

		assert.Equal(t, "sale", *c.Type)
		assert.Equal(t, float64(50000), *c.MinPrice)
		assert.Equal(t, float64(150000), *c.MaxPrice)
		assert.Equal(t, 1, *c.MinBedrooms)
		assert.Equal(t, 3, *c.MaxBedrooms)
		assert.Equal(t, "austin", *c.Location)
	})

	t.Run("empty map has no constraints", func(t *testing.T) {
		c := ParseCriteria(map[string]string{})
		assert.True(t, c.IsZero())
	})

	t.Run("nil map has no constraints", func(t *testing.T) {
		c := ParseCriteria(nil)
		assert.True(t, c.IsZero())
	})

	t.Run("non-numeric numbers are dropped, not rejected", func(t *testing.T) {
		c := ParseCriteria(map[string]string{
			"minPrice":    "cheap",
			"maxBedrooms": "lots",
			"type":        "rent",
		})

		assert.Nil(t, c.MinPrice)
		assert.Nil(t, c.MaxBedrooms)
		assert.Equal(t, "rent", *c.Type)

		// A dropped constraint must not reject every record
		p := fixture
		assert.False(t, c.Matches(&p)) // only because of type
		c.Type = nil
		assert.True(t, c.Matches(&p))
	})

	t.Run("empty strings impose no constraint", func(t *testing.T) {
		c := ParseCriteria(map[string]string{"type": "", "minPrice": "", "location": ""})
		assert.True(t, c.IsZero())
	})
}
