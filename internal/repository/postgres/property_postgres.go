package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
)

// PropertyPostgres is a PostgreSQL implementation of repository.PropertyRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PropertyPostgres struct {
	db *sql.DB
}

// NewPropertyPostgres creates a new PropertyPostgres repository.
func NewPropertyPostgres(db *sql.DB) *PropertyPostgres {
	return &PropertyPostgres{db: db}
}

var _ repository.PropertyRepository = (*PropertyPostgres)(nil)

const propertyColumns = `id, title, price, location, bedrooms, bathrooms, area, image, type, featured, description, created_at, updated_at, user_id`

// columnFor maps updatable JSON field names to their table columns.
var columnFor = map[string]string{
	"title":       "title",
	"price":       "price",
	"location":    "location",
	"bedrooms":    "bedrooms",
	"bathrooms":   "bathrooms",
	"area":        "area",
	"image":       "image",
	"type":        "type",
	"featured":    "featured",
	"description": "description",
	"updatedAt":   "updated_at",
	"userId":      "user_id",
}

func scanProperty(s interface{ Scan(...any) error }) (*model.Property, error) {
	var p model.Property
	err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.Location,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&p.Image,
		&p.Type,
		&p.Featured,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new property row and returns the stored record.
func (r *PropertyPostgres) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	q := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + propertyColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.Price,
		p.Location,
		p.Bedrooms,
		p.Bathrooms,
		p.Area,
		p.Image,
		p.Type,
		p.Featured,
		p.Description,
		p.CreatedAt,
		p.UpdatedAt,
		p.UserID,
	)
	return scanProperty(row)
}

// FindByID fetches a single property by its ID.
func (r *PropertyPostgres) FindByID(ctx context.Context, id string) (*model.Property, error) {
	q := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns every property matching the criteria, in creation order.
func (r *PropertyPostgres) List(ctx context.Context, c repository.Criteria) ([]model.Property, error) {
	where, args := buildWhere(c)
	q := `SELECT ` + propertyColumns + ` FROM properties` + where + ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// buildWhere translates criteria into a parameterized WHERE clause. The produced
// predicate must select the same rows Criteria.Matches accepts: inclusive bounds,
// exact type match, case-insensitive substring on location (ILIKE).
func buildWhere(c repository.Criteria) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if c.Type != nil {
		add("type = $%d", *c.Type)
	}
	if c.MinPrice != nil {
		add("price >= $%d", *c.MinPrice)
	}
	if c.MaxPrice != nil {
		add("price <= $%d", *c.MaxPrice)
	}
	if c.MinBedrooms != nil {
		add("bedrooms >= $%d", *c.MinBedrooms)
	}
	if c.MaxBedrooms != nil {
		add("bedrooms <= $%d", *c.MaxBedrooms)
	}
	if c.Location != nil {
		add("location ILIKE '%%' || $%d || '%%'", *c.Location)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdateFields applies a partial update and returns the resulting row.
// Unknown field names are ignored; the service controls the allowed set.
func (r *PropertyPostgres) UpdateFields(ctx context.Context, id string, fields repository.Fields) (*model.Property, error) {
	var sets []string
	var args []any
	for _, name := range repository.UpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", columnFor[name], len(args)))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(
		`UPDATE properties SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), propertyColumns,
	)
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a property by ID. A missing row is reported as ErrNotFound so
// both transports can render the same 404.
func (r *PropertyPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM properties WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
