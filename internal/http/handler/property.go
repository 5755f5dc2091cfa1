package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
	"dreamdwell/internal/service"
)

// ListProperties returns all properties matching the optional query filters.
//
// @Summary List properties
// @Tags properties
// @Param type query string false "listing type (sale|rent)"
// @Param minPrice query number false "inclusive lower price bound"
// @Param maxPrice query number false "inclusive upper price bound"
// @Param minBedrooms query int false "inclusive lower bedroom bound"
// @Param maxBedrooms query int false "inclusive upper bedroom bound"
// @Param location query string false "case-insensitive location substring"
// @Success 200 {array} model.Property
// @Router /properties [get]
func ListProperties(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Unparseable numeric filters are dropped by ParseCriteria, never a 400:
		// a bad minPrice means "no price constraint", matching the historical API.
		crit := repository.ParseCriteria(c.Queries())

		items, err := svc.List(c.UserContext(), crit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// GetProperty returns a single property by ID.
//
// @Summary Get a property
// @Tags properties
// @Param id path string true "property id"
// @Success 200 {object} model.Property
// @Failure 404 {object} errorPayload
// @Router /properties/{id} [get]
func GetProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "property not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// CreateProperty stores a new property built from the (entirely optional) body fields.
//
// @Summary Create a property
// @Tags properties
// @Param property body model.PropertyInput false "partial property"
// @Success 201 {object} model.Property
// @Failure 400 {object} errorPayload
// @Router /properties [post]
func CreateProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := parseInput(c)

		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidType) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProperty merges the supplied body fields over an existing property.
//
// @Summary Update a property
// @Tags properties
// @Param id path string true "property id"
// @Param property body model.PropertyInput false "fields to change"
// @Success 200 {object} model.Property
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /properties/{id} [put]
func UpdateProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := parseInput(c)

		p, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "property not found")
			case errors.Is(err, service.ErrInvalidType):
				return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(p)
	}
}

// DeleteProperty removes a property and confirms the deleted ID.
//
// @Summary Delete a property
// @Tags properties
// @Param id path string true "property id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /properties/{id} [delete]
func DeleteProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "property not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"message": "Property deleted successfully",
			"id":      id,
		})
	}
}

// parseInput decodes the request body into a partial property. An absent or
// malformed body is treated as an empty input, not a client error; every field
// is optional and the service applies defaults.
func parseInput(c *fiber.Ctx) model.PropertyInput {
	var in model.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return model.PropertyInput{}
	}
	return in
}
