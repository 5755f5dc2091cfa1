package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"dreamdwell/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers stay
// thin: parsing and status codes here, behavior in the services. db may be nil
// when the in-memory store is selected.
func RegisterRoutes(app *fiber.App, db *sql.DB, propSvc service.PropertyService, upSvc service.UploadService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/properties", ListProperties(propSvc))
	app.Post("/properties", CreateProperty(propSvc))
	app.Get("/properties/:id", GetProperty(propSvc))
	app.Put("/properties/:id", UpdateProperty(propSvc))
	app.Delete("/properties/:id", DeleteProperty(propSvc))

	app.Post("/upload", PresignUpload(upSvc))
}
