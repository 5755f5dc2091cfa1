package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
	"dreamdwell/internal/service"
	svcmocks "dreamdwell/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func newTestApp(db *sql.DB, propSvc service.PropertyService, upSvc service.UploadService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, propSvc, upSvc)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func sampleProperty(id string) *model.Property {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.Property{
		ID:        id,
		Title:     "Modern Family Home",
		Price:     750000,
		Location:  "Beverly Hills, CA",
		Bedrooms:  4,
		Type:      model.TypeSale,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    "demo-user",
	}
}

func TestListProperties(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("List", mock.Anything, repository.Criteria{}).
			Return([]model.Property{*sampleProperty("1"), *sampleProperty("2")}, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/properties", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var items []model.Property
		decodeBody(t, resp, &items)
		assert.Len(t, items, 2)
		propSvc.AssertExpectations(t)
	})

	t.Run("query filters forwarded as criteria", func(t *testing.T) {
		want := repository.Criteria{
			Type:     strPtr("sale"),
			MinPrice: floatPtr(100000),
			Location: strPtr("austin"),
		}
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("List", mock.Anything, want).Return([]model.Property{}, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/properties?type=sale&minPrice=100000&location=austin", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		propSvc.AssertExpectations(t)
	})

	t.Run("unparseable numeric filter is ignored", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("List", mock.Anything, repository.Criteria{Type: strPtr("rent")}).
			Return([]model.Property{}, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/properties?type=rent&minPrice=abc", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		propSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/properties", nil)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var payload errorPayload
		decodeBody(t, resp, &payload)
		assert.Equal(t, "INTERNAL_ERROR", payload.Error.Code)
	})
}

func TestGetProperty(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		p := sampleProperty("p1")
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Get", mock.Anything, "p1").Return(p, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/properties/p1", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got model.Property
		decodeBody(t, resp, &got)
		assert.Equal(t, "p1", got.ID)
		assert.Equal(t, p.Title, got.Title)
	})

	t.Run("not found", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/properties/missing", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var payload errorPayload
		decodeBody(t, resp, &payload)
		assert.Equal(t, "NOT_FOUND", payload.Error.Code)
		assert.Equal(t, "property not found", payload.Error.Message)
	})
}

func TestCreateProperty(t *testing.T) {
	t.Run("created from partial body", func(t *testing.T) {
		p := sampleProperty("new-id")
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Create", mock.Anything, model.PropertyInput{Title: strPtr("Modern Family Home")}).
			Return(p, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodPost, "/properties", fiber.Map{"title": "Modern Family Home"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var got model.Property
		decodeBody(t, resp, &got)
		assert.Equal(t, "new-id", got.ID)
		propSvc.AssertExpectations(t)
	})

	t.Run("absent body creates with defaults", func(t *testing.T) {
		p := sampleProperty("new-id")
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Create", mock.Anything, model.PropertyInput{}).Return(p, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodPost, "/properties", nil)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		propSvc.AssertExpectations(t)
	})

	t.Run("malformed body treated as empty input", func(t *testing.T) {
		p := sampleProperty("new-id")
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Create", mock.Anything, model.PropertyInput{}).Return(p, nil)

		app := newTestApp(nil, propSvc, nil)
		req := httptest.NewRequest(fiber.MethodPost, "/properties", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		propSvc.AssertExpectations(t)
	})

	t.Run("invalid type", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidType)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodPost, "/properties", fiber.Map{"type": "lease"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var payload errorPayload
		decodeBody(t, resp, &payload)
		assert.Equal(t, "INVALID_TYPE", payload.Error.Code)
	})
}

func TestUpdateProperty(t *testing.T) {
	t.Run("fields forwarded", func(t *testing.T) {
		p := sampleProperty("p1")
		p.Price = 800000
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Update", mock.Anything, "p1", model.PropertyInput{Price: floatPtr(800000)}).
			Return(p, nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodPut, "/properties/p1", fiber.Map{"price": 800000})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got model.Property
		decodeBody(t, resp, &got)
		assert.Equal(t, float64(800000), got.Price)
		propSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, service.ErrNotFound)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodPut, "/properties/missing", fiber.Map{"price": 1})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid type", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Update", mock.Anything, "p1", mock.Anything).Return(nil, service.ErrInvalidType)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodPut, "/properties/p1", fiber.Map{"type": "lease"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteProperty(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Delete", mock.Anything, "p1").Return(nil)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodDelete, "/properties/p1", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Property deleted successfully", body["message"])
		assert.Equal(t, "p1", body["id"])
	})

	t.Run("not found", func(t *testing.T) {
		propSvc := new(svcmocks.MockPropertyService)
		propSvc.On("Delete", mock.Anything, "missing").Return(service.ErrNotFound)

		app := newTestApp(nil, propSvc, nil)
		resp := doJSON(t, app, fiber.MethodDelete, "/properties/missing", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestPresignUpload(t *testing.T) {
	t.Run("returns urls", func(t *testing.T) {
		upSvc := new(svcmocks.MockUploadService)
		upSvc.On("PresignUpload", mock.Anything, "house.jpg").Return(&service.UploadResult{
			UploadURL: "https://minio.local/bucket/images/abc.jpg?sig=x",
			ImageURL:  "https://minio.local/bucket/images/abc.jpg",
		}, nil)

		app := newTestApp(nil, nil, upSvc)
		resp := doJSON(t, app, fiber.MethodPost, "/upload", fiber.Map{"fileName": "house.jpg", "fileType": "image/jpeg"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var res service.UploadResult
		decodeBody(t, resp, &res)
		assert.Contains(t, res.UploadURL, "sig=")
		assert.NotEmpty(t, res.ImageURL)
		upSvc.AssertExpectations(t)
	})

	t.Run("missing file name", func(t *testing.T) {
		upSvc := new(svcmocks.MockUploadService)
		upSvc.On("PresignUpload", mock.Anything, "").Return(nil, service.ErrFileNameRequired)

		app := newTestApp(nil, nil, upSvc)
		resp := doJSON(t, app, fiber.MethodPost, "/upload", fiber.Map{})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var payload errorPayload
		decodeBody(t, resp, &payload)
		assert.Equal(t, "FILE_NAME_REQUIRED", payload.Error.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("memory store has no dependency", func(t *testing.T) {
		app := newTestApp(nil, nil, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/health", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("database ping ok", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dbMock.ExpectPing()

		app := newTestApp(db, nil, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/health", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("database ping fails", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))

		app := newTestApp(db, nil, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/health", nil)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("liveness", func(t *testing.T) {
		app := newTestApp(nil, nil, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/healthz", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRouting(t *testing.T) {
	t.Run("unknown path", func(t *testing.T) {
		app := newTestApp(nil, nil, nil)
		resp := doJSON(t, app, fiber.MethodGet, "/unknown", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var payload errorPayload
		decodeBody(t, resp, &payload)
		assert.Equal(t, "NOT_FOUND", payload.Error.Code)
	})

	t.Run("unsupported method on known path", func(t *testing.T) {
		app := newTestApp(nil, nil, nil)
		resp := doJSON(t, app, fiber.MethodPatch, "/properties/p1", nil)
		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

		var payload errorPayload
		decodeBody(t, resp, &payload)
		assert.Equal(t, "METHOD_NOT_ALLOWED", payload.Error.Code)
	})
}
