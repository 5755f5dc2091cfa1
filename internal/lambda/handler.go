package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
	"dreamdwell/internal/service"
)

// corsHeaders are attached to every response, including errors and preflight.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,Authorization",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	"Content-Type":                 "application/json",
}

// Handler is the one-shot transport: it maps a single API Gateway proxy event
// onto the same services the HTTP server uses, with identical status codes and
// the same error envelope.
type Handler struct {
	properties service.PropertyService
	uploads    service.UploadService
}

// NewHandler constructs a Handler around the shared services.
func NewHandler(properties service.PropertyService, uploads service.UploadService) *Handler {
	return &Handler{properties: properties, uploads: uploads}
}

type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Handle processes one API Gateway proxy event.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == http.MethodOptions {
		return respond(http.StatusOK, map[string]string{"message": "CORS preflight"})
	}

	if event.Path == "/upload" {
		if event.HTTPMethod != http.MethodPost {
			return errorResponse(ctx, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		}
		return h.presignUpload(ctx, event)
	}

	id := event.PathParameters["id"]

	switch event.HTTPMethod {
	case http.MethodGet:
		if id != "" {
			return h.getProperty(ctx, id)
		}
		return h.listProperties(ctx, event.QueryStringParameters)
	case http.MethodPost:
		return h.createProperty(ctx, event)
	case http.MethodPut:
		if id == "" {
			return errorResponse(ctx, http.StatusBadRequest, "BAD_REQUEST", "property ID is required for update")
		}
		return h.updateProperty(ctx, id, event)
	case http.MethodDelete:
		if id == "" {
			return errorResponse(ctx, http.StatusBadRequest, "BAD_REQUEST", "property ID is required for deletion")
		}
		return h.deleteProperty(ctx, id)
	default:
		return errorResponse(ctx, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	}
}

func (h *Handler) listProperties(ctx context.Context, query map[string]string) (events.APIGatewayProxyResponse, error) {
	items, err := h.properties.List(ctx, repository.ParseCriteria(query))
	if err != nil {
		return serviceError(ctx, err)
	}
	return respond(http.StatusOK, items)
}

func (h *Handler) getProperty(ctx context.Context, id string) (events.APIGatewayProxyResponse, error) {
	p, err := h.properties.Get(ctx, id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return respond(http.StatusOK, p)
}

func (h *Handler) createProperty(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	p, err := h.properties.Create(ctx, parseInput(event))
	if err != nil {
		return serviceError(ctx, err)
	}
	return respond(http.StatusCreated, p)
}

func (h *Handler) updateProperty(ctx context.Context, id string, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	p, err := h.properties.Update(ctx, id, parseInput(event))
	if err != nil {
		return serviceError(ctx, err)
	}
	return respond(http.StatusOK, p)
}

func (h *Handler) deleteProperty(ctx context.Context, id string) (events.APIGatewayProxyResponse, error) {
	if err := h.properties.Delete(ctx, id); err != nil {
		return serviceError(ctx, err)
	}
	return respond(http.StatusOK, map[string]string{
		"message": "Property deleted successfully",
		"id":      id,
	})
}

func (h *Handler) presignUpload(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	_ = json.Unmarshal(rawBody(event), &req)

	res, err := h.uploads.PresignUpload(ctx, req.FileName)
	if err != nil {
		if errors.Is(err, service.ErrFileNameRequired) {
			return errorResponse(ctx, http.StatusBadRequest, "FILE_NAME_REQUIRED", "fileName is required")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	return respond(http.StatusOK, res)
}

// parseInput decodes the event body into a partial property. An absent or
// malformed body becomes an empty input, mirroring the HTTP transport.
func parseInput(event events.APIGatewayProxyRequest) model.PropertyInput {
	var in model.PropertyInput
	if err := json.Unmarshal(rawBody(event), &in); err != nil {
		return model.PropertyInput{}
	}
	return in
}

func rawBody(event events.APIGatewayProxyRequest) []byte {
	if event.Body == "" {
		return []byte("{}")
	}
	if event.IsBase64Encoded {
		if b, err := base64.StdEncoding.DecodeString(event.Body); err == nil {
			return b
		}
		return []byte("{}")
	}
	return []byte(event.Body)
}

// serviceError maps service sentinels onto the unified status codes.
func serviceError(ctx context.Context, err error) (events.APIGatewayProxyResponse, error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return errorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "property not found")
	case errors.Is(err, service.ErrInvalidType):
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_TYPE", err.Error())
	case errors.Is(err, service.ErrIDRequired):
		return errorResponse(ctx, http.StatusBadRequest, "BAD_REQUEST", "id is required")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func respond(status int, body any) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders,
			Body:       `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`,
		}, nil
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(b),
	}, nil
}

func errorResponse(ctx context.Context, status int, code, message string) (events.APIGatewayProxyResponse, error) {
	rid := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		rid = lc.AwsRequestID
	}
	return respond(status, errorPayload{
		RequestID: rid,
		Error:     errorEnvelope{Code: code, Message: message},
	})
}
