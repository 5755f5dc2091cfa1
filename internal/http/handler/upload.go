package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dreamdwell/internal/service"
)

// uploadRequest is the body of POST /upload. FileType is accepted for wire
// compatibility with older clients; the upload content type is set by the
// client on the presigned PUT itself.
type uploadRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// PresignUpload hands out a presigned image upload URL.
//
// @Summary Request an image upload URL
// @Tags upload
// @Param request body uploadRequest true "file name and type"
// @Success 200 {object} service.UploadResult
// @Failure 400 {object} errorPayload
// @Router /upload [post]
func PresignUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req uploadRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		res, err := svc.PresignUpload(c.UserContext(), req.FileName)
		if err != nil {
			if errors.Is(err, service.ErrFileNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "FILE_NAME_REQUIRED", "fileName is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
