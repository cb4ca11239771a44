package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/model"
	"lmsapi/internal/service"
)

// UploadMedia handles POST /media (multipart/form-data).
// Form fields: file, category, entityId.
func UploadMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		category := model.MediaCategory(c.FormValue("category"))
		if !model.ValidMediaCategory(category) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", "unknown media category")
		}
		entityID := c.FormValue("entityId")
		if _, err := uuid.Parse(entityID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ENTITY_ID", "entityId must be a UUID")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		m, err := svc.Upload(c.UserContext(), middleware.OrgID(c), category, entityID, fh.Filename, ct, fh.Size, f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// GetMedia handles GET /media/:id.
func GetMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), middleware.OrgID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(m)
	}
}

// DownloadMedia handles GET /media/:id/download and redirects to the object's
// URL; cloud URLs are presigned and time limited.
func DownloadMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), middleware.OrgID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(url, fiber.StatusTemporaryRedirect)
	}
}

// DeleteMedia handles DELETE /media/:id. Cloud-backed media returns 501.
func DeleteMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), middleware.OrgID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
