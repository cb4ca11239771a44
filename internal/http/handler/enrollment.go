package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

// CreateEnrollment handles POST /enrollments.
func CreateEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EnrollInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		e, err := svc.Enroll(c.UserContext(), middleware.OrgID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GetEnrollment handles GET /enrollments/:id.
func GetEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		e, err := svc.Get(c.UserContext(), middleware.OrgID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// ListEnrollments handles GET /enrollments with user/course/status filters.
func ListEnrollments(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, errs := validate.ParsePage(c.Query("limit"), c.Query("offset"), c.Query("page"))
		if errs != nil {
			return writeValidationError(c, errs)
		}
		f := service.EnrollmentFilterInput{
			UserID:   c.Query("userId"),
			CourseID: c.Query("courseId"),
			Status:   c.Query("status"),
		}
		page, err := svc.List(c.UserContext(), middleware.OrgID(c), f, pg)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// UpdateEnrollment handles PUT /enrollments/:id.
func UpdateEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.UpdateEnrollmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		e, err := svc.UpdateStatus(c.UserContext(), middleware.OrgID(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// CancelEnrollment handles DELETE /enrollments/:id. Cancellation is a status
// change; the record stays.
func CancelEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Cancel(c.UserContext(), middleware.OrgID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
