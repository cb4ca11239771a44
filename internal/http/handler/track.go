package handler

import (
	"github.com/gofiber/fiber/v2"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/service"
)

// PutCourseTrack handles PUT /tracking/courses. The service upserts, so the
// same request works for first writes and updates.
func PutCourseTrack(svc service.TrackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CourseTrackInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		t, err := svc.UpdateCourseTrack(c.UserContext(), middleware.OrgID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

// PutLessonTrack handles PUT /tracking/lessons.
func PutLessonTrack(svc service.TrackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LessonTrackInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		t, err := svc.UpdateLessonTrack(c.UserContext(), middleware.OrgID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

// SubmitTest handles POST /tracking/tests.
func SubmitTest(svc service.TrackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.TestSubmitInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		t, err := svc.SubmitTest(c.UserContext(), middleware.OrgID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}
