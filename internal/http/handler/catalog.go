package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

// CreateCourse handles POST /courses.
func CreateCourse(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateCourseInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		course, err := svc.CreateCourse(c.UserContext(), middleware.OrgID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(course)
	}
}

// GetCourse handles GET /courses/:id.
func GetCourse(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		course, err := svc.GetCourse(c.UserContext(), middleware.OrgID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(course)
	}
}

// ListCourses handles GET /courses with limit/offset/page and status filters.
func ListCourses(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, errs := validate.ParsePage(c.Query("limit"), c.Query("offset"), c.Query("page"))
		if errs != nil {
			return writeValidationError(c, errs)
		}
		page, err := svc.ListCourses(c.UserContext(), middleware.OrgID(c), c.Query("status"), pg)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// UpdateCourse handles PUT /courses/:id.
func UpdateCourse(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.UpdateCourseInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		course, err := svc.UpdateCourse(c.UserContext(), middleware.OrgID(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(course)
	}
}

// DeleteCourse handles DELETE /courses/:id.
func DeleteCourse(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteCourse(c.UserContext(), middleware.OrgID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CreateModule handles POST /courses/:courseId/modules.
func CreateModule(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Params("courseId")
		if _, err := uuid.Parse(courseID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.CreateModuleInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		m, err := svc.CreateModule(c.UserContext(), middleware.OrgID(c), courseID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// ListModules handles GET /courses/:courseId/modules.
func ListModules(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Params("courseId")
		if _, err := uuid.Parse(courseID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		items, err := svc.ListModules(c.UserContext(), middleware.OrgID(c), courseID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// UpdateModule handles PUT /modules/:id.
func UpdateModule(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.CreateModuleInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		m, err := svc.UpdateModule(c.UserContext(), middleware.OrgID(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(m)
	}
}

// DeleteModule handles DELETE /modules/:id.
func DeleteModule(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteModule(c.UserContext(), middleware.OrgID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CreateLesson handles POST /modules/:moduleId/lessons.
func CreateLesson(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID := c.Params("moduleId")
		if _, err := uuid.Parse(moduleID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.CreateLessonInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		l, err := svc.CreateLesson(c.UserContext(), middleware.OrgID(c), moduleID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(l)
	}
}

// ListLessons handles GET /modules/:moduleId/lessons.
func ListLessons(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID := c.Params("moduleId")
		if _, err := uuid.Parse(moduleID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		items, err := svc.ListLessons(c.UserContext(), middleware.OrgID(c), moduleID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// UpdateLesson handles PUT /lessons/:id.
func UpdateLesson(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.UpdateLessonInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		l, err := svc.UpdateLesson(c.UserContext(), middleware.OrgID(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(l)
	}
}

// DeleteLesson handles DELETE /lessons/:id.
func DeleteLesson(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteLesson(c.UserContext(), middleware.OrgID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
