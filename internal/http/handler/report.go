package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

// reportFilterFromQuery parses the shared report filter parameters.
// from and to are RFC 3339 timestamps.
func reportFilterFromQuery(c *fiber.Ctx) (service.ReportFilterInput, validate.FieldErrors) {
	f := service.ReportFilterInput{
		CourseID: c.Query("courseId"),
		Status:   c.Query("status"),
	}
	errs := validate.FieldErrors{}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			errs["from"] = "must be an RFC 3339 timestamp"
		} else {
			f.From = &t
		}
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			errs["to"] = "must be an RFC 3339 timestamp"
		} else {
			f.To = &t
		}
	}
	if len(errs) > 0 {
		return service.ReportFilterInput{}, errs
	}
	return f, nil
}

// CourseReport handles GET /reports/courses.
func CourseReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, errs := validate.ParsePage(c.Query("limit"), c.Query("offset"), c.Query("page"))
		if errs != nil {
			return writeValidationError(c, errs)
		}
		f, errs := reportFilterFromQuery(c)
		if errs != nil {
			return writeValidationError(c, errs)
		}
		page, err := svc.CourseReport(c.UserContext(), middleware.OrgID(c), f, pg)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// LessonReport handles GET /reports/lessons.
func LessonReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, errs := validate.ParsePage(c.Query("limit"), c.Query("offset"), c.Query("page"))
		if errs != nil {
			return writeValidationError(c, errs)
		}
		f, errs := reportFilterFromQuery(c)
		if errs != nil {
			return writeValidationError(c, errs)
		}
		page, err := svc.LessonReport(c.UserContext(), middleware.OrgID(c), f, pg)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}
