package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/service"
)

// Services groups the use-case layer dependencies the router needs.
type Services struct {
	Catalog     service.CatalogService
	Enrollments service.EnrollmentService
	Tracks      service.TrackService
	Reports     service.ReportService
	Media       service.MediaService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers stay
// minimal; business logic lives in the service layer. Everything except the
// probes is tenant scoped behind the org header middleware.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	org := middleware.OrgContext()

	app.Post("/courses", org, CreateCourse(svcs.Catalog))
	app.Get("/courses", org, ListCourses(svcs.Catalog))
	app.Get("/courses/:id", org, GetCourse(svcs.Catalog))
	app.Put("/courses/:id", org, UpdateCourse(svcs.Catalog))
	app.Delete("/courses/:id", org, DeleteCourse(svcs.Catalog))

	app.Post("/courses/:courseId/modules", org, CreateModule(svcs.Catalog))
	app.Get("/courses/:courseId/modules", org, ListModules(svcs.Catalog))
	app.Put("/modules/:id", org, UpdateModule(svcs.Catalog))
	app.Delete("/modules/:id", org, DeleteModule(svcs.Catalog))

	app.Post("/modules/:moduleId/lessons", org, CreateLesson(svcs.Catalog))
	app.Get("/modules/:moduleId/lessons", org, ListLessons(svcs.Catalog))
	app.Put("/lessons/:id", org, UpdateLesson(svcs.Catalog))
	app.Delete("/lessons/:id", org, DeleteLesson(svcs.Catalog))

	app.Post("/enrollments", org, CreateEnrollment(svcs.Enrollments))
	app.Get("/enrollments", org, ListEnrollments(svcs.Enrollments))
	app.Get("/enrollments/:id", org, GetEnrollment(svcs.Enrollments))
	app.Put("/enrollments/:id", org, UpdateEnrollment(svcs.Enrollments))
	app.Delete("/enrollments/:id", org, CancelEnrollment(svcs.Enrollments))

	app.Put("/tracking/courses", org, PutCourseTrack(svcs.Tracks))
	app.Put("/tracking/lessons", org, PutLessonTrack(svcs.Tracks))
	app.Post("/tracking/tests", org, SubmitTest(svcs.Tracks))

	app.Get("/reports/courses", org, CourseReport(svcs.Reports))
	app.Get("/reports/lessons", org, LessonReport(svcs.Reports))

	app.Post("/media", org, UploadMedia(svcs.Media))
	app.Get("/media/:id", org, GetMedia(svcs.Media))
	app.Get("/media/:id/download", org, DownloadMedia(svcs.Media))
	app.Delete("/media/:id", org, DeleteMedia(svcs.Media))
}
