package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/model"
	"lmsapi/internal/service"
	serviceMocks "lmsapi/internal/service/mocks"
	"lmsapi/internal/validate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOrgID = "6f1f8c1e-6d3a-4c3b-9a52-0f4f7a1b2c3d"

func orgRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(middleware.OrgIDHeader, testOrgID)
	return req
}

func jsonRequest(method, target string, payload any) *http.Request {
	b, _ := json.Marshal(payload)
	req := orgRequest(method, target, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListCourses(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/courses", middleware.OrgContext(), ListCourses(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.Page[model.Course]{
			Data:          []model.Course{{ID: uuid.New().String(), Title: "Intro to Go"}},
			TotalElements: 1,
			Offset:        0,
			Limit:         10,
		}
		mockSvc.On("ListCourses", mock.Anything, testOrgID, "", validate.Page{Limit: 10, Skip: 0}).
			Return(expected, nil).Once()

		resp, _ := app.Test(orgRequest(http.MethodGet, "/courses", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.Page[model.Course]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, 1, result.TotalElements)
		mockSvc.AssertExpectations(t)
	})

	t.Run("page resolves to offset", func(t *testing.T) {
		expected := &service.Page[model.Course]{Data: []model.Course{}, TotalElements: 0, Offset: 10, Limit: 5}
		mockSvc.On("ListCourses", mock.Anything, testOrgID, "", validate.Page{Limit: 5, Skip: 10}).
			Return(expected, nil).Once()

		resp, _ := app.Test(orgRequest(http.MethodGet, "/courses?limit=5&page=3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(orgRequest(http.MethodGet, "/courses?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Details, "limit")
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListCourses", mock.Anything, testOrgID, "", validate.Page{Limit: 10, Skip: 0}).
			Return(nil, errors.New("service error")).Once()

		resp, _ := app.Test(orgRequest(http.MethodGet, "/courses", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateCourse(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Post("/courses", middleware.OrgContext(), CreateCourse(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.CreateCourseInput{Title: "Intro to Go"}
		expected := &model.Course{ID: uuid.New().String(), Title: "Intro to Go", Alias: "intro-to-go"}
		mockSvc.On("CreateCourse", mock.Anything, testOrgID, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/courses", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Course
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "intro-to-go", result.Alias)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error carries details", func(t *testing.T) {
		in := service.CreateCourseInput{}
		mockSvc.On("CreateCourse", mock.Anything, testOrgID, in).
			Return(nil, validate.FieldErrors{"title": "is required"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/courses", in))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "is required", body.Error.Details["title"])
		mockSvc.AssertExpectations(t)
	})
}

func TestOrgHeaderRequired(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/courses", middleware.OrgContext(), ListCourses(mockSvc))

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/courses", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/courses", nil)
		req.Header.Set(middleware.OrgIDHeader, "not-a-uuid")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateEnrollment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnrollmentService)
	app := fiber.New()
	app.Post("/enrollments", middleware.OrgContext(), CreateEnrollment(mockSvc))

	userID := uuid.New().String()
	courseID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		in := service.EnrollInput{UserID: userID, CourseID: courseID}
		expected := &model.Enrollment{ID: uuid.New().String(), UserID: userID, CourseID: courseID, Status: model.EnrollmentStatusActive}
		mockSvc.On("Enroll", mock.Anything, testOrgID, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/enrollments", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate active enrollment", func(t *testing.T) {
		in := service.EnrollInput{UserID: userID, CourseID: courseID}
		mockSvc.On("Enroll", mock.Anything, testOrgID, in).Return(nil, service.ErrAlreadyEnrolled).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/enrollments", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ALREADY_ENROLLED", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("inactive course", func(t *testing.T) {
		in := service.EnrollInput{UserID: userID, CourseID: courseID}
		mockSvc.On("Enroll", mock.Anything, testOrgID, in).Return(nil, service.ErrCourseNotActive).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/enrollments", in))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCancelEnrollment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnrollmentService)
	app := fiber.New()
	app.Delete("/enrollments/:id", middleware.OrgContext(), CancelEnrollment(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Cancel", mock.Anything, testOrgID, id).Return(nil).Once()

		resp, _ := app.Test(orgRequest(http.MethodDelete, "/enrollments/"+id, nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already cancelled", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Cancel", mock.Anything, testOrgID, id).Return(service.ErrInvalidTransition).Once()

		resp, _ := app.Test(orgRequest(http.MethodDelete, "/enrollments/"+id, nil))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(orgRequest(http.MethodDelete, "/enrollments/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestPutCourseTrack(t *testing.T) {
	mockSvc := new(serviceMocks.MockTrackService)
	app := fiber.New()
	app.Put("/tracking/courses", middleware.OrgContext(), PutCourseTrack(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.CourseTrackInput{
			UserID:   uuid.New().String(),
			CourseID: uuid.New().String(),
			Status:   "in_progress",
		}
		expected := &model.CourseTrack{ID: uuid.New().String(), Status: model.TrackStatusInProgress, CompletionPercent: 50}
		mockSvc.On("UpdateCourseTrack", mock.Anything, testOrgID, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/tracking/courses", in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.CourseTrack
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 50, result.CompletionPercent)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := orgRequest(http.MethodPut, "/tracking/courses", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})
}

func TestSubmitTest(t *testing.T) {
	mockSvc := new(serviceMocks.MockTrackService)
	app := fiber.New()
	app.Post("/tracking/tests", middleware.OrgContext(), SubmitTest(mockSvc))

	t.Run("resubmission blocked", func(t *testing.T) {
		in := service.TestSubmitInput{
			UserID:   uuid.New().String(),
			LessonID: uuid.New().String(),
			Score:    8,
			MaxScore: 10,
		}
		mockSvc.On("SubmitTest", mock.Anything, testOrgID, in).
			Return(nil, service.ErrResubmissionNotAllowed).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/tracking/tests", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "RESUBMISSION_NOT_ALLOWED", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadMedia(t *testing.T) {
	mockSvc := new(serviceMocks.MockMediaService)
	app := fiber.New()
	app.Post("/media", middleware.OrgContext(), UploadMedia(mockSvc))

	entityID := uuid.New().String()

	multipartBody := func(category, entity string) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "lecture.pdf")
		part.Write([]byte("pdf bytes"))
		writer.WriteField("category", category)
		writer.WriteField("entityId", entity)
		writer.Close()
		return body, writer.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody("lesson", entityID)

		expected := &model.Media{ID: uuid.New().String(), Category: model.MediaCategoryLesson}
		mockSvc.On("Upload", mock.Anything, testOrgID, model.MediaCategoryLesson, entityID,
			"lecture.pdf", mock.Anything, mock.Anything, mock.Anything).Return(expected, nil).Once()

		req := orgRequest(http.MethodPost, "/media", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(orgRequest(http.MethodPost, "/media", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "FILE_REQUIRED", body.Error.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		body, ct := multipartBody("avatar", entityID)

		req := orgRequest(http.MethodPost, "/media", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_CATEGORY", res.Error.Code)
	})

	t.Run("file too large", func(t *testing.T) {
		body, ct := multipartBody("lesson", entityID)

		mockSvc.On("Upload", mock.Anything, testOrgID, model.MediaCategoryLesson, entityID,
			"lecture.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrFileTooLarge).Once()

		req := orgRequest(http.MethodPost, "/media", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no policy for category", func(t *testing.T) {
		body, ct := multipartBody("lesson", entityID)

		mockSvc.On("Upload", mock.Anything, testOrgID, model.MediaCategoryLesson, entityID,
			"lecture.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrUploadPolicyMissing).Once()

		req := orgRequest(http.MethodPost, "/media", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "UPLOAD_POLICY_MISSING", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteMedia(t *testing.T) {
	mockSvc := new(serviceMocks.MockMediaService)
	app := fiber.New()
	app.Delete("/media/:id", middleware.OrgContext(), DeleteMedia(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, testOrgID, id).Return(nil).Once()

		resp, _ := app.Test(orgRequest(http.MethodDelete, "/media/"+id, nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("cloud backend unsupported", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, testOrgID, id).
			Return(service.ErrCloudDeleteNotImplemented).Once()

		resp, _ := app.Test(orgRequest(http.MethodDelete, "/media/"+id, nil))

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_IMPLEMENTED", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil, Services{
		Catalog:     new(serviceMocks.MockCatalogService),
		Enrollments: new(serviceMocks.MockEnrollmentService),
		Tracks:      new(serviceMocks.MockTrackService),
		Reports:     new(serviceMocks.MockReportService),
		Media:       new(serviceMocks.MockMediaService),
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}

func TestErrorHandlerClientErrors(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	app.Post("/too-big", func(c *fiber.Ctx) error {
		return fiber.ErrRequestEntityTooLarge
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "upstream details")
	})

	t.Run("other 4xx keeps status and message", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/too-big", nil))

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "ERROR", res.Error.Code)
		assert.NotEmpty(t, res.Error.Message)
	})

	t.Run("5xx is masked", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.Equal(t, "internal server error", res.Error.Message)
	})
}
