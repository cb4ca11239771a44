package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lmsapi/internal/http/middleware"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeValidationError renders per-field messages under error.details.
func writeValidationError(c *fiber.Ctx, errs validate.FieldErrors) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "request validation failed",
			Details: errs,
		},
	}
	return c.Status(fiber.StatusBadRequest).JSON(res)
}

// writeServiceError maps service sentinel errors to HTTP responses. Anything
// unrecognized becomes an opaque 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var fieldErrs validate.FieldErrors
	if errors.As(err, &fieldErrs) {
		return writeValidationError(c, fieldErrs)
	}

	switch {
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrMediaNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return writeError(c, fiber.StatusConflict, "ALREADY_ENROLLED", err.Error())
	case errors.Is(err, service.ErrCourseNotActive):
		return writeError(c, fiber.StatusUnprocessableEntity, "COURSE_NOT_ACTIVE", err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return writeError(c, fiber.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, service.ErrResubmissionNotAllowed):
		return writeError(c, fiber.StatusConflict, "RESUBMISSION_NOT_ALLOWED", err.Error())
	case errors.Is(err, service.ErrUploadPolicyMissing):
		return writeError(c, fiber.StatusUnprocessableEntity, "UPLOAD_POLICY_MISSING", err.Error())
	case errors.Is(err, service.ErrSizePolicyMissing):
		return writeError(c, fiber.StatusUnprocessableEntity, "SIZE_POLICY_MISSING", err.Error())
	case errors.Is(err, service.ErrMimePolicyMissing):
		return writeError(c, fiber.StatusUnprocessableEntity, "MIME_POLICY_MISSING", err.Error())
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, service.ErrMimeNotAllowed):
		return writeError(c, fiber.StatusUnsupportedMediaType, "MIME_NOT_ALLOWED", err.Error())
	case errors.Is(err, service.ErrInvalidCategory):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", err.Error())
	case errors.Is(err, service.ErrCloudDeleteNotImplemented):
		return writeError(c, fiber.StatusNotImplemented, "NOT_IMPLEMENTED", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			if message == "" {
				message = "bad request"
			}
			return writeError(c, status, "BAD_REQUEST", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			// Other client errors (413 from the body limit, 408, ...) keep
			// their message; only server errors are masked.
			if status >= 400 && status < 500 {
				if message == "" {
					message = "request failed"
				}
				return writeError(c, status, "ERROR", message)
			}
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
