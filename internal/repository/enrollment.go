package repository

import (
	"context"

	"lmsapi/internal/model"
)

// EnrollmentFilter narrows enrollment list queries.
type EnrollmentFilter struct {
	UserID   string
	CourseID string
	Status   model.EnrollmentStatus
}

// EnrollmentRepository defines data access for enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error)
	FindByID(ctx context.Context, orgID, id string) (*model.Enrollment, error)

	// FindActive returns the active enrollment for a (user, course) pair,
	// or sql.ErrNoRows when none exists.
	FindActive(ctx context.Context, orgID, userID, courseID string) (*model.Enrollment, error)

	List(ctx context.Context, orgID string, f EnrollmentFilter, pq PageQuery) (*PageResult[model.Enrollment], error)

	// Update persists status and cancellation timestamp changes.
	Update(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error)
}
