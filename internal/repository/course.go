package repository

import (
	"context"

	"lmsapi/internal/model"
)

// CourseFilter narrows course list queries.
type CourseFilter struct {
	Status model.CourseStatus
}

// CourseRepository defines data access for courses using SQL queries only.
// No business logic here — strictly persistence operations.
type CourseRepository interface {
	// Create inserts a new course row. Returns the stored course.
	Create(ctx context.Context, c *model.Course) (*model.Course, error)

	// FindByID returns a course by ID within the organization.
	FindByID(ctx context.Context, orgID, id string) (*model.Course, error)

	// AliasExists reports whether an alias is already used within the organization.
	AliasExists(ctx context.Context, orgID, alias string) (bool, error)

	// List returns a paginated list of courses and the total row count for the filter.
	List(ctx context.Context, orgID string, f CourseFilter, pq PageQuery) (*PageResult[model.Course], error)

	// Update persists mutable course fields. Returns the stored course.
	Update(ctx context.Context, c *model.Course) (*model.Course, error)

	// Delete removes a course by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, orgID, id string) error
}
