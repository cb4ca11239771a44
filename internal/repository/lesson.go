package repository

import (
	"context"

	"lmsapi/internal/model"
)

// LessonRepository defines data access for lessons.
type LessonRepository interface {
	Create(ctx context.Context, l *model.Lesson) (*model.Lesson, error)
	FindByID(ctx context.Context, orgID, id string) (*model.Lesson, error)

	// ListByModule returns the module's lessons ordered by position.
	ListByModule(ctx context.Context, orgID, moduleID string) ([]model.Lesson, error)

	// CountByCourse returns the number of lessons across all modules of a course.
	// Used when recomputing course completion percentages.
	CountByCourse(ctx context.Context, orgID, courseID string) (int, error)

	// CourseIDForLesson resolves the course a lesson belongs to through its
	// module. sql.ErrNoRows when the lesson does not exist.
	CourseIDForLesson(ctx context.Context, orgID, lessonID string) (string, error)

	Update(ctx context.Context, l *model.Lesson) (*model.Lesson, error)
	Delete(ctx context.Context, orgID, id string) error
}
