package repository

import (
	"context"

	"lmsapi/internal/model"
)

// TrackRepository defines data access for per-user progress records.
// Upserts key on (org_id, user_id, course_id) for course tracks and
// (org_id, user_id, lesson_id) for lesson and test tracks.
type TrackRepository interface {
	UpsertCourseTrack(ctx context.Context, t *model.CourseTrack) (*model.CourseTrack, error)
	FindCourseTrack(ctx context.Context, orgID, userID, courseID string) (*model.CourseTrack, error)

	UpsertLessonTrack(ctx context.Context, t *model.LessonTrack) (*model.LessonTrack, error)
	FindLessonTrack(ctx context.Context, orgID, userID, lessonID string) (*model.LessonTrack, error)

	// CountCompletedLessons returns how many lessons of a course the user has completed.
	CountCompletedLessons(ctx context.Context, orgID, userID, courseID string) (int, error)

	UpsertTestTrack(ctx context.Context, t *model.TestTrack) (*model.TestTrack, error)
	FindTestTrack(ctx context.Context, orgID, userID, lessonID string) (*model.TestTrack, error)
}
