package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// TrackPostgres is a PostgreSQL implementation of repository.TrackRepository.
// Upserts use ON CONFLICT against the per-user unique keys so a tracking PUT
// is a single round trip.
type TrackPostgres struct {
	db *sql.DB
}

// NewTrackPostgres creates a new TrackPostgres repository.
func NewTrackPostgres(db *sql.DB) *TrackPostgres {
	return &TrackPostgres{db: db}
}

var _ repository.TrackRepository = (*TrackPostgres)(nil)

const courseTrackColumns = `id, org_id, user_id, course_id, status, started_at, completed_at, lessons_completed, total_lessons, completion_percent, certificate_issued, certificate_date, updated_at`

func scanCourseTrack(row interface{ Scan(...any) error }) (*model.CourseTrack, error) {
	var t model.CourseTrack
	if err := row.Scan(
		&t.ID,
		&t.OrgID,
		&t.UserID,
		&t.CourseID,
		&t.Status,
		&t.StartedAt,
		&t.CompletedAt,
		&t.LessonsCompleted,
		&t.TotalLessons,
		&t.CompletionPercent,
		&t.CertificateIssued,
		&t.CertificateDate,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertCourseTrack inserts or updates the (org, user, course) progress row.
func (r *TrackPostgres) UpsertCourseTrack(ctx context.Context, t *model.CourseTrack) (*model.CourseTrack, error) {
	const q = `
		INSERT INTO course_tracks (id, org_id, user_id, course_id, status, started_at, completed_at, lessons_completed, total_lessons, completion_percent, certificate_issued, certificate_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (org_id, user_id, course_id) DO UPDATE SET
			status = EXCLUDED.status,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at,
			lessons_completed = EXCLUDED.lessons_completed,
			total_lessons = EXCLUDED.total_lessons,
			completion_percent = EXCLUDED.completion_percent,
			certificate_issued = EXCLUDED.certificate_issued,
			certificate_date = EXCLUDED.certificate_date,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + courseTrackColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		t.OrgID,
		t.UserID,
		t.CourseID,
		t.Status,
		t.StartedAt,
		t.CompletedAt,
		t.LessonsCompleted,
		t.TotalLessons,
		t.CompletionPercent,
		t.CertificateIssued,
		t.CertificateDate,
		t.UpdatedAt,
	)
	return scanCourseTrack(row)
}

// FindCourseTrack fetches the progress row for a (user, course) pair.
func (r *TrackPostgres) FindCourseTrack(ctx context.Context, orgID, userID, courseID string) (*model.CourseTrack, error) {
	const q = `
		SELECT ` + courseTrackColumns + `
		FROM course_tracks
		WHERE org_id = $1 AND user_id = $2 AND course_id = $3
	`
	return scanCourseTrack(r.db.QueryRowContext(ctx, q, orgID, userID, courseID))
}

const lessonTrackColumns = `id, org_id, user_id, course_id, lesson_id, status, completed_at, time_spent_seconds, updated_at`

func scanLessonTrack(row interface{ Scan(...any) error }) (*model.LessonTrack, error) {
	var t model.LessonTrack
	if err := row.Scan(
		&t.ID,
		&t.OrgID,
		&t.UserID,
		&t.CourseID,
		&t.LessonID,
		&t.Status,
		&t.CompletedAt,
		&t.TimeSpentSeconds,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertLessonTrack inserts or updates the (org, user, lesson) progress row.
func (r *TrackPostgres) UpsertLessonTrack(ctx context.Context, t *model.LessonTrack) (*model.LessonTrack, error) {
	const q = `
		INSERT INTO lesson_tracks (id, org_id, user_id, course_id, lesson_id, status, completed_at, time_spent_seconds, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (org_id, user_id, lesson_id) DO UPDATE SET
			status = EXCLUDED.status,
			completed_at = EXCLUDED.completed_at,
			time_spent_seconds = EXCLUDED.time_spent_seconds,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + lessonTrackColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		t.OrgID,
		t.UserID,
		t.CourseID,
		t.LessonID,
		t.Status,
		t.CompletedAt,
		t.TimeSpentSeconds,
		t.UpdatedAt,
	)
	return scanLessonTrack(row)
}

// FindLessonTrack fetches the progress row for a (user, lesson) pair.
func (r *TrackPostgres) FindLessonTrack(ctx context.Context, orgID, userID, lessonID string) (*model.LessonTrack, error) {
	const q = `
		SELECT ` + lessonTrackColumns + `
		FROM lesson_tracks
		WHERE org_id = $1 AND user_id = $2 AND lesson_id = $3
	`
	return scanLessonTrack(r.db.QueryRowContext(ctx, q, orgID, userID, lessonID))
}

// CountCompletedLessons counts a user's completed lessons within a course.
func (r *TrackPostgres) CountCompletedLessons(ctx context.Context, orgID, userID, courseID string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM lesson_tracks
		WHERE org_id = $1 AND user_id = $2 AND course_id = $3 AND status = 'completed'
	`
	var n int
	if err := r.db.QueryRowContext(ctx, q, orgID, userID, courseID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const testTrackColumns = `id, org_id, user_id, lesson_id, score, max_score, passed, attempts, submitted_at`

func scanTestTrack(row interface{ Scan(...any) error }) (*model.TestTrack, error) {
	var t model.TestTrack
	if err := row.Scan(
		&t.ID,
		&t.OrgID,
		&t.UserID,
		&t.LessonID,
		&t.Score,
		&t.MaxScore,
		&t.Passed,
		&t.Attempts,
		&t.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertTestTrack inserts or updates the (org, user, lesson) test record.
func (r *TrackPostgres) UpsertTestTrack(ctx context.Context, t *model.TestTrack) (*model.TestTrack, error) {
	const q = `
		INSERT INTO test_tracks (id, org_id, user_id, lesson_id, score, max_score, passed, attempts, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (org_id, user_id, lesson_id) DO UPDATE SET
			score = EXCLUDED.score,
			max_score = EXCLUDED.max_score,
			passed = EXCLUDED.passed,
			attempts = EXCLUDED.attempts,
			submitted_at = EXCLUDED.submitted_at
		RETURNING ` + testTrackColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		t.OrgID,
		t.UserID,
		t.LessonID,
		t.Score,
		t.MaxScore,
		t.Passed,
		t.Attempts,
		t.SubmittedAt,
	)
	return scanTestTrack(row)
}

// FindTestTrack fetches the test record for a (user, lesson) pair.
func (r *TrackPostgres) FindTestTrack(ctx context.Context, orgID, userID, lessonID string) (*model.TestTrack, error) {
	const q = `
		SELECT ` + testTrackColumns + `
		FROM test_tracks
		WHERE org_id = $1 AND user_id = $2 AND lesson_id = $3
	`
	return scanTestTrack(r.db.QueryRowContext(ctx, q, orgID, userID, lessonID))
}
