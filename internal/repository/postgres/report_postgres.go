package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
// Read-only aggregation joins between track and catalog tables.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// CourseReport returns per-(user, course) progress rows matching the filter.
// The From/To bounds apply to the track's updated_at timestamp. course_id is
// compared as text: the empty-string sentinel types the parameter as text,
// which has no equality operator against uuid.
func (r *ReportPostgres) CourseReport(ctx context.Context, orgID string, f repository.ReportFilter, pq repository.PageQuery) (*repository.PageResult[model.CourseReportRow], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM course_tracks t
		JOIN courses c ON c.id = t.course_id AND c.org_id = t.org_id
		WHERE t.org_id = $1
		  AND ($2 = '' OR t.course_id::text = $2)
		  AND ($3 = '' OR t.status = $3)
		  AND ($4::timestamptz IS NULL OR t.updated_at >= $4)
		  AND ($5::timestamptz IS NULL OR t.updated_at <= $5)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, orgID, f.CourseID, string(f.Status), f.From, f.To).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT t.user_id, t.course_id, c.title, t.status, t.completion_percent,
		       t.lessons_completed, t.total_lessons, t.started_at, t.completed_at, t.certificate_issued
		FROM course_tracks t
		JOIN courses c ON c.id = t.course_id AND c.org_id = t.org_id
		WHERE t.org_id = $1
		  AND ($2 = '' OR t.course_id::text = $2)
		  AND ($3 = '' OR t.status = $3)
		  AND ($4::timestamptz IS NULL OR t.updated_at >= $4)
		  AND ($5::timestamptz IS NULL OR t.updated_at <= $5)
		ORDER BY t.updated_at DESC, t.id DESC
		LIMIT $6 OFFSET $7
	`
	rows, err := r.db.QueryContext(ctx, qList, orgID, f.CourseID, string(f.Status), f.From, f.To, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CourseReportRow, 0)
	for rows.Next() {
		var row model.CourseReportRow
		if err := rows.Scan(
			&row.UserID,
			&row.CourseID,
			&row.CourseTitle,
			&row.Status,
			&row.CompletionPercent,
			&row.LessonsCompleted,
			&row.TotalLessons,
			&row.StartedAt,
			&row.CompletedAt,
			&row.CertificateIssued,
		); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.CourseReportRow]{Items: items, Total: total}, nil
}

// LessonReport returns per-(user, lesson) progress rows matching the filter.
func (r *ReportPostgres) LessonReport(ctx context.Context, orgID string, f repository.ReportFilter, pq repository.PageQuery) (*repository.PageResult[model.LessonReportRow], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM lesson_tracks t
		JOIN lessons l ON l.id = t.lesson_id AND l.org_id = t.org_id
		WHERE t.org_id = $1
		  AND ($2 = '' OR t.course_id::text = $2)
		  AND ($3 = '' OR t.status = $3)
		  AND ($4::timestamptz IS NULL OR t.updated_at >= $4)
		  AND ($5::timestamptz IS NULL OR t.updated_at <= $5)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, orgID, f.CourseID, string(f.Status), f.From, f.To).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT t.user_id, t.course_id, t.lesson_id, l.title, t.status, t.time_spent_seconds, t.completed_at
		FROM lesson_tracks t
		JOIN lessons l ON l.id = t.lesson_id AND l.org_id = t.org_id
		WHERE t.org_id = $1
		  AND ($2 = '' OR t.course_id::text = $2)
		  AND ($3 = '' OR t.status = $3)
		  AND ($4::timestamptz IS NULL OR t.updated_at >= $4)
		  AND ($5::timestamptz IS NULL OR t.updated_at <= $5)
		ORDER BY t.updated_at DESC, t.id DESC
		LIMIT $6 OFFSET $7
	`
	rows, err := r.db.QueryContext(ctx, qList, orgID, f.CourseID, string(f.Status), f.From, f.To, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LessonReportRow, 0)
	for rows.Next() {
		var row model.LessonReportRow
		if err := rows.Scan(
			&row.UserID,
			&row.CourseID,
			&row.LessonID,
			&row.LessonTitle,
			&row.Status,
			&row.TimeSpentSeconds,
			&row.CompletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.LessonReportRow]{Items: items, Total: total}, nil
}
