package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// EnrollmentPostgres is a PostgreSQL implementation of repository.EnrollmentRepository.
type EnrollmentPostgres struct {
	db *sql.DB
}

// NewEnrollmentPostgres creates a new EnrollmentPostgres repository.
func NewEnrollmentPostgres(db *sql.DB) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

var _ repository.EnrollmentRepository = (*EnrollmentPostgres)(nil)

const enrollmentColumns = `id, org_id, user_id, course_id, status, enrolled_at, cancelled_at`

func scanEnrollment(row interface{ Scan(...any) error }) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := row.Scan(
		&e.ID,
		&e.OrgID,
		&e.UserID,
		&e.CourseID,
		&e.Status,
		&e.EnrolledAt,
		&e.CancelledAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentPostgres) Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	const q = `
		INSERT INTO enrollments (id, org_id, user_id, course_id, status, enrolled_at, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + enrollmentColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.OrgID,
		e.UserID,
		e.CourseID,
		e.Status,
		e.EnrolledAt,
		e.CancelledAt,
	)
	return scanEnrollment(row)
}

func (r *EnrollmentPostgres) FindByID(ctx context.Context, orgID, id string) (*model.Enrollment, error) {
	const q = `
		SELECT ` + enrollmentColumns + `
		FROM enrollments
		WHERE org_id = $1 AND id = $2
	`
	return scanEnrollment(r.db.QueryRowContext(ctx, q, orgID, id))
}

// FindActive returns the active enrollment for a (user, course) pair.
func (r *EnrollmentPostgres) FindActive(ctx context.Context, orgID, userID, courseID string) (*model.Enrollment, error) {
	const q = `
		SELECT ` + enrollmentColumns + `
		FROM enrollments
		WHERE org_id = $1 AND user_id = $2 AND course_id = $3 AND status = 'active'
	`
	return scanEnrollment(r.db.QueryRowContext(ctx, q, orgID, userID, courseID))
}

// List returns enrollments using LIMIT/OFFSET pagination and a total count.
// Empty filter fields match all rows. The UUID columns are compared as text:
// the empty-string sentinel fixes the parameter's type to text during parse
// analysis, and uuid = text has no operator.
func (r *EnrollmentPostgres) List(ctx context.Context, orgID string, f repository.EnrollmentFilter, pq repository.PageQuery) (*repository.PageResult[model.Enrollment], error) {
	const qCount = `
		SELECT COUNT(*) FROM enrollments
		WHERE org_id = $1
		  AND ($2 = '' OR user_id::text = $2)
		  AND ($3 = '' OR course_id::text = $3)
		  AND ($4 = '' OR status = $4)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, orgID, f.UserID, f.CourseID, string(f.Status)).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + enrollmentColumns + `
		FROM enrollments
		WHERE org_id = $1
		  AND ($2 = '' OR user_id::text = $2)
		  AND ($3 = '' OR course_id::text = $3)
		  AND ($4 = '' OR status = $4)
		ORDER BY enrolled_at DESC, id DESC
		LIMIT $5 OFFSET $6
	`
	rows, err := r.db.QueryContext(ctx, qList, orgID, f.UserID, f.CourseID, string(f.Status), pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Enrollment, 0)
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Enrollment]{Items: items, Total: total}, nil
}

// Update persists status and cancellation timestamp changes.
func (r *EnrollmentPostgres) Update(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	const q = `
		UPDATE enrollments
		SET status = $3, cancelled_at = $4
		WHERE org_id = $1 AND id = $2
		RETURNING ` + enrollmentColumns
	row := r.db.QueryRowContext(ctx, q,
		e.OrgID,
		e.ID,
		e.Status,
		e.CancelledAt,
	)
	return scanEnrollment(row)
}
