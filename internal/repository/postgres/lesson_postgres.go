package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// LessonPostgres is a PostgreSQL implementation of repository.LessonRepository.
type LessonPostgres struct {
	db *sql.DB
}

// NewLessonPostgres creates a new LessonPostgres repository.
func NewLessonPostgres(db *sql.DB) *LessonPostgres {
	return &LessonPostgres{db: db}
}

var _ repository.LessonRepository = (*LessonPostgres)(nil)

const lessonColumns = `id, org_id, module_id, title, description, position, duration_minutes, allow_resubmission, created_at, updated_at`

func scanLesson(row interface{ Scan(...any) error }) (*model.Lesson, error) {
	var l model.Lesson
	if err := row.Scan(
		&l.ID,
		&l.OrgID,
		&l.ModuleID,
		&l.Title,
		&l.Description,
		&l.Position,
		&l.DurationMinutes,
		&l.AllowResubmission,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LessonPostgres) Create(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	const q = `
		INSERT INTO lessons (id, org_id, module_id, title, description, position, duration_minutes, allow_resubmission, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + lessonColumns
	row := r.db.QueryRowContext(ctx, q,
		l.ID,
		l.OrgID,
		l.ModuleID,
		l.Title,
		l.Description,
		l.Position,
		l.DurationMinutes,
		l.AllowResubmission,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return scanLesson(row)
}

func (r *LessonPostgres) FindByID(ctx context.Context, orgID, id string) (*model.Lesson, error) {
	const q = `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE org_id = $1 AND id = $2
	`
	return scanLesson(r.db.QueryRowContext(ctx, q, orgID, id))
}

// ListByModule returns the module's lessons ordered by position.
func (r *LessonPostgres) ListByModule(ctx context.Context, orgID, moduleID string) ([]model.Lesson, error) {
	const q = `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE org_id = $1 AND module_id = $2
		ORDER BY position ASC, created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q, orgID, moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Lesson, 0)
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// CourseIDForLesson resolves the course a lesson belongs to via its module.
func (r *LessonPostgres) CourseIDForLesson(ctx context.Context, orgID, lessonID string) (string, error) {
	const q = `
		SELECT m.course_id
		FROM lessons l
		JOIN modules m ON m.id = l.module_id AND m.org_id = l.org_id
		WHERE l.org_id = $1 AND l.id = $2
	`
	var courseID string
	if err := r.db.QueryRowContext(ctx, q, orgID, lessonID).Scan(&courseID); err != nil {
		return "", err
	}
	return courseID, nil
}

// CountByCourse counts lessons across all modules of a course.
func (r *LessonPostgres) CountByCourse(ctx context.Context, orgID, courseID string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM lessons l
		JOIN modules m ON m.id = l.module_id AND m.org_id = l.org_id
		WHERE l.org_id = $1 AND m.course_id = $2
	`
	var n int
	if err := r.db.QueryRowContext(ctx, q, orgID, courseID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *LessonPostgres) Update(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	const q = `
		UPDATE lessons
		SET title = $3, description = $4, position = $5, duration_minutes = $6, allow_resubmission = $7, updated_at = $8
		WHERE org_id = $1 AND id = $2
		RETURNING ` + lessonColumns
	row := r.db.QueryRowContext(ctx, q,
		l.OrgID,
		l.ID,
		l.Title,
		l.Description,
		l.Position,
		l.DurationMinutes,
		l.AllowResubmission,
		l.UpdatedAt,
	)
	return scanLesson(row)
}

func (r *LessonPostgres) Delete(ctx context.Context, orgID, id string) error {
	const q = `DELETE FROM lessons WHERE org_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, q, orgID, id)
	return err
}
